// Package riderrepo persists rider records.
package riderrepo

import (
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting riders.
// user_id is nullable: legacy records created by hand carry no account link.
// For linked records the unique index keeps one rider per driver account.
type RiderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name      string
	Phone     *string
	CreatedAt time.Time
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	dto := RiderDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Phone:     aggregate.Phone(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if aggregate.UserID() != nil {
		raw := aggregate.UserID().Bytes()
		dto.UserID = &raw
	}

	return dto
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		parsed, err := kernel.UUIDFromBytes(dto.UserID[:])
		if err != nil {
			return nil, err
		}
		userID = &parsed
	}

	return rider.RestoreRider(id, userID, dto.Name, dto.Phone, dto.CreatedAt)
}

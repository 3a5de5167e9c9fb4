// Package raterepo persists pricing rate tables. Rate tables are immutable
// once written; the newest row is the active one.
package raterepo

import (
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// RateTableDTO represents the database structure for persisting rate tables.
type RateTableDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PricePerKm float64
	PricePerKg float64
	PricePerCm float64
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for rate table entities.
func (RateTableDTO) TableName() string {
	return "rate_tables"
}

func fromDomain(rate pricing.RateTable) RateTableDTO {
	return RateTableDTO{
		ID:         rate.ID().Bytes(),
		PricePerKm: rate.PricePerKm(),
		PricePerKg: rate.PricePerKg(),
		PricePerCm: rate.PricePerCm(),
		CreatedAt:  time.Now().UTC(),
	}
}

func toDomain(dto RateTableDTO) (pricing.RateTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pricing.RateTable{}, err
	}

	return pricing.RestoreRateTable(id, dto.PricePerKm, dto.PricePerKg, dto.PricePerCm)
}

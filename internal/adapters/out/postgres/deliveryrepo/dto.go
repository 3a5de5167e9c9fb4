// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. Implements the repository pattern for the delivery
// aggregate, handling conversion between domain entities and database rows.
package deliveryrepo

import (
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The version column backs optimistic concurrency control; the
// status is stored in its lowercase wire form so the read side can serve it
// without mapping.
type DeliveryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	RiderID    *uuid.UUID `gorm:"type:uuid;index"`

	OrderName string

	Distance float64
	Weight   float64
	Size     float64

	PickupLocation          string
	DropOffLocation         string
	PreviousDropOffLocation *string
	DestinationChangedAt    *time.Time

	TotalPrice  float64
	RateTableID uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"index"`

	CancelledByRole    *string
	CancelledByID      *uuid.UUID `gorm:"type:uuid"`
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	Version   int
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	dto := DeliveryDTO{
		ID:                      aggregate.ID().Bytes(),
		CustomerID:              aggregate.CustomerID().Bytes(),
		RiderID:                 riderID,
		OrderName:               aggregate.OrderName(),
		Distance:                aggregate.Distance(),
		Weight:                  aggregate.Weight(),
		Size:                    aggregate.Size(),
		PickupLocation:          aggregate.PickupLocation(),
		DropOffLocation:         aggregate.DropOffLocation(),
		PreviousDropOffLocation: aggregate.PreviousDropOffLocation(),
		DestinationChangedAt:    aggregate.DestinationChangedAt(),
		TotalPrice:              aggregate.TotalPrice(),
		RateTableID:             aggregate.RateTableID().Bytes(),
		Status:                  aggregate.Status().String(),
		CreatedAt:               aggregate.CreatedAt(),
		Version:                 aggregate.Version(),
	}

	if c := aggregate.Cancellation(); c != nil {
		role := c.ByRole.String()
		byID := c.ByID.Bytes()
		at := c.At
		reason := c.Reason

		dto.CancelledByRole = &role
		dto.CancelledByID = &byID
		dto.CancelledAt = &at
		dto.CancellationReason = &reason
	}

	return dto
}

// toDomain converts a database row to a delivery aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	rateTableID, err := kernel.UUIDFromBytes(dto.RateTableID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	cancellation, err := cancellationFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		riderID,
		dto.OrderName,
		dto.Distance, dto.Weight, dto.Size,
		dto.PickupLocation, dto.DropOffLocation,
		dto.PreviousDropOffLocation,
		dto.DestinationChangedAt,
		dto.TotalPrice,
		rateTableID,
		status,
		cancellation,
		dto.CreatedAt,
		dto.Version,
	)
}

func cancellationFromDTO(dto DeliveryDTO) (*delivery.Cancellation, error) {
	if dto.CancelledAt == nil {
		return nil, nil
	}

	role, err := auth.RoleFromString(*dto.CancelledByRole)
	if err != nil {
		return nil, err
	}

	byID, err := kernel.UUIDFromBytes((*dto.CancelledByID)[:])
	if err != nil {
		return nil, err
	}

	reason := ""
	if dto.CancellationReason != nil {
		reason = *dto.CancellationReason
	}

	return &delivery.Cancellation{
		ByRole: role,
		ByID:   byID,
		At:     *dto.CancelledAt,
		Reason: reason,
	}, nil
}

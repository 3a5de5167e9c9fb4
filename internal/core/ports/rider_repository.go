package ports

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider records.
type RiderRepository interface {
	// Add persists a new rider record.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider record by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such record exists.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByUserID retrieves the rider record backing a driver account.
	// Returns errs.ErrObjectNotFound when the driver has no record yet.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*rider.Rider, error)
}

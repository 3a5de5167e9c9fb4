// Package ports defines repository and outbound interfaces for the delivery
// brokerage domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate using
	// optimistic concurrency: the write only succeeds against the version
	// the aggregate was read at, and bumps it by one. A lost race returns
	// errs.ErrConcurrentModification.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Delete removes a delivery permanently. Admin bookkeeping only;
	// lifecycle completion goes through status transitions, not deletion.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllPendingOlderThan retrieves deliveries still Pending that were
	// created before the cutoff. Used by the reminder job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*delivery.Delivery, error)
}

package ports

import (
	"context"

	"sendit/internal/core/domain/model/pricing"
)

// RateTableRepository defines the persistence contract for pricing rate tables.
type RateTableRepository interface {
	// Current retrieves the active rate table, the one every new price
	// computation uses. Returns pricing.ErrRateTableUnconfigured when none
	// has been configured.
	Current(ctx context.Context) (pricing.RateTable, error)

	// Add persists a new rate table and makes it the active one. Existing
	// deliveries keep the prices computed against earlier tables.
	Add(ctx context.Context, rate pricing.RateTable) error
}

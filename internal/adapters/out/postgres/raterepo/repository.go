package raterepo

import (
	"context"
	"errors"

	"sendit/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

// GormRateTableRepository implements RateTableRepository using GORM.
type GormRateTableRepository struct {
	db *gorm.DB
}

// NewGormRateTableRepository creates a new GORM rate table repository.
func NewGormRateTableRepository(db *gorm.DB) *GormRateTableRepository {
	return &GormRateTableRepository{db: db}
}

// Current returns the most recently added rate table.
// Returns pricing.ErrRateTableUnconfigured when none has been seeded.
func (r *GormRateTableRepository) Current(ctx context.Context) (pricing.RateTable, error) {
	var dto RateTableDTO
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.RateTable{}, pricing.ErrRateTableUnconfigured
		}
		return pricing.RateTable{}, err
	}

	return toDomain(dto)
}

// Add stores a new rate table. Existing rows are kept so historical
// deliveries keep pointing at the rates they were priced with.
func (r *GormRateTableRepository) Add(ctx context.Context, rate pricing.RateTable) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

package queries

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackDeliveryQueryHandler serves the public tracking endpoint.
type TrackDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewTrackDeliveryQueryHandler creates a handler for tracking queries.
func NewTrackDeliveryQueryHandler(db *gorm.DB) TrackDeliveryQueryHandler {
	return TrackDeliveryQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns errs.ErrObjectNotFound for unknown delivery ids.
func (h TrackDeliveryQueryHandler) Handle(
	ctx context.Context,
	query TrackDeliveryQuery,
) (TrackDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_name,
			status,
			drop_off_location
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackDeliveryQueryResponse{}, err
		}
		return TrackDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery_id", query.DeliveryID())
	}

	var response TrackDeliveryQueryResponse
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&response.OrderName,
		&response.Status,
		&response.DropOffLocation,
	)
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	return response, nil
}

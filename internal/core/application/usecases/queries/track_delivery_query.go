package queries

import (
	"errors"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrTrackDeliveryQueryIsNotConstructed = errors.New(
	"TrackDeliveryQuery must be created via NewTrackDeliveryQuery constructor",
)

// TrackDeliveryQuery retrieves the tracking summary of a delivery: where it
// is in the lifecycle and where it is headed. Intentionally thin so the
// tracking endpoint can be shown to anyone holding the delivery id.
type TrackDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackDeliveryQuery creates a tracking query.
func NewTrackDeliveryQuery(deliveryID kernel.UUID) (TrackDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return TrackDeliveryQuery{}, err
	}

	return TrackDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrTrackDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the tracked delivery's identifier.
func (q TrackDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// TrackDeliveryQueryResponse is the tracking read model.
type TrackDeliveryQueryResponse struct {
	ID              kernel.UUID
	OrderName       string
	Status          string
	DropOffLocation string
}

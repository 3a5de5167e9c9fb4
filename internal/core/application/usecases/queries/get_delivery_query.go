package queries

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery, subject to the same
// visibility rules as the listing: admins see any delivery, customers only
// their own, drivers only deliveries assigned to their rider record.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID
	principal  auth.Principal

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a single-delivery query.
func NewGetDeliveryQuery(deliveryID kernel.UUID, principal auth.Principal) (GetDeliveryQuery, error) {
	if err := errors.Join(deliveryID.Validate(), principal.Validate()); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		principal:  principal,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery's identifier.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// Principal returns the authenticated caller.
func (q GetDeliveryQuery) Principal() auth.Principal {
	return q.principal
}

package queries

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves the deliveries visible to the caller.
// Admins see everything, customers see the deliveries they created, drivers
// see the deliveries assigned to their rider record.
//
// Example:
//
//	query, _ := NewGetDeliveriesQuery(principal)
//	handler := NewGetDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliveries: %w", err)
//	}
type GetDeliveriesQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a role-scoped delivery listing query.
func NewGetDeliveriesQuery(principal auth.Principal) (GetDeliveriesQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}

	return GetDeliveriesQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Principal returns the authenticated caller.
func (q GetDeliveriesQuery) Principal() auth.Principal {
	return q.principal
}

package queries

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/guard"
)

var ErrGetRidersQueryIsNotConstructed = errors.New(
	"GetRidersQuery must be created via NewGetRidersQuery constructor",
)

// GetRidersQuery retrieves all rider records with their driver accounts.
// Admin only; used when choosing an assignee for a delivery.
type GetRidersQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetRidersQuery creates a rider listing query.
// Returns auth.ErrForbiddenRole for non-admin principals.
func NewGetRidersQuery(principal auth.Principal) (GetRidersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetRidersQuery{}, err
	}
	if !principal.IsAdmin() {
		return GetRidersQuery{}, auth.NewForbiddenRoleError(principal.Role(), "list riders")
	}

	return GetRidersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersQueryIsNotConstructed)
}

package queries

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves all registered accounts. Admin only.
type GetUsersQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates an account listing query.
// Returns auth.ErrForbiddenRole for non-admin principals.
func NewGetUsersQuery(principal auth.Principal) (GetUsersQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetUsersQuery{}, err
	}
	if !principal.IsAdmin() {
		return GetUsersQuery{}, auth.NewForbiddenRoleError(principal.Role(), "list users")
	}

	return GetUsersQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

package queries

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the caller's own account.
type GetProfileQuery struct {
	principal auth.Principal

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a profile query for the authenticated caller.
func NewGetProfileQuery(principal auth.Principal) (GetProfileQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetProfileQuery{}, err
	}

	return GetProfileQuery{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// Principal returns the authenticated caller.
func (q GetProfileQuery) Principal() auth.Principal {
	return q.principal
}

package auth

import (
	"errors"
	"fmt"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var (
	// ErrPrincipalIsNotConstructed is returned when a Principal was not created
	// through NewPrincipal. Core entry points treat this as a caller error.
	ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

	// ErrForbiddenRole is the sentinel for every role-gating failure.
	ErrForbiddenRole = errors.New("forbidden role")
)

// ForbiddenRoleError reports that a principal's role does not permit an operation.
type ForbiddenRoleError struct {
	Role      Role
	Operation string
}

// NewForbiddenRoleError creates a ForbiddenRoleError naming the rejected role
// and the operation it attempted.
func NewForbiddenRoleError(role Role, operation string) *ForbiddenRoleError {
	return &ForbiddenRoleError{Role: role, Operation: operation}
}

func (e *ForbiddenRoleError) Error() string {
	return fmt.Sprintf("%s: role %s may not %s", ErrForbiddenRole, e.Role, e.Operation)
}

func (e *ForbiddenRoleError) Unwrap() error {
	return ErrForbiddenRole
}

// Principal is the resolved identity attached to every core operation.
// It is produced per request by the auth boundary from a verified credential
// and trusted completely by the core; only role and ownership checks remain.
// Principal is ephemeral and never persisted.
type Principal struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal from a verified user id and role.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Principal{}, err
	}

	return Principal{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the principal was created through the constructor.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the authenticated user's identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the authenticated user's role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// IsCustomer reports whether the principal holds the customer role.
func (p Principal) IsCustomer() bool {
	return p.role == RoleCustomer
}

// IsDriver reports whether the principal holds the driver role.
func (p Principal) IsDriver() bool {
	return p.role == RoleDriver
}

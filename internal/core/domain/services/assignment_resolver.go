package services

import (
	"errors"
	"fmt"
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/rider"
	"sendit/internal/core/domain/model/user"
)

// ErrInvalidAssignee is returned when the account chosen for a delivery
// assignment does not hold the driver role. Customers and admins never carry
// parcels.
var ErrInvalidAssignee = errors.New("invalid assignee")

// InvalidAssigneeError names the rejected account and its actual role.
type InvalidAssigneeError struct {
	UserID kernel.UUID
	Role   string
}

// NewInvalidAssigneeError creates an InvalidAssigneeError for the rejected account.
func NewInvalidAssigneeError(userID kernel.UUID, role string) *InvalidAssigneeError {
	return &InvalidAssigneeError{UserID: userID, Role: role}
}

func (e *InvalidAssigneeError) Error() string {
	return fmt.Sprintf("%s: user %s has role %s, expected driver", ErrInvalidAssignee, e.UserID, e.Role)
}

func (e *InvalidAssigneeError) Unwrap() error {
	return ErrInvalidAssignee
}

// AssignmentResolver is a domain service that turns a driver account into the
// rider record a delivery can be assigned to.
//
// Rider records are created lazily: a driver account gets its record the
// first time an admin assigns it to a delivery. Resolve is pure with respect
// to storage; the caller loads the user and any existing rider record, and
// persists the returned record when created reports true.
type AssignmentResolver struct{}

// NewAssignmentResolver creates a new AssignmentResolver instance.
func NewAssignmentResolver() AssignmentResolver {
	return AssignmentResolver{}
}

// Resolve returns the rider record for the given account, creating one when
// none exists yet. existing may be nil. The second return value reports
// whether a new record was created and must be persisted.
//
// Returns ErrInvalidAssignee when the account is not a driver.
func (r AssignmentResolver) Resolve(u *user.User, existing *rider.Rider, now time.Time) (*rider.Rider, bool, error) {
	if err := u.Validate(); err != nil {
		return nil, false, err
	}

	if !u.IsDriver() {
		return nil, false, NewInvalidAssigneeError(u.ID(), u.Role().String())
	}

	if existing != nil {
		if err := existing.Validate(); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	created, err := rider.NewRider(kernel.NewUUID(), u.ID(), u.Name(), u.Phone(), now)
	if err != nil {
		return nil, false, err
	}

	return created, true, nil
}

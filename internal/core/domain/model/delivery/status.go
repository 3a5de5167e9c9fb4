package delivery

import (
	"errors"
	"fmt"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions so deliveries only
// ever move forward along the business workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; nothing reopens them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created delivery,
	// waiting for an admin to assign a rider and accept it.
	StatusPending

	// StatusAccepted indicates an admin accepted the delivery and a rider
	// is assigned.
	StatusAccepted

	// StatusInTransit indicates the assigned rider picked up the parcel.
	StatusInTransit

	// StatusDelivered indicates the parcel reached its drop-off location.
	// Terminal.
	StatusDelivered

	// StatusCancelled indicates the delivery was cancelled by its owner or
	// an admin before dispatch. Terminal.
	StatusCancelled
)

var (
	// ErrIllegalTransition is the sentinel for every transition not present
	// in the state machine's table.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrForbiddenTransition is returned when a driver requests any target
	// status other than InTransit or Delivered.
	ErrForbiddenTransition = errors.New("forbidden status transition")
)

// IllegalTransitionError names the current status, the requested status and
// the caller's role for a transition outside the defined graph.
type IllegalTransitionError struct {
	From Status
	To   Status
	Role auth.Role
}

// NewIllegalTransitionError creates an IllegalTransitionError for the rejected edge.
func NewIllegalTransitionError(from, to Status, role auth.Role) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Role: role}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s requested by role %s",
		ErrIllegalTransition, e.From, e.To, e.Role)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ForbiddenTransitionError reports a driver requesting a status outside
// their permitted set.
type ForbiddenTransitionError struct {
	Requested Status
	Role      auth.Role
}

// NewForbiddenTransitionError creates a ForbiddenTransitionError for the requested status.
func NewForbiddenTransitionError(requested Status, role auth.Role) *ForbiddenTransitionError {
	return &ForbiddenTransitionError{Requested: requested, Role: role}
}

func (e *ForbiddenTransitionError) Error() string {
	return fmt.Sprintf("%s: role %s may not set status %s", ErrForbiddenTransition, e.Role, e.Requested)
}

func (e *ForbiddenTransitionError) Unwrap() error {
	return ErrForbiddenTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the lowercase status name used in storage and on
// the wire ("pending", "accepted", "in_transit", "delivered", "cancelled").
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the lowercase status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAccepted, StatusInTransit, StatusDelivered, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the edge s -> to exists in the state
// machine's directed graph, ignoring role gating.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusAccepted || to == StatusCancelled
	case StatusAccepted:
		return to == StatusInTransit || to == StatusCancelled
	case StatusInTransit:
		return to == StatusDelivered
	default:
		return false
	}
}

// IsModifiable reports whether customer self-service operations
// (destination change, cancellation) are still allowed.
func (s Status) IsModifiable() bool {
	return s == StatusPending || s == StatusAccepted
}

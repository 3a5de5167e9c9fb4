// Package auth contains the identity value objects the core operates on.
// A Principal is the already-authenticated actor of a request; credential
// verification happens at the transport boundary and is never visible here.
package auth

import (
	"fmt"

	"sendit/internal/pkg/errs"
)

// Role classifies what a principal is allowed to do.
// Every core operation checks the caller's role before touching a delivery.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin can manage every delivery, assign riders and correct records.
	RoleAdmin

	// RoleCustomer can create deliveries and manage the ones they own.
	RoleCustomer

	// RoleDriver executes deliveries assigned to their rider record.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleAdmin:    "admin",
		RoleCustomer: "customer",
		RoleDriver:   "driver",
	}
}

// RoleFromString parses a persisted or token-carried role name.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the lowercase role name used in tokens and storage.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleCustomer, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

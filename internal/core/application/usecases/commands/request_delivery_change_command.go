package commands

import (
	"errors"
	"fmt"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var ErrRequestDeliveryChangeCommandIsNotConstructed = errors.New(
	"RequestDeliveryChangeCommand must be created via NewRequestDeliveryChangeCommand constructor",
)

// ChangeKind selects which self-service change a customer requests.
type ChangeKind int

const (
	// ChangeKindUnknown represents an invalid change kind.
	ChangeKindUnknown ChangeKind = iota

	// ChangeKindDestination replaces the drop-off location.
	ChangeKindDestination

	// ChangeKindCancel cancels the delivery.
	ChangeKindCancel
)

// ChangeKindFromString parses the wire form of a change kind
// ("change_destination" or "cancel").
func ChangeKindFromString(s string) (ChangeKind, error) {
	switch s {
	case "change_destination":
		return ChangeKindDestination, nil
	case "cancel":
		return ChangeKindCancel, nil
	default:
		return ChangeKindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%q is not a valid change kind", s))
	}
}

// RequestDeliveryChangeCommand represents a customer's self-service change to
// one of their own deliveries: a new destination or a cancellation. Both are
// only honored while the delivery is still pending or accepted.
type RequestDeliveryChangeCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	principal  auth.Principal
	kind       ChangeKind

	newDestination string
	reason         string

	guard guard.ConstructorGuard
}

// NewRequestDeliveryChangeCommand creates a self-service change command.
// A destination change requires newDestination; a cancellation takes an
// optional reason.
func NewRequestDeliveryChangeCommand(
	deliveryID kernel.UUID,
	principal auth.Principal,
	kind ChangeKind,
	newDestination string,
	reason string,
) (RequestDeliveryChangeCommand, error) {
	cmd := RequestDeliveryChangeCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPrincipal(principal),
		cmd.setKindAndDestination(kind, newDestination),
	); err != nil {
		return RequestDeliveryChangeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryChangeCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryChangeCommandIsNotConstructed)
}

// DeliveryID returns the delivery being changed.
func (c RequestDeliveryChangeCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Principal returns the authenticated caller.
func (c RequestDeliveryChangeCommand) Principal() auth.Principal {
	return c.principal
}

// Kind returns the requested change kind.
func (c RequestDeliveryChangeCommand) Kind() ChangeKind {
	return c.kind
}

// NewDestination returns the replacement drop-off location for destination changes.
func (c RequestDeliveryChangeCommand) NewDestination() string {
	return c.newDestination
}

// Reason returns the optional cancellation reason.
func (c RequestDeliveryChangeCommand) Reason() string {
	return c.reason
}

func (c *RequestDeliveryChangeCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RequestDeliveryChangeCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *RequestDeliveryChangeCommand) setKindAndDestination(kind ChangeKind, newDestination string) error {
	switch kind {
	case ChangeKindDestination:
		if newDestination == "" {
			return errs.NewValueIsRequiredError("new_destination")
		}
		c.newDestination = newDestination
	case ChangeKindCancel:
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid change kind", kind))
	}

	c.kind = kind
	return nil
}

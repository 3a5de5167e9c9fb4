package commands

import (
	"errors"
	"fmt"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var (
	ErrCorrectDeliveryCommandIsNotConstructed = errors.New(
		"CorrectDeliveryCommand must be created via NewCorrectDeliveryCommand constructor",
	)

	// ErrNothingToCorrect is returned when the command carries no change at all.
	ErrNothingToCorrect = errors.New("correction must change at least one field")
)

// Measurements bundles the three priced dimensions of a parcel. Corrections
// replace all three together so the recomputed price is never a mix of old
// and new values.
type Measurements struct {
	Distance float64
	Weight   float64
	Size     float64
}

/// CorrectDeliveryCommand represents an admin correction to a delivery:
// a status change, a rider assignment, a measurement fix, or any combination.
// Rider assignment is by driver account id; the rider record is resolved (and
// lazily created) by the handler.
type CorrectDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	principal  auth.Principal

	target         *delivery.Status
	assigneeUserID *kernel.UUID
	measurements   *Measurements

	guard guard.ConstructorGuard
}

// NewCorrectDeliveryCommand creates an admin correction command. All change
// fields are optional but at least one must be present.
func NewCorrectDeliveryCommand(
	deliveryID kernel.UUID,
	principal auth.Principal,
	target *delivery.Status,
	assigneeUserID *kernel.UUID,
	measurements *Measurements,
) (CorrectDeliveryCommand, error) {
	cmd := CorrectDeliveryCommand{
		measurements: measurements,
		guard:        guard.NewConstructorGuard(),
	}

	if target == nil && assigneeUserID == nil && measurements == nil {
		return CorrectDeliveryCommand{}, ErrNothingToCorrect
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPrincipal(principal),
		cmd.setTarget(target),
		cmd.setAssigneeUserID(assigneeUserID),
	); err != nil {
		return CorrectDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CorrectDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCorrectDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being corrected.
func (c CorrectDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Principal returns the authenticated caller.
func (c CorrectDeliveryCommand) Principal() auth.Principal {
	return c.principal
}

// Target returns the requested status, or nil when the status is untouched.
func (c CorrectDeliveryCommand) Target() *delivery.Status {
	return c.target
}

// AssigneeUserID returns the driver account to assign, or nil.
func (c CorrectDeliveryCommand) AssigneeUserID() *kernel.UUID {
	return c.assigneeUserID
}

// Measurements returns the replacement measurements, or nil.
func (c CorrectDeliveryCommand) Measurements() *Measurements {
	return c.measurements
}

func (c *CorrectDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CorrectDeliveryCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CorrectDeliveryCommand) setTarget(target *delivery.Status) error {
	if target == nil {
		return nil
	}
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *CorrectDeliveryCommand) setAssigneeUserID(assigneeUserID *kernel.UUID) error {
	if assigneeUserID == nil {
		return nil
	}
	if err := assigneeUserID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("rider_user_id",
			fmt.Errorf("invalid assignee: %w", err))
	}

	c.assigneeUserID = assigneeUserID
	return nil
}

package commands

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand represents an admin removing a delivery record
// entirely. Bookkeeping only; regular lifecycle completion goes through
// status transitions.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	principal  auth.Principal

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryCommand creates a delivery deletion command.
func NewDeleteDeliveryCommand(deliveryID kernel.UUID, principal auth.Principal) (DeleteDeliveryCommand, error) {
	cmd := DeleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPrincipal(principal),
	); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to remove.
func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Principal returns the authenticated caller.
func (c DeleteDeliveryCommand) Principal() auth.Principal {
	return c.principal
}

func (c *DeleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *DeleteDeliveryCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

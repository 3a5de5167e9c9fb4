package commands

import (
	"errors"
	"time"

	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var ErrRemindPendingDeliveriesCommandIsNotConstructed = errors.New(
	"RemindPendingDeliveriesCommand must be created via NewRemindPendingDeliveriesCommand constructor",
)

// RemindPendingDeliveriesCommand asks for reminder notifications on deliveries
// that have been waiting in Pending longer than the given age. Issued by the
// scheduler, not by an authenticated principal.
type RemindPendingDeliveriesCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindPendingDeliveriesCommand creates a reminder command for deliveries
// pending longer than olderThan.
func NewRemindPendingDeliveriesCommand(olderThan time.Duration) (RemindPendingDeliveriesCommand, error) {
	if olderThan <= 0 {
		return RemindPendingDeliveriesCommand{}, errs.NewValueIsRequiredError("older_than")
	}

	return RemindPendingDeliveriesCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingDeliveriesCommandIsNotConstructed)
}

// OlderThan returns the minimum pending age before a reminder is due.
func (c RemindPendingDeliveriesCommand) OlderThan() time.Duration {
	return c.olderThan
}

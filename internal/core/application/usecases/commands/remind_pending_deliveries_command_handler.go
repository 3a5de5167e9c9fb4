package commands

import (
	"context"
	"time"

	"sendit/internal/core/ports"
)

// RemindPendingDeliveriesCommandHandler nudges customers about deliveries
// stuck in Pending. Reads only; the work product is the notifications.
type RemindPendingDeliveriesCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewRemindPendingDeliveriesCommandHandler creates a handler for pending reminders.
func NewRemindPendingDeliveriesCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) RemindPendingDeliveriesCommandHandler {
	return RemindPendingDeliveriesCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle sends one status notification per stale pending delivery.
func (h RemindPendingDeliveriesCommandHandler) Handle(
	ctx context.Context, cmd RemindPendingDeliveriesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	stale, err := uow.DeliveryRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	for _, aggregate := range stale {
		customer, err := userRepo.Get(ctx, aggregate.CustomerID())
		if err != nil {
			return err
		}

		h.notifier.NotifyStatusChanged(ctx, ports.StatusNotification{
			CustomerEmail: customer.Email(),
			CustomerName:  customer.Name(),
			DeliveryID:    aggregate.ID().String(),
			OrderName:     aggregate.OrderName(),
			From:          aggregate.Status(),
			Status:        aggregate.Status(),
		})
	}

	return nil
}

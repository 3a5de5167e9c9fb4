package commands

import (
	"context"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/ports"
)

// RequestDeliveryChangeCommandHandler handles customer self-service changes.
// Ownership and the pending/accepted window are enforced by the aggregate;
// the handler contributes the transaction and the customer notification.
type RequestDeliveryChangeCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewRequestDeliveryChangeCommandHandler creates a handler for self-service changes.
func NewRequestDeliveryChangeCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) RequestDeliveryChangeCommandHandler {
	return RequestDeliveryChangeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the change command. Only customers come through here:
// admins cancel via the correction path, which keeps a single admin entry
// point. The notification goes out only after the transaction committed; a
// notification failure never fails the change.
func (h RequestDeliveryChangeCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryChangeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Principal()
	if !p.IsCustomer() {
		return auth.NewForbiddenRoleError(p.Role(), "use the self-service change path")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	oldDropOff := aggregate.DropOffLocation()
	statusBefore := aggregate.Status()
	now := time.Now().UTC()

	switch cmd.Kind() {
	case ChangeKindDestination:
		err = aggregate.ChangeDestination(cmd.Principal(), cmd.NewDestination(), now)
	case ChangeKindCancel:
		err = aggregate.Cancel(cmd.Principal(), cmd.Reason(), now)
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	customer, err := uow.UserRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	switch cmd.Kind() {
	case ChangeKindDestination:
		h.notifier.NotifyDestinationChanged(ctx, ports.DestinationNotification{
			CustomerEmail: customer.Email(),
			CustomerName:  customer.Name(),
			DeliveryID:    aggregate.ID().String(),
			OrderName:     aggregate.OrderName(),
			OldDropOff:    oldDropOff,
			NewDropOff:    aggregate.DropOffLocation(),
		})
	case ChangeKindCancel:
		h.notifier.NotifyStatusChanged(ctx, ports.StatusNotification{
			CustomerEmail: customer.Email(),
			CustomerName:  customer.Name(),
			DeliveryID:    aggregate.ID().String(),
			OrderName:     aggregate.OrderName(),
			From:          statusBefore,
			Status:        aggregate.Status(),
		})
	}

	return nil
}

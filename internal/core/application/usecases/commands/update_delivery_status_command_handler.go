package commands

import (
	"context"
	"errors"
	"time"

	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/ports"
	"sendit/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler handles driver progress reports.
// Resolves the caller's rider record, applies the transition through the
// aggregate and notifies the owning customer after commit.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for driver status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update. A driver without a rider record was
// never assigned anything, so they get the same ownership rejection as a
// driver assigned to a different delivery.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	p := cmd.Principal()
	callerRider, err := uow.RiderRepository().GetByUserID(ctx, p.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return delivery.NewNotOwnerError(p.ID(), aggregate.ID())
	}
	if err != nil {
		return err
	}

	statusBefore := aggregate.Status()

	riderID := callerRider.ID()
	if err = aggregate.RequestStatus(p, cmd.Target(), &riderID, time.Now().UTC()); err != nil {
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

	h.notifier.NotifyStatusChanged(ctx, ports.StatusNotification{
		CustomerEmail: customer.Email(),
		CustomerName:  customer.Name(),
		DeliveryID:    aggregate.ID().String(),
		OrderName:     aggregate.OrderName(),
		From:          statusBefore,
		Status:        aggregate.Status(),
	})

	return nil
}

package commands

import (
	"context"
	"errors"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/services"
	"sendit/internal/core/ports"
	"sendit/internal/pkg/errs"
)

// CorrectDeliveryCommandHandler orchestrates admin corrections. A single
// command may assign a rider, fix measurements and move the status, applied
// in that order inside one transaction.
//
// Example:
//
//	handler := NewCorrectDeliveryCommandHandler(uowFactory, notifier)
//	target := delivery.StatusAccepted
//	cmd, _ := NewCorrectDeliveryCommand(deliveryID, admin, &target, &driverUserID, nil)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrInvalidAssignee):
//	    log.Println("chosen account is not a driver")
//	case errors.Is(err, delivery.ErrIllegalTransition):
//	    log.Println("status cannot move there from the current state")
//	}
type CorrectDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewCorrectDeliveryCommandHandler creates a handler for admin corrections.
func NewCorrectDeliveryCommandHandler(uowFactory UoWFactory, notifier ports.Notifier) CorrectDeliveryCommandHandler {
	return CorrectDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the correction. Rider assignment resolves the driver
// account into its rider record, creating the record on first assignment.
// Measurement fixes reprice against the rate table active now, not the one
// captured at creation. Status changes go through the same transition rules
// as everyone else's; admin corrections never jump the graph.
func (h CorrectDeliveryCommandHandler) Handle(ctx context.Context, cmd CorrectDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Principal()
	if !p.IsAdmin() {
		return auth.NewForbiddenRoleError(p.Role(), "correct a delivery")
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

	statusBefore := aggregate.Status()
	now := time.Now().UTC()

	if cmd.AssigneeUserID() != nil {
		if err = h.assignRider(ctx, uow, aggregate, cmd, now); err != nil {
			return err
		}
	}

	if m := cmd.Measurements(); m != nil {
		rate, rateErr := uow.RateTableRepository().Current(ctx)
		if rateErr != nil {
			return rateErr
		}
		if err = aggregate.CorrectMeasurements(p, m.Distance, m.Weight, m.Size, rate); err != nil {
			return err
		}
	}

	if cmd.Target() != nil {
		if err = aggregate.RequestStatus(p, *cmd.Target(), nil, now); err != nil {
			return err
		}
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

	if aggregate.Status() != statusBefore {
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

func (h CorrectDeliveryCommandHandler) assignRider(
	ctx context.Context,
	uow UoW,
	aggregate *delivery.Delivery,
	cmd CorrectDeliveryCommand,
	now time.Time,
) error {
	assignee, err := uow.UserRepository().Get(ctx, *cmd.AssigneeUserID())
	if err != nil {
		return err
	}

	existing, err := uow.RiderRepository().GetByUserID(ctx, assignee.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	resolved, created, err := services.NewAssignmentResolver().Resolve(assignee, existing, now)
	if err != nil {
		return err
	}

	if created {
		if err = uow.RiderRepository().Add(ctx, resolved); err != nil {
			return err
		}
	}

	return aggregate.AssignRider(cmd.Principal(), resolved.ID())
}

package commands

import (
	"context"

	"sendit/internal/core/domain/model/auth"
)

// DeleteDeliveryCommandHandler handles admin delivery removal.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDeleteDeliveryCommandHandler creates a handler for delivery removal.
func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. Admin only. The Get before Delete makes a
// missing delivery surface as errs.ErrObjectNotFound rather than a no-op.
func (h DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Principal()
	if !p.IsAdmin() {
		return auth.NewForbiddenRoleError(p.Role(), "delete a delivery")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	if _, err := deliveryRepo.Get(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if err := deliveryRepo.Delete(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
// Prices the parcel against the active rate table and stores the delivery in
// pending status, waiting for admin acceptance.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a UoWFactory because pricing reads the rate table in the same
// transaction that writes the delivery.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command. Only customers create
// deliveries; the caller becomes the owner. Returns
// pricing.ErrRateTableUnconfigured when no rate table has been seeded.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p := cmd.Principal()
	if !p.IsCustomer() {
		return auth.NewForbiddenRoleError(p.Role(), "create a delivery")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rate, err := uow.RateTableRepository().Current(ctx)
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		p.ID(),
		cmd.OrderName(),
		cmd.Distance(), cmd.Weight(), cmd.Size(),
		cmd.PickupLocation(), cmd.DropOffLocation(),
		rate,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

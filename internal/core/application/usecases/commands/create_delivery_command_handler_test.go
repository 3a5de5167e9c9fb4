package commands_test

import (
	"errors"
	"testing"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateDeliveryCommand(t *testing.T, principal auth.Principal) commands.CreateDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), principal, "laptop",
		10, 2, 1, "pickup street 1", "dropoff street 2")
	require.NoError(t, err)
	return cmd
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	principal := testPrincipal(t, auth.RoleCustomer)
	cmd := newCreateDeliveryCommand(t, principal)
	rate := testRateTable(t)

	deliveryRepo := new(MockDeliveryRepository)
	rateRepo := new(MockRateTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RateTableRepository").Return(rateRepo).Once(),
		rateRepo.On("Current", ctx).Return(rate, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
	rateRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	added := deliveryRepo.Calls[0].Arguments[1].(*delivery.Delivery)
	assert.Equal(t, delivery.StatusPending, added.Status())
	assert.InDelta(t, 565, added.TotalPrice(), 0)
	assert.True(t, added.CustomerID().IsEqual(principal.ID()))
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDeliveryCommandHandler_Handle_NonCustomerForbidden(t *testing.T) {
	ctx := t.Context()

	for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleDriver} {
		t.Run(role.String(), func(t *testing.T) {
			cmd := newCreateDeliveryCommand(t, testPrincipal(t, role))

			factory := new(MockUoWFactory)
			handler := commands.NewCreateDeliveryCommandHandler(factory)
			err := handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, auth.ErrForbiddenRole)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateDeliveryCommandHandler_Handle_RateTableUnconfigured(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateDeliveryCommand(t, testPrincipal(t, auth.RoleCustomer))

	rateRepo := new(MockRateTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RateTableRepository").Return(rateRepo).Once(),
		rateRepo.On("Current", ctx).Return(pricing.RateTable{}, pricing.ErrRateTableUnconfigured).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, pricing.ErrRateTableUnconfigured)
}

func TestCreateDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateDeliveryCommand(t, testPrincipal(t, auth.RoleCustomer))

	deliveryRepo := new(MockDeliveryRepository)
	rateRepo := new(MockRateTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RateTableRepository").Return(rateRepo).Once(),
		rateRepo.On("Current", ctx).Return(testRateTable(t), nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}

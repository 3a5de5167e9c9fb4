package commands_test

import (
	"testing"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := testPrincipal(t, auth.RoleAdmin)
	aggregate := testPendingDelivery(t, testPrincipal(t, auth.RoleCustomer))

	cmd, err := commands.NewDeleteDeliveryCommand(aggregate.ID(), admin)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		deliveryRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
}

func TestDeleteDeliveryCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()

	for _, role := range []auth.Role{auth.RoleCustomer, auth.RoleDriver} {
		t.Run(role.String(), func(t *testing.T) {
			cmd, err := commands.NewDeleteDeliveryCommand(kernel.NewUUID(), testPrincipal(t, role))
			require.NoError(t, err)

			factory := new(MockDeliveryUoWFactory)
			handler := commands.NewDeleteDeliveryCommandHandler(factory)
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, auth.ErrForbiddenRole)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestDeleteDeliveryCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	admin := testPrincipal(t, auth.RoleAdmin)
	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewDeleteDeliveryCommand(deliveryID, admin)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, deliveryID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	deliveryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

package commands_test

import (
	"testing"
	"time"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"
	"sendit/internal/core/domain/model/rider"
	"sendit/internal/core/domain/services"
	"sendit/internal/core/ports"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCorrectDeliveryCommandHandler_Handle_AssignAndAccept(t *testing.T) {
	ctx := t.Context()
	owner := testPrincipal(t, auth.RoleCustomer)
	admin := testPrincipal(t, auth.RoleAdmin)
	aggregate := testPendingDelivery(t, owner)
	customer := testCustomerAccount(t, owner.ID())

	driverUserID := kernel.NewUUID()
	driverAccount := testDriverAccount(t, driverUserID)

	target := delivery.StatusAccepted
	cmd, err := commands.NewCorrectDeliveryCommand(aggregate.ID(), admin, &target, &driverUserID, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	userRepo := new(MockUserRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, driverUserID).Return(driverAccount, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByUserID", ctx, driverUserID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, aggregate.CustomerID()).Return(customer, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChanged", ctx,
			mock.AnythingOfType("ports.StatusNotification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCorrectDeliveryCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusAccepted, aggregate.Status())
	require.NotNil(t, aggregate.RiderID())

	// the lazily created rider record is the one the delivery points at
	createdRider := riderRepo.Calls[1].Arguments[1].(*rider.Rider)
	assert.True(t, aggregate.RiderID().IsEqual(createdRider.ID()))
	require.NotNil(t, createdRider.UserID())
	assert.True(t, createdRider.UserID().IsEqual(driverUserID))
	assert.Equal(t, driverAccount.Name(), createdRider.Name())
	notifier.AssertExpectations(t)

	notification := notifier.Calls[0].Arguments[1].(ports.StatusNotification)
	assert.Equal(t, delivery.StatusPending, notification.From)
	assert.Equal(t, delivery.StatusAccepted, notification.Status)
}

func TestCorrectDeliveryCommandHandler_Handle_ReusesExistingRider(t *testing.T) {
	ctx := t.Context()
	owner := testPrincipal(t, auth.RoleCustomer)
	admin := testPrincipal(t, auth.RoleAdmin)
	aggregate := testPendingDelivery(t, owner)
	customer := testCustomerAccount(t, owner.ID())

	driverUserID := kernel.NewUUID()
	driverAccount := testDriverAccount(t, driverUserID)
	existingRider, err := rider.NewRider(kernel.NewUUID(), driverUserID,
		driverAccount.Name(), driverAccount.Phone(), time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCorrectDeliveryCommand(aggregate.ID(), admin, nil, &driverUserID, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	userRepo := new(MockUserRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, driverUserID).Return(driverAccount, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByUserID", ctx, driverUserID).Return(existingRider, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, aggregate.CustomerID()).Return(customer, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCorrectDeliveryCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	riderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	require.NotNil(t, aggregate.RiderID())
	assert.True(t, aggregate.RiderID().IsEqual(existingRider.ID()))

	// status untouched, so no notification
	notifier.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything)
}

func TestCorrectDeliveryCommandHandler_Handle_InvalidAssignee(t *testing.T) {
	ctx := t.Context()
	owner := testPrincipal(t, auth.RoleCustomer)
	admin := testPrincipal(t, auth.RoleAdmin)
	aggregate := testPendingDelivery(t, owner)

	customerUserID := kernel.NewUUID()
	customerAccount := testCustomerAccount(t, customerUserID)

	cmd, err := commands.NewCorrectDeliveryCommand(aggregate.ID(), admin, nil, &customerUserID, nil)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	userRepo := new(MockUserRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, customerUserID).Return(customerAccount, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("GetByUserID", ctx, customerUserID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCorrectDeliveryCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrInvalidAssignee)
	assert.Nil(t, aggregate.RiderID())
}

func TestCorrectDeliveryCommandHandler_Handle_MeasurementsReprice(t *testing.T) {
	ctx := t.Context()
	owner := testPrincipal(t, auth.RoleCustomer)
	admin := testPrincipal(t, auth.RoleAdmin)
	aggregate := testPendingDelivery(t, owner)
	customer := testCustomerAccount(t, owner.ID())

	currentRate, err := pricing.NewRateTable(kernel.NewUUID(), 100, 10, 1)
	require.NoError(t, err)

	cmd, err := commands.NewCorrectDeliveryCommand(aggregate.ID(), admin, nil, nil,
		&commands.Measurements{Distance: 5, Weight: 1, Size: 2})
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	rateRepo := new(MockRateTableRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("RateTableRepository").Return(rateRepo).Once(),
		rateRepo.On("Current", ctx).Return(currentRate, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, aggregate.CustomerID()).Return(customer, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCorrectDeliveryCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 512, aggregate.TotalPrice(), 0) // 5*100 + 1*10 + 2*1
	assert.True(t, aggregate.RateTableID().IsEqual(currentRate.ID()))
}

func TestCorrectDeliveryCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	customer := testPrincipal(t, auth.RoleCustomer)
	target := delivery.StatusAccepted

	cmd, err := commands.NewCorrectDeliveryCommand(kernel.NewUUID(), customer, &target, nil, nil)
	require.NoError(t, err)

	factory := new(MockUoWFactory)
	handler := commands.NewCorrectDeliveryCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, auth.ErrForbiddenRole)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCorrectDeliveryCommand_Validation(t *testing.T) {
	admin := testPrincipal(t, auth.RoleAdmin)

	t.Run("empty correction is rejected", func(t *testing.T) {
		_, err := commands.NewCorrectDeliveryCommand(kernel.NewUUID(), admin, nil, nil, nil)

		require.ErrorIs(t, err, commands.ErrNothingToCorrect)
	})

	t.Run("unknown target status is rejected", func(t *testing.T) {
		target := delivery.StatusUnknown

		_, err := commands.NewCorrectDeliveryCommand(kernel.NewUUID(), admin, &target, nil, nil)

		require.Error(t, err)
	})

	t.Run("invalid assignee id is rejected", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewCorrectDeliveryCommand(kernel.NewUUID(), admin, nil, &invalidID, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

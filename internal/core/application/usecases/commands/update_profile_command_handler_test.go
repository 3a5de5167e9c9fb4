package commands_test

import (
	"testing"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUpdateProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	principal := testPrincipal(t, auth.RoleCustomer)
	account := testCustomerAccount(t, principal.ID())
	phone := "+254700000000"
	newPassword := "fresh-secret"

	cmd, err := commands.NewUpdateProfileCommand(principal, "Jane Doe", &phone, &newPassword)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, principal.ID()).Return(account, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateProfileCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", account.Name())
	require.NotNil(t, account.Phone())
	assert.Equal(t, phone, *account.Phone())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(newPassword)))
}

func TestUpdateProfileCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	principal := testPrincipal(t, auth.RoleCustomer)

	cmd, err := commands.NewUpdateProfileCommand(principal, "Jane", nil, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, principal.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateProfileCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateProfileCommand_Validation(t *testing.T) {
	principal := testPrincipal(t, auth.RoleCustomer)

	t.Run("name is required", func(t *testing.T) {
		_, err := commands.NewUpdateProfileCommand(principal, "", nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("short replacement password is rejected", func(t *testing.T) {
		short := "123"

		_, err := commands.NewUpdateProfileCommand(principal, "Jane", nil, &short)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// UpdateProfileCommandHandler handles profile self-service. The caller can
// only ever touch their own account; the principal id is the lookup key.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.Principal().ID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProfile(cmd.Name(), cmd.Phone()); err != nil {
		return err
	}

	if cmd.NewPassword() != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*cmd.NewPassword()), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		if err = aggregate.ChangePassword(string(hash)); err != nil {
			return err
		}
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a user updating their own profile:
// display name, phone, optionally a new password. The email and role are
// fixed at registration.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	principal   auth.Principal
	name        string
	phone       *string
	newPassword *string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a profile update command.
// A nil newPassword keeps the current one.
func NewUpdateProfileCommand(
	principal auth.Principal,
	name string,
	phone *string,
	newPassword *string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setName(name),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Principal returns the authenticated caller, the profile's owner.
func (c UpdateProfileCommand) Principal() auth.Principal {
	return c.principal
}

// Name returns the new display name.
func (c UpdateProfileCommand) Name() string {
	return c.name
}

// Phone returns the new phone number, or nil to clear it.
func (c UpdateProfileCommand) Phone() *string {
	return c.phone
}

// NewPassword returns the replacement plaintext password, or nil.
func (c UpdateProfileCommand) NewPassword() *string {
	return c.newPassword
}

func (c *UpdateProfileCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *UpdateProfileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProfileCommand) setNewPassword(newPassword *string) error {
	if newPassword == nil {
		return nil
	}
	if len(*newPassword) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(*newPassword), minPasswordLength, 72)
	}

	c.newPassword = newPassword
	return nil
}

package commands

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)

	// ErrEmailAlreadyRegistered is returned when the email is taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// minPasswordLength matches the shortest password accepted at registration.
const minPasswordLength = 6

// RegisterUserCommand represents a new account registration. The password
// travels in plaintext only as far as the handler, which hashes it before
// anything touches storage.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	name     string
	phone    *string
	password string
	role     auth.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. Phone is optional;
// email format and normalization are handled by the aggregate.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email, name string,
	phone *string,
	password string,
	role auth.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		email: email,
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the registration email as submitted.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() *string {
	return c.phone
}

// Password returns the plaintext password for hashing.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() auth.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

// Package user contains the User aggregate for every account in the system.
// Customers, drivers and admins share one account shape; the role decides
// what the account may do.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the aggregate root for an account. The password is stored only as
// a bcrypt hash; the plaintext never reaches the domain.
type User struct {
	id           kernel.UUID
	email        string
	name         string
	phone        *string
	passwordHash string
	role         auth.Role
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates an account. Email is normalized to lowercase and must look
// like an address; phone is optional.
func NewUser(
	id kernel.UUID,
	email, name string,
	phone *string,
	passwordHash string,
	role auth.Role,
	now time.Time,
) (*User, error) {
	u := &User{
		phone:         phone,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(
	id kernel.UUID,
	email, name string,
	phone *string,
	passwordHash string,
	role auth.Role,
	createdAt time.Time,
) (*User, error) {
	return NewUser(id, email, name, phone, passwordHash, role, createdAt)
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account's permanent identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the normalized (lowercase) email address.
func (u *User) Email() string { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Phone returns the optional phone number.
func (u *User) Phone() *string { return u.phone }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the account's role.
func (u *User) Role() auth.Role { return u.role }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// IsDriver reports whether the account holds the driver role.
func (u *User) IsDriver() bool { return u.role == auth.RoleDriver }

// UpdateProfile changes the mutable profile fields. An empty name is
// rejected; a nil phone clears the stored number.
func (u *User) UpdateProfile(name string, phone *string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := u.setName(name); err != nil {
		return err
	}
	u.phone = phone
	return nil
}

// ChangePassword replaces the stored hash. The caller hashes the new
// plaintext before handing it over.
func (u *User) ChangePassword(passwordHash string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}

	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password_hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

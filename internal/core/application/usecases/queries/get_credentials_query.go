package queries

import (
	"errors"
	"strings"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var ErrGetCredentialsQueryIsNotConstructed = errors.New(
	"GetCredentialsQuery must be created via NewGetCredentialsQuery constructor",
)

// GetCredentialsQuery looks up the stored credentials for an email address.
// This is the only read model that exposes the password hash; it exists
// solely for the login endpoint and never leaves the auth boundary.
type GetCredentialsQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetCredentialsQuery creates a credentials lookup for the given email.
// The email is normalized the same way registration normalizes it.
func NewGetCredentialsQuery(email string) (GetCredentialsQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GetCredentialsQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetCredentialsQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrGetCredentialsQueryIsNotConstructed)
}

// Email returns the normalized lookup email.
func (q GetCredentialsQuery) Email() string {
	return q.email
}

// CredentialsView carries what the login flow needs to verify a password
// and mint a token.
type CredentialsView struct {
	UserID       kernel.UUID
	Name         string
	Role         string
	PasswordHash string
}

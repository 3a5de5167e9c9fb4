package ports

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for account aggregates.
type UserRepository interface {
	// Add persists a new account. The email must not already be registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its normalized email address.
	// Returns errs.ErrObjectNotFound when the email is not registered.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

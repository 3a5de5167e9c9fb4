package queries

import (
	"context"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCredentialsQueryHandler resolves login credentials by email.
type GetCredentialsQueryHandler struct {
	db *gorm.DB
}

// NewGetCredentialsQueryHandler creates a handler for credentials lookups.
func NewGetCredentialsQueryHandler(db *gorm.DB) GetCredentialsQueryHandler {
	return GetCredentialsQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ErrObjectNotFound when the email is not registered.
func (h GetCredentialsQueryHandler) Handle(
	ctx context.Context,
	query GetCredentialsQuery,
) (CredentialsView, error) {
	if err := query.Validate(); err != nil {
		return CredentialsView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			role,
			password_hash
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return CredentialsView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CredentialsView{}, err
		}
		return CredentialsView{}, errs.NewObjectNotFoundError("email", query.Email())
	}

	var view CredentialsView
	var id uuid.UUID

	err = rows.Scan(
		&id,
		&view.Name,
		&view.Role,
		&view.PasswordHash,
	)
	if err != nil {
		return CredentialsView{}, err
	}

	if view.UserID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return CredentialsView{}, err
	}

	return view, nil
}

package queries

import (
	"context"
	"database/sql"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProfileQueryHandler retrieves the caller's own account read model.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the profile query.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			phone,
			role,
			created_at
		FROM users
		WHERE id = ?
	`, query.Principal().ID().Bytes()).Rows()
	if err != nil {
		return UserView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserView{}, err
		}
		return UserView{}, errs.NewObjectNotFoundError("user_id", query.Principal().ID())
	}

	var view UserView
	var id uuid.UUID
	var phone sql.NullString

	err = rows.Scan(
		&id,
		&view.Email,
		&view.Name,
		&phone,
		&view.Role,
		&view.CreatedAt,
	)
	if err != nil {
		return UserView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return UserView{}, err
	}
	if phone.Valid {
		view.Phone = &phone.String
	}

	return view, nil
}

package queries

import (
	"context"
	"database/sql"

	"sendit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves account listings for administration.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for account listing queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by registration time.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
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
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if phone.Valid {
			view.Phone = &phone.String
		}

		users = append(users, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

package queries

import (
	"context"
	"database/sql"

	"sendit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRidersQueryHandler retrieves rider listings. Name and phone come from the
// rider record itself; the email is joined in from the backing account, and
// stays empty for legacy records without one.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider listing queries.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by rider name.
func (h GetRidersQueryHandler) Handle(ctx context.Context, query GetRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.user_id,
			r.name,
			r.phone,
			COALESCE(u.email, ''),
			r.created_at
		FROM riders r
		LEFT JOIN users u ON u.id = r.user_id
		ORDER BY r.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]RiderView, 0)
	for rows.Next() {
		var view RiderView
		var id uuid.UUID
		var userID uuid.NullUUID
		var phone sql.NullString

		err = rows.Scan(
			&id,
			&userID,
			&view.Name,
			&phone,
			&view.Email,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if userID.Valid {
			uid, uidErr := kernel.UUIDFromBytes(userID.UUID[:])
			if uidErr != nil {
				return nil, uidErr
			}
			view.UserID = &uid
		}
		if phone.Valid {
			view.Phone = &phone.String
		}

		riders = append(riders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}

package queries

import (
	"context"
	"database/sql"

	"sendit/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const deliveryViewColumns = `
		id,
		customer_id,
		rider_id,
		order_name,
		distance,
		weight,
		size,
		pickup_location,
		drop_off_location,
		previous_drop_off_location,
		total_price,
		status,
		cancellation_reason,
		created_at`

// GetDeliveriesQueryHandler retrieves delivery listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery listing queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the listing query scoped to the caller's role.
// Results are sorted newest first.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Principal()
	tx := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error

	switch {
	case p.IsAdmin():
		rows, err = tx.Raw(`
		SELECT `+deliveryViewColumns+`
		FROM deliveries
		ORDER BY created_at DESC
	`).Rows()
	case p.IsDriver():
		rows, err = tx.Raw(`
		SELECT `+deliveryViewColumns+`
		FROM deliveries
		WHERE rider_id IN (SELECT id FROM riders WHERE user_id = ?)
		ORDER BY created_at DESC
	`, p.ID().Bytes()).Rows()
	default:
		rows, err = tx.Raw(`
		SELECT `+deliveryViewColumns+`
		FROM deliveries
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, p.ID().Bytes()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryView, 0)
	for rows.Next() {
		view, scanErr := scanDeliveryView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func scanDeliveryView(rows *sql.Rows) (DeliveryView, error) {
	var view DeliveryView
	var id, customerID uuid.UUID
	var riderID uuid.NullUUID
	var previousDropOff, cancellationReason sql.NullString

	err := rows.Scan(
		&id,
		&customerID,
		&riderID,
		&view.OrderName,
		&view.Distance,
		&view.Weight,
		&view.Size,
		&view.PickupLocation,
		&view.DropOffLocation,
		&previousDropOff,
		&view.TotalPrice,
		&view.Status,
		&cancellationReason,
		&view.CreatedAt,
	)
	if err != nil {
		return DeliveryView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return DeliveryView{}, err
	}
	if riderID.Valid {
		rid, ridErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if ridErr != nil {
			return DeliveryView{}, ridErr
		}
		view.RiderID = &rid
	}
	if previousDropOff.Valid {
		view.PreviousDropOffLocation = &previousDropOff.String
	}
	if cancellationReason.Valid {
		view.CancellationReason = &cancellationReason.String
	}

	return view, nil
}

package queries

import (
	"context"

	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves a single delivery read model.
// Visibility is enforced in SQL so an invisible delivery is indistinguishable
// from a missing one.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery queries.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. A delivery outside the caller's scope surfaces
// as delivery.ErrNotOwner, keeping the distinction from a true
// errs.ErrObjectNotFound so the transport can answer 403 versus 404.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryViewColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryView{}, err
		}
		return DeliveryView{}, errs.NewObjectNotFoundError("delivery_id", query.DeliveryID())
	}

	view, err := scanDeliveryView(rows)
	if err != nil {
		return DeliveryView{}, err
	}

	if err = h.authorize(ctx, query, view); err != nil {
		return DeliveryView{}, err
	}

	return view, nil
}

func (h GetDeliveryQueryHandler) authorize(ctx context.Context, query GetDeliveryQuery, view DeliveryView) error {
	p := query.Principal()

	switch {
	case p.IsAdmin():
		return nil
	case p.IsCustomer():
		if view.CustomerID.IsEqual(p.ID()) {
			return nil
		}
	case p.IsDriver():
		if view.RiderID == nil {
			break
		}
		var count int64
		err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM riders WHERE id = ? AND user_id = ?
	`, view.RiderID.Bytes(), p.ID().Bytes()).Scan(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
	}

	return delivery.NewNotOwnerError(p.ID(), view.ID)
}

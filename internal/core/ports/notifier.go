package ports

import (
	"context"

	"sendit/internal/core/domain/model/delivery"
)

// StatusNotification carries everything the notifier needs to tell a customer
// about a lifecycle change on one of their deliveries: the delivery, the full
// transition and the customer contact. From equals Status for reminders about
// a delivery that has not moved.
type StatusNotification struct {
	CustomerEmail string
	CustomerName  string
	DeliveryID    string
	OrderName     string
	From          delivery.Status
	Status        delivery.Status
}

// DestinationNotification informs a customer that the drop-off location of
// their delivery was changed.
type DestinationNotification struct {
	CustomerEmail string
	CustomerName  string
	DeliveryID    string
	OrderName     string
	OldDropOff    string
	NewDropOff    string
}

// Notifier sends customer-facing notifications. Implementations are
// best-effort: a notification failure never fails the business operation
// that triggered it.
type Notifier interface {
	// NotifyStatusChanged tells the customer their delivery moved to a new status.
	NotifyStatusChanged(ctx context.Context, n StatusNotification)

	// NotifyDestinationChanged confirms a destination change to the customer.
	NotifyDestinationChanged(ctx context.Context, n DestinationNotification)
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"time"

	"sendit/internal/core/domain/model/kernel"
)

// DeliveryView is the read model shared by the delivery listing and
// single-delivery queries. Prices and measurements are returned as stored;
// the status travels in its lowercase wire form.
type DeliveryView struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	RiderID    *kernel.UUID
	OrderName  string

	Distance float64
	Weight   float64
	Size     float64

	PickupLocation          string
	DropOffLocation         string
	PreviousDropOffLocation *string

	TotalPrice float64
	Status     string

	CancellationReason *string
	CreatedAt          time.Time
}

// UserView is the account read model for profile and admin listings.
// It never carries the password hash.
type UserView struct {
	ID        kernel.UUID
	Email     string
	Name      string
	Phone     *string
	Role      string
	CreatedAt time.Time
}

// RiderView joins a rider record with its backing driver account.
type RiderView struct {
	ID        kernel.UUID
	UserID    *kernel.UUID
	Name      string
	Phone     *string
	Email     string
	CreatedAt time.Time
}

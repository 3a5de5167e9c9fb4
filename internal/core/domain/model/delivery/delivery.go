// Package delivery contains the Delivery aggregate, the authoritative owner of
// a parcel delivery's lifecycle. Every status transition is validated here
// against the state machine and the caller's role before anything is persisted.
package delivery

import (
	"errors"
	"fmt"
	"time"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"
	"sendit/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrNotOwner is the sentinel for ownership failures: a customer touching a
	// delivery they did not create, or a driver touching a delivery assigned to
	// a different rider.
	ErrNotOwner = errors.New("principal does not own this delivery")

	// ErrNotModifiable is the sentinel for self-service operations attempted
	// after the delivery left the Pending/Accepted window.
	ErrNotModifiable = errors.New("delivery is no longer modifiable")

	// DefaultCancellationReason is recorded when the caller omits a reason.
	DefaultCancellationReason = "Customer requested cancellation"
)

// NotOwnerError reports which principal was rejected from which delivery.
type NotOwnerError struct {
	PrincipalID kernel.UUID
	DeliveryID  kernel.UUID
}

// NewNotOwnerError creates a NotOwnerError for the rejected principal.
func NewNotOwnerError(principalID, deliveryID kernel.UUID) *NotOwnerError {
	return &NotOwnerError{PrincipalID: principalID, DeliveryID: deliveryID}
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: principal %s, delivery %s", ErrNotOwner, e.PrincipalID, e.DeliveryID)
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// NotModifiableError names the status that blocks a self-service change.
type NotModifiableError struct {
	Status Status
}

// NewNotModifiableError creates a NotModifiableError for the blocking status.
func NewNotModifiableError(status Status) *NotModifiableError {
	return &NotModifiableError{Status: status}
}

func (e *NotModifiableError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrNotModifiable, e.Status)
}

func (e *NotModifiableError) Unwrap() error {
	return ErrNotModifiable
}

// Cancellation records who cancelled a delivery, when, and why.
// Populated only on the transition into Cancelled.
type Cancellation struct {
	ByRole auth.Role
	ByID   kernel.UUID
	At     time.Time
	Reason string
}

// Delivery is the aggregate root for a parcel delivery.
//
// Invariants:
//   - total price is always consistent with (distance, weight, size) and the
//     rate table used at the last computation
//   - the assigned rider, if present, references a driver-role user's rider record
//   - status only moves forward along the state machine graph; terminal states
//     never reopen
//   - a customer only mutates deliveries they own; a driver only mutates
//     deliveries assigned to their rider record; admin is unrestricted
type Delivery struct {
	id         kernel.UUID
	customerID kernel.UUID
	riderID    *kernel.UUID

	orderName string

	distance float64
	weight   float64
	size     float64

	pickupLocation  string
	dropOffLocation string

	previousDropOffLocation *string
	destinationChangedAt    *time.Time

	totalPrice  float64
	rateTableID kernel.UUID

	status       Status
	cancellation *Cancellation

	createdAt time.Time
	version   int

	isConstructed bool
}

// NewDelivery creates a Pending delivery owned by customerID, pricing it
// against the supplied rate table. Measurements must be strictly positive and
// both locations are required. The order name is an optional human label.
func NewDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	orderName string,
	distance, weight, size float64,
	pickupLocation, dropOffLocation string,
	rate pricing.RateTable,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		orderName:     orderName,
		createdAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setMeasurements(distance, weight, size),
		d.setPickupLocation(pickupLocation),
		d.setDropOffLocation(dropOffLocation),
	); err != nil {
		return nil, err
	}

	if err := d.reprice(rate); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence without repricing.
// The stored total price is trusted; it was computed when the record was written.
func RestoreDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	riderID *kernel.UUID,
	orderName string,
	distance, weight, size float64,
	pickupLocation, dropOffLocation string,
	previousDropOffLocation *string,
	destinationChangedAt *time.Time,
	totalPrice float64,
	rateTableID kernel.UUID,
	status Status,
	cancellation *Cancellation,
	createdAt time.Time,
	version int,
) (*Delivery, error) {
	d := &Delivery{
		riderID:                 riderID,
		orderName:               orderName,
		previousDropOffLocation: previousDropOffLocation,
		destinationChangedAt:    destinationChangedAt,
		totalPrice:              totalPrice,
		rateTableID:             rateTableID,
		status:                  status,
		cancellation:            cancellation,
		createdAt:               createdAt,
		version:                 version,
		isConstructed:           true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setMeasurements(distance, weight, size),
		d.setPickupLocation(pickupLocation),
		d.setDropOffLocation(dropOffLocation),
		status.Validate(),
		rateTableID.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a valid version", version))
	}

	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's permanent identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// CustomerID returns the owning customer's user id. Immutable after creation.
func (d *Delivery) CustomerID() kernel.UUID { return d.customerID }

// RiderID returns the assigned rider record id, or nil while unassigned.
func (d *Delivery) RiderID() *kernel.UUID { return d.riderID }

// OrderName returns the optional human-readable label.
func (d *Delivery) OrderName() string { return d.orderName }

// Distance returns the delivery distance in kilometres.
func (d *Delivery) Distance() float64 { return d.distance }

// Weight returns the parcel weight in kilograms.
func (d *Delivery) Weight() float64 { return d.weight }

// Size returns the parcel size in centimetres.
func (d *Delivery) Size() float64 { return d.size }

// PickupLocation returns the free-form pickup address.
func (d *Delivery) PickupLocation() string { return d.pickupLocation }

// DropOffLocation returns the free-form drop-off address.
func (d *Delivery) DropOffLocation() string { return d.dropOffLocation }

// PreviousDropOffLocation returns the drop-off recorded before the last
// destination change, or nil if the destination was never changed.
func (d *Delivery) PreviousDropOffLocation() *string { return d.previousDropOffLocation }

// DestinationChangedAt returns when the destination last changed, or nil.
func (d *Delivery) DestinationChangedAt() *time.Time { return d.destinationChangedAt }

// TotalPrice returns the price computed at the last measurement write.
func (d *Delivery) TotalPrice() float64 { return d.totalPrice }

// RateTableID returns the id of the rate table used at the last price computation.
func (d *Delivery) RateTableID() kernel.UUID { return d.rateTableID }

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status { return d.status }

// Cancellation returns the cancellation metadata, or nil while not cancelled.
func (d *Delivery) Cancellation() *Cancellation { return d.cancellation }

// CreatedAt returns the creation timestamp. Immutable.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// Version returns the optimistic-concurrency version the aggregate was read at.
func (d *Delivery) Version() int { return d.version }

// IsOwnedBy reports whether the principal is the owning customer.
func (d *Delivery) IsOwnedBy(p auth.Principal) bool {
	return d.customerID.IsEqual(p.ID())
}

// IsAssignedTo reports whether the delivery is assigned to the given rider record.
func (d *Delivery) IsAssignedTo(riderID kernel.UUID) bool {
	return d.riderID != nil && d.riderID.IsEqual(riderID)
}

// Accept moves a Pending delivery to Accepted. Admin only. A rider must either
// already be assigned or be supplied with the call; accepting an unassigned
// delivery is rejected.
func (d *Delivery) Accept(p auth.Principal, riderID *kernel.UUID) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return auth.NewForbiddenRoleError(p.Role(), "accept a delivery")
	}
	if d.status != StatusPending {
		return NewIllegalTransitionError(d.status, StatusAccepted, p.Role())
	}
	if riderID == nil && d.riderID == nil {
		return errs.NewValueIsRequiredError("rider_id")
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return err
		}
		d.riderID = riderID
	}
	d.status = StatusAccepted
	return nil
}

// AssignRider sets or replaces the assigned rider without changing status.
// Admin only; terminal deliveries cannot be reassigned.
func (d *Delivery) AssignRider(p auth.Principal, riderID kernel.UUID) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return auth.NewForbiddenRoleError(p.Role(), "assign a rider")
	}
	if d.status.IsTerminal() {
		return NewNotModifiableError(d.status)
	}
	if err := riderID.Validate(); err != nil {
		return err
	}

	d.riderID = &riderID
	return nil
}

// StartTransit moves an Accepted delivery to InTransit. Only the assigned
// rider may call it; callerRiderID is the rider record resolved for the
// driver principal.
func (d *Delivery) StartTransit(p auth.Principal, callerRiderID kernel.UUID) error {
	return d.driverTransition(p, callerRiderID, StatusAccepted, StatusInTransit)
}

// MarkDelivered moves an InTransit delivery to Delivered, the terminal success
// state. Only the assigned rider may call it.
func (d *Delivery) MarkDelivered(p auth.Principal, callerRiderID kernel.UUID) error {
	return d.driverTransition(p, callerRiderID, StatusInTransit, StatusDelivered)
}

func (d *Delivery) driverTransition(p auth.Principal, callerRiderID kernel.UUID, from, to Status) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}
	if !p.IsDriver() {
		return auth.NewForbiddenRoleError(p.Role(), fmt.Sprintf("set status %s", to))
	}
	// Ownership before transition legality: a mismatched rider gets a
	// role/ownership error even when the edge itself would be invalid.
	if !d.IsAssignedTo(callerRiderID) {
		return NewNotOwnerError(p.ID(), d.id)
	}
	if d.status != from {
		return NewIllegalTransitionError(d.status, to, p.Role())
	}

	d.status = to
	return nil
}

// RequestStatus routes a requested target status through the role-gated
// transition table. Drivers may only request InTransit or Delivered; any other
// target is a ForbiddenTransitionError. Admins may request Accepted or
// Cancelled. callerRiderID is required for driver principals.
func (d *Delivery) RequestStatus(p auth.Principal, target Status, callerRiderID *kernel.UUID, now time.Time) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}

	switch {
	case p.IsDriver():
		switch target {
		case StatusInTransit, StatusDelivered:
			if callerRiderID == nil {
				return errs.NewValueIsRequiredError("rider_id")
			}
			if target == StatusInTransit {
				return d.StartTransit(p, *callerRiderID)
			}
			return d.MarkDelivered(p, *callerRiderID)
		default:
			return NewForbiddenTransitionError(target, p.Role())
		}
	case p.IsAdmin():
		switch target {
		case StatusAccepted:
			return d.Accept(p, nil)
		case StatusCancelled:
			return d.Cancel(p, "", now)
		default:
			return NewIllegalTransitionError(d.status, target, p.Role())
		}
	default:
		return auth.NewForbiddenRoleError(p.Role(), fmt.Sprintf("set status %s", target))
	}
}

// Cancel moves a Pending or Accepted delivery to Cancelled and records the
// cancellation metadata. The owning customer or an admin may cancel; the
// transition is irreversible. An empty reason falls back to
// DefaultCancellationReason.
func (d *Delivery) Cancel(p auth.Principal, reason string, now time.Time) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}

	switch {
	case p.IsAdmin():
		if !d.status.CanTransitionTo(StatusCancelled) {
			return NewIllegalTransitionError(d.status, StatusCancelled, p.Role())
		}
	case p.IsCustomer():
		if !d.IsOwnedBy(p) {
			return NewNotOwnerError(p.ID(), d.id)
		}
		if !d.status.IsModifiable() {
			return NewNotModifiableError(d.status)
		}
	default:
		return auth.NewForbiddenRoleError(p.Role(), "cancel a delivery")
	}

	if reason == "" {
		reason = DefaultCancellationReason
	}

	d.status = StatusCancelled
	d.cancellation = &Cancellation{
		ByRole: p.Role(),
		ByID:   p.ID(),
		At:     now,
		Reason: reason,
	}
	return nil
}

// ChangeDestination replaces the drop-off location, recording the previous one
// and a change timestamp. Only the owning customer may call it, and only while
// the delivery is Pending or Accepted. The price is unaffected.
func (d *Delivery) ChangeDestination(p auth.Principal, newDropOff string, now time.Time) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}
	if !p.IsCustomer() {
		return auth.NewForbiddenRoleError(p.Role(), "change the destination")
	}
	if !d.IsOwnedBy(p) {
		return NewNotOwnerError(p.ID(), d.id)
	}
	if !d.status.IsModifiable() {
		return NewNotModifiableError(d.status)
	}
	if newDropOff == "" {
		return errs.NewValueIsRequiredError("new_destination")
	}

	previous := d.dropOffLocation
	d.previousDropOffLocation = &previous
	d.dropOffLocation = newDropOff
	d.destinationChangedAt = &now
	return nil
}

// CorrectMeasurements replaces distance/weight/size and recomputes the total
// price against the supplied rate table (the one active at correction time,
// not the creation-time table). Admin only, and only before dispatch.
func (d *Delivery) CorrectMeasurements(
	p auth.Principal,
	distance, weight, size float64,
	rate pricing.RateTable,
) error {
	if err := d.guardPrincipal(p); err != nil {
		return err
	}
	if !p.IsAdmin() {
		return auth.NewForbiddenRoleError(p.Role(), "correct measurements")
	}
	if !d.status.IsModifiable() {
		return NewNotModifiableError(d.status)
	}
	if err := d.setMeasurements(distance, weight, size); err != nil {
		return err
	}

	return d.reprice(rate)
}

func (d *Delivery) guardPrincipal(p auth.Principal) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return p.Validate()
}

func (d *Delivery) reprice(rate pricing.RateTable) error {
	price, err := pricing.ComputePrice(d.distance, d.weight, d.size, rate)
	if err != nil {
		return err
	}

	d.totalPrice = price
	d.rateTableID = rate.ID()
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setMeasurements(distance, weight, size float64) error {
	if err := errors.Join(
		validatePositiveMeasurement("distance", distance),
		validatePositiveMeasurement("weight", weight),
		validatePositiveMeasurement("size", size),
	); err != nil {
		return err
	}

	d.distance = distance
	d.weight = weight
	d.size = size
	return nil
}

func validatePositiveMeasurement(paramName string, value float64) error {
	if value <= 0 {
		return pricing.NewInvalidMeasurementError(paramName, value)
	}
	return nil
}

func (d *Delivery) setPickupLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("pickup_location")
	}
	d.pickupLocation = location
	return nil
}

func (d *Delivery) setDropOffLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("drop_off_location")
	}
	d.dropOffLocation = location
	return nil
}

package commands

import (
	"errors"

	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
	"sendit/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a customer's request for a new parcel
// delivery. Measurements are validated by the aggregate; the command only
// checks presence of the required fields.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, principal, "laptop",
//	    10, 2, 1, "221B Baker Street", "10 Downing Street")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	principal  auth.Principal
	orderName  string

	distance float64
	weight   float64
	size     float64

	pickupLocation  string
	dropOffLocation string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to request a new delivery.
// The order name is optional; everything else is required.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	principal auth.Principal,
	orderName string,
	distance, weight, size float64,
	pickupLocation, dropOffLocation string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		orderName: orderName,
		distance:  distance,
		weight:    weight,
		size:      size,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPrincipal(principal),
		cmd.setPickupLocation(pickupLocation),
		cmd.setDropOffLocation(dropOffLocation),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier assigned to the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Principal returns the authenticated caller.
func (c CreateDeliveryCommand) Principal() auth.Principal {
	return c.principal
}

// OrderName returns the optional human-readable label.
func (c CreateDeliveryCommand) OrderName() string {
	return c.orderName
}

// Distance returns the delivery distance in kilometres.
func (c CreateDeliveryCommand) Distance() float64 {
	return c.distance
}

// Weight returns the parcel weight in kilograms.
func (c CreateDeliveryCommand) Weight() float64 {
	return c.weight
}

// Size returns the parcel size in centimetres.
func (c CreateDeliveryCommand) Size() float64 {
	return c.size
}

// PickupLocation returns the pickup address.
func (c CreateDeliveryCommand) PickupLocation() string {
	return c.pickupLocation
}

// DropOffLocation returns the drop-off address.
func (c CreateDeliveryCommand) DropOffLocation() string {
	return c.dropOffLocation
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CreateDeliveryCommand) setPickupLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("pickup_location")
	}

	c.pickupLocation = location
	return nil
}

func (c *CreateDeliveryCommand) setDropOffLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("drop_off_location")
	}

	c.dropOffLocation = location
	return nil
}

// Package pricing holds the rate table value object and the price computation.
// Pricing is pure: a price is a linear combination of distance, weight and size
// against the per-unit coefficients of the active rate table. Prices are
// captured at write time; a later rate table change never retroactively
// reprices an existing delivery.
package pricing

import (
	"errors"
	"fmt"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/guard"
)

var (
	// ErrRateTableIsNotConstructed is returned when a RateTable was not created
	// through NewRateTable or RestoreRateTable.
	ErrRateTableIsNotConstructed = errors.New("RateTable must be created via NewRateTable constructor")

	// ErrRateTableUnconfigured signals that no active rate table exists.
	// Delivery creation cannot proceed without one.
	ErrRateTableUnconfigured = errors.New("no active rate table configured")

	// ErrInvalidMeasurement is the sentinel for negative or missing
	// distance/weight/size inputs.
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

// InvalidMeasurementError reports which measurement was rejected and why.
type InvalidMeasurementError struct {
	ParamName string
	Value     float64
}

// NewInvalidMeasurementError creates an InvalidMeasurementError for the named measurement.
func NewInvalidMeasurementError(paramName string, value float64) *InvalidMeasurementError {
	return &InvalidMeasurementError{ParamName: paramName, Value: value}
}

func (e *InvalidMeasurementError) Error() string {
	return fmt.Sprintf("%s: %s is %v", ErrInvalidMeasurement, e.ParamName, e.Value)
}

func (e *InvalidMeasurementError) Unwrap() error {
	return ErrInvalidMeasurement
}

// RateTable carries the active per-unit pricing coefficients.
// Exactly one rate table is expected to be active at any time, and it is
// immutable during a single price computation (read-once snapshot).
type RateTable struct {
	id         kernel.UUID
	pricePerKm float64
	pricePerKg float64
	pricePerCm float64

	guard guard.ConstructorGuard
}

// NewRateTable creates a rate table after validating that every coefficient
// is non-negative.
func NewRateTable(id kernel.UUID, pricePerKm, pricePerKg, pricePerCm float64) (RateTable, error) {
	if err := id.Validate(); err != nil {
		return RateTable{}, err
	}

	if err := errors.Join(
		validateRate("price_per_km", pricePerKm),
		validateRate("price_per_kg", pricePerKg),
		validateRate("price_per_cm", pricePerCm),
	); err != nil {
		return RateTable{}, err
	}

	return RateTable{
		id:         id,
		pricePerKm: pricePerKm,
		pricePerKg: pricePerKg,
		pricePerCm: pricePerCm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreRateTable reconstructs a rate table from persistence.
func RestoreRateTable(id kernel.UUID, pricePerKm, pricePerKg, pricePerCm float64) (RateTable, error) {
	return NewRateTable(id, pricePerKm, pricePerKg, pricePerCm)
}

func validateRate(paramName string, rate float64) error {
	if rate < 0 {
		return NewInvalidMeasurementError(paramName, rate)
	}
	return nil
}

// Validate ensures the rate table was created through a constructor.
func (r RateTable) Validate() error {
	return r.guard.Validate(ErrRateTableIsNotConstructed)
}

// ID returns the rate table's identifier.
func (r RateTable) ID() kernel.UUID {
	return r.id
}

// PricePerKm returns the coefficient applied to the delivery distance.
func (r RateTable) PricePerKm() float64 {
	return r.pricePerKm
}

// PricePerKg returns the coefficient applied to the parcel weight.
func (r RateTable) PricePerKg() float64 {
	return r.pricePerKg
}

// PricePerCm returns the coefficient applied to the parcel size.
func (r RateTable) PricePerCm() float64 {
	return r.pricePerCm
}

// ComputePrice returns the exact linear combination
//
//	distance*PricePerKm + weight*PricePerKg + size*PricePerCm
//
// for non-negative inputs. Negative inputs are rejected with
// ErrInvalidMeasurement. The function has no side effects and is safe for
// concurrent use.
func ComputePrice(distance, weight, size float64, rate RateTable) (float64, error) {
	if err := rate.Validate(); err != nil {
		return 0, err
	}

	if err := errors.Join(
		validateMeasurement("distance", distance),
		validateMeasurement("weight", weight),
		validateMeasurement("size", size),
	); err != nil {
		return 0, err
	}

	return distance*rate.pricePerKm + weight*rate.pricePerKg + size*rate.pricePerCm, nil
}

func validateMeasurement(paramName string, value float64) error {
	if value < 0 {
		return NewInvalidMeasurementError(paramName, value)
	}
	return nil
}

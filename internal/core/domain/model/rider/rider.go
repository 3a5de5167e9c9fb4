// Package rider contains the Rider aggregate, the delivery-assignment record
// backing a driver account. A rider record is created lazily the first time a
// driver is assigned to a delivery, copying the driver's name and phone.
package rider

import (
	"errors"
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/pkg/errs"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not created
// through NewRider or RestoreRider.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Rider is the record deliveries are assigned to. It usually links back to a
// driver account, but legacy records created by hand carry no user link, so
// the record keeps its own copy of the driver's name and phone.
type Rider struct {
	id     kernel.UUID
	userID *kernel.UUID
	name   string
	phone  *string

	createdAt time.Time

	isConstructed bool
}

// NewRider creates a rider record backed by the given driver account.
// Name and phone are copied from the account at creation time.
func NewRider(id, userID kernel.UUID, name string, phone *string, now time.Time) (*Rider, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return newRider(id, &userID, name, phone, now)
}

// RestoreRider reconstructs a rider record from persistence. userID may be nil
// for legacy records that were never linked to an account.
func RestoreRider(id kernel.UUID, userID *kernel.UUID, name string, phone *string, createdAt time.Time) (*Rider, error) {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}
	return newRider(id, userID, name, phone, createdAt)
}

func newRider(id kernel.UUID, userID *kernel.UUID, name string, phone *string, createdAt time.Time) (*Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Rider{
		id:            id,
		userID:        userID,
		name:          name,
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

// ID returns the rider record's identifier, the value deliveries reference.
func (r *Rider) ID() kernel.UUID { return r.id }

// UserID returns the backing driver account's identifier, or nil for legacy
// records with no account link.
func (r *Rider) UserID() *kernel.UUID { return r.userID }

// Name returns the rider's name as copied at record creation.
func (r *Rider) Name() string { return r.name }

// Phone returns the rider's phone, or nil when the account had none.
func (r *Rider) Phone() *string { return r.phone }

// CreatedAt returns when the record was created.
func (r *Rider) CreatedAt() time.Time { return r.createdAt }

package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCapacityExceeded = errors.New("guests count exceeds package capacity")
	ErrInvalidPackage   = errors.New("selected package is invalid")
)

// CapacityExceededError carries the package capacity so callers can name it.
type CapacityExceededError struct {
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Number of guests exceeds package capacity (%d guests max)", e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// PackageSpec is what booking needs to know about a package.
type PackageSpec struct {
	ID            uuid.UUID
	Capacity      int
	PricePerNight decimal.Decimal
	IsActive      bool
}

// CheckBookable rejects packages that are switched off.
func (p PackageSpec) CheckBookable() error {
	if p.ID == uuid.Nil || !p.IsActive {
		return InvalidFields{FieldPackageID: ErrInvalidPackage}
	}
	return nil
}

func (p PackageSpec) CheckCapacity(guestsCount int) error {
	if guestsCount < 1 {
		return InvalidFields{FieldGuestsCount: ErrInvalidGuestsCount}
	}
	if guestsCount > p.Capacity {
		return &CapacityExceededError{Capacity: p.Capacity}
	}
	return nil
}

type Reservation struct {
	id          uuid.UUID
	bookingCode BookingCode
	packageID   uuid.UUID
	guest       Guest
	stay        Stay
	guestsCount int
	totalPrice  decimal.Decimal
	notes       *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructReservation(
	id uuid.UUID,
	bookingCode BookingCode,
	packageID uuid.UUID,
	guest Guest,
	stay Stay,
	guestsCount int,
	totalPrice decimal.Decimal,
	notes *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		bookingCode: bookingCode,
		packageID:   packageID,
		guest:       guest,
		stay:        stay,
		guestsCount: guestsCount,
		totalPrice:  totalPrice,
		notes:       notes,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ChangeStatus applies an administrative transition. Dates never change.
func (r *Reservation) ChangeStatus(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, r.status, next)
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) Occupancy() Occupancy {
	return Occupancy{ReservationID: r.id, Stay: r.stay, Status: r.status}
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) BookingCode() BookingCode    { return r.bookingCode }
func (r *Reservation) PackageID() uuid.UUID        { return r.packageID }
func (r *Reservation) Guest() Guest                { return r.guest }
func (r *Reservation) Stay() Stay                  { return r.stay }
func (r *Reservation) Nights() int                 { return r.stay.Nights() }
func (r *Reservation) GuestsCount() int            { return r.guestsCount }
func (r *Reservation) TotalPrice() decimal.Decimal { return r.totalPrice }
func (r *Reservation) Notes() *string              { return r.notes }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }

package shared

import (
	"glamping-api/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageSnapshot is the write side's view of a package during booking.
type PackageSnapshot struct {
	ID            uuid.UUID
	Capacity      int
	PricePerNight decimal.Decimal
	IsActive      bool
}

func (p PackageSnapshot) Spec() reservation.PackageSpec {
	return reservation.PackageSpec{
		ID:            p.ID,
		Capacity:      p.Capacity,
		PricePerNight: p.PricePerNight,
		IsActive:      p.IsActive,
	}
}

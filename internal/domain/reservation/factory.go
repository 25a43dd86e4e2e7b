package reservation

import (
	"time"

	"glamping-api/internal/pkg/clock"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft is validated guest input that has not yet been checked against a package.
type Draft struct {
	PackageID   uuid.UUID
	Guest       Guest
	Stay        Stay
	GuestsCount int
	Notes       *string
}

type DraftInput struct {
	PackageID    uuid.UUID
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckInDate  civil.Date
	CheckOutDate civil.Date
	GuestsCount  int
	Notes        *string
}

type Factory struct {
	Clock           clock.Clock
	Location        *time.Location
	PriceCalculator PriceCalculator
}

func NewFactory(clk clock.Clock, loc *time.Location, priceCalculator PriceCalculator) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{
		Clock:           clk,
		Location:        loc,
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) Today() civil.Date {
	return clock.Today(f.Clock, f.Location)
}

// NewDraft validates every field and reports all failures at once.
func (f *Factory) NewDraft(in DraftInput) (Draft, error) {
	fields := InvalidFields{}

	if in.PackageID == uuid.Nil {
		fields.add(FieldPackageID, ErrInvalidPackage)
	}

	guest, err := NewGuest(in.GuestName, in.GuestEmail, in.GuestPhone)
	mergeFields(fields, err)

	stay, err := NewStay(in.CheckInDate, in.CheckOutDate, f.Today())
	mergeFields(fields, err)

	if in.GuestsCount < 1 {
		fields.add(FieldGuestsCount, ErrInvalidGuestsCount)
	}

	if len(fields) > 0 {
		return Draft{}, fields
	}
	return Draft{
		PackageID:   in.PackageID,
		Guest:       guest,
		Stay:        stay,
		GuestsCount: in.GuestsCount,
		Notes:       in.Notes,
	}, nil
}

// Quote is the price of a draft stay at a package's nightly rate.
type Quote struct {
	Nights int
	Total  decimal.Decimal
}

func (f *Factory) Quote(pkg PackageSpec, draft Draft) (Quote, error) {
	total, err := f.PriceCalculator.TotalPrice(pkg.PricePerNight, draft.Stay)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Nights: draft.Stay.Nights(), Total: total}, nil
}

// NewPendingReservation assembles a new reservation once capacity, conflicts,
// price and booking code have all been settled by the caller.
func (f *Factory) NewPendingReservation(pkg PackageSpec, draft Draft, quote Quote, code BookingCode) (*Reservation, error) {
	if err := pkg.CheckCapacity(draft.GuestsCount); err != nil {
		return nil, err
	}
	if _, err := ParseBookingCode(code.String()); err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	return &Reservation{
		id:          uuid.New(),
		bookingCode: code,
		packageID:   pkg.ID,
		guest:       draft.Guest,
		stay:        draft.Stay,
		guestsCount: draft.GuestsCount,
		totalPrice:  quote.Total,
		notes:       draft.Notes,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func mergeFields(dst InvalidFields, err error) {
	if err == nil {
		return
	}
	if src, ok := err.(InvalidFields); ok {
		for field, fieldErr := range src {
			dst.add(field, fieldErr)
		}
	}
}

package queries

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      string
	IsActive  bool
	LastLogin *time.Time
}

type LocationSummary struct {
	ID      uuid.UUID
	Name    string
	Slug    string
	Address *string
}

type LocationView struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Address      *string
	Description  *string
	MapEmbedURL  *string
	Image        *string
	IsActive     bool
	PackageCount int64
	Packages     []PackageView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PackageView struct {
	ID               uuid.UUID
	LocationID       uuid.UUID
	Name             string
	Slug             string
	Description      *string
	ShortDescription *string
	PricePerNight    decimal.Decimal
	Capacity         int
	Facilities       []string
	Images           []string
	IsActive         bool
	Location         *LocationSummary
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReservationPackage is the package as shown next to a reservation.
type ReservationPackage struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	PricePerNight decimal.Decimal
	Capacity      int
	Images        []string
	Location      LocationSummary
}

type ReservationView struct {
	ID           uuid.UUID
	BookingCode  string
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckInDate  civil.Date
	CheckOutDate civil.Date
	Nights       int
	GuestsCount  int
	TotalPrice   decimal.Decimal
	Notes        *string
	Status       string
	Package      ReservationPackage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ReservationListItem struct {
	ID           uuid.UUID
	BookingCode  string
	PackageID    uuid.UUID
	PackageName  string
	LocationName string
	GuestName    string
	GuestEmail   string
	GuestPhone   string
	CheckInDate  civil.Date
	CheckOutDate civil.Date
	GuestsCount  int
	TotalPrice   decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

type ReservationPage struct {
	Items   []*ReservationListItem
	Total   int64
	Page    int
	PerPage int
}

func (p ReservationPage) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

type BookedDateView struct {
	Date   civil.Date
	Status string
}

type AvailabilityView struct {
	PackageID   uuid.UUID
	StartDate   civil.Date
	EndDate     civil.Date
	BookedDates []BookedDateView
}

package response

import (
	"time"

	"glamping-api/internal/usecase/queries"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

type ReservationPackageResponse struct {
	ID            uuid.UUID               `json:"id"`
	Name          string                  `json:"name"`
	Slug          string                  `json:"slug"`
	PricePerNight string                  `json:"price_per_night"`
	Capacity      int                     `json:"capacity"`
	Images        []string                `json:"images"`
	Location      LocationSummaryResponse `json:"location"`
}

type ReservationResponse struct {
	ID           uuid.UUID                  `json:"id"`
	BookingCode  string                     `json:"booking_code"`
	PackageID    uuid.UUID                  `json:"package_id"`
	GuestName    string                     `json:"guest_name"`
	GuestEmail   string                     `json:"guest_email"`
	GuestPhone   string                     `json:"guest_phone"`
	CheckInDate  civil.Date                 `json:"check_in_date"`
	CheckOutDate civil.Date                 `json:"check_out_date"`
	Nights       int                        `json:"nights"`
	GuestsCount  int                        `json:"guests_count"`
	TotalPrice   string                     `json:"total_price"`
	Notes        *string                    `json:"notes"`
	Status       string                     `json:"status"`
	Package      ReservationPackageResponse `json:"package"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

type ReservationListResponse struct {
	ID           uuid.UUID  `json:"id"`
	BookingCode  string     `json:"booking_code"`
	PackageID    uuid.UUID  `json:"package_id"`
	PackageName  string     `json:"package_name"`
	LocationName string     `json:"location_name"`
	GuestName    string     `json:"guest_name"`
	GuestEmail   string     `json:"guest_email"`
	GuestPhone   string     `json:"guest_phone"`
	CheckInDate  civil.Date `json:"check_in_date"`
	CheckOutDate civil.Date `json:"check_out_date"`
	GuestsCount  int        `json:"guests_count"`
	TotalPrice   string     `json:"total_price"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type BookedDateResponse struct {
	Date   civil.Date `json:"date"`
	Status string     `json:"status"`
}

type AvailabilityResponse struct {
	PackageID   uuid.UUID            `json:"package_id"`
	StartDate   civil.Date           `json:"start_date"`
	EndDate     civil.Date           `json:"end_date"`
	BookedDates []BookedDateResponse `json:"booked_dates"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		BookingCode:  v.BookingCode,
		PackageID:    v.Package.ID,
		GuestName:    v.GuestName,
		GuestEmail:   v.GuestEmail,
		GuestPhone:   v.GuestPhone,
		CheckInDate:  v.CheckInDate,
		CheckOutDate: v.CheckOutDate,
		Nights:       v.Nights,
		GuestsCount:  v.GuestsCount,
		TotalPrice:   v.TotalPrice.StringFixed(2),
		Notes:        v.Notes,
		Status:       v.Status,
		Package: ReservationPackageResponse{
			ID:            v.Package.ID,
			Name:          v.Package.Name,
			Slug:          v.Package.Slug,
			PricePerNight: v.Package.PricePerNight.StringFixed(2),
			Capacity:      v.Package.Capacity,
			Images:        v.Package.Images,
			Location:      *fromLocationSummary(v.Package.Location),
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           v.ID,
		BookingCode:  v.BookingCode,
		PackageID:    v.PackageID,
		PackageName:  v.PackageName,
		LocationName: v.LocationName,
		GuestName:    v.GuestName,
		GuestEmail:   v.GuestEmail,
		GuestPhone:   v.GuestPhone,
		CheckInDate:  v.CheckInDate,
		CheckOutDate: v.CheckOutDate,
		GuestsCount:  v.GuestsCount,
		TotalPrice:   v.TotalPrice.StringFixed(2),
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
	}
}

func FromReservationPage(p *queries.ReservationPage) ([]*ReservationListResponse, *Meta) {
	items := make([]*ReservationListResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = FromReservationListItem(it)
	}
	return items, &Meta{
		CurrentPage: p.Page,
		LastPage:    p.LastPage(),
		PerPage:     p.PerPage,
		Total:       p.Total,
	}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	booked := make([]BookedDateResponse, len(v.BookedDates))
	for i, d := range v.BookedDates {
		booked[i] = BookedDateResponse{Date: d.Date, Status: d.Status}
	}
	return &AvailabilityResponse{
		PackageID:   v.PackageID,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		BookedDates: booked,
	}
}

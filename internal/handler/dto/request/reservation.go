package request

import (
	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/pkg/ptr"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

type CreateReservationRequest struct {
	PackageID    string  `json:"package_id" binding:"required,uuid"`
	GuestName    string  `json:"guest_name" binding:"required,max=255"`
	GuestEmail   string  `json:"guest_email" binding:"required,email,max=255"`
	GuestPhone   string  `json:"guest_phone" binding:"required,max=20"`
	CheckInDate  string  `json:"check_in_date" binding:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" binding:"required,datetime=2006-01-02"`
	GuestsCount  int     `json:"guests_count" binding:"required,min=1"`
	Notes        *string `json:"notes"`
}

// ToDomain parses identifiers and dates; every other rule is checked by the domain.
func (r CreateReservationRequest) ToDomain() (reservation.DraftInput, error) {
	fields := reservation.InvalidFields{}

	packageID, err := uuid.Parse(r.PackageID)
	if err != nil {
		fields[reservation.FieldPackageID] = reservation.ErrInvalidPackage
	}
	checkIn, err := civil.ParseDate(r.CheckInDate)
	if err != nil {
		fields[reservation.FieldCheckInDate] = reservation.ErrInvalidDate
	}
	checkOut, err := civil.ParseDate(r.CheckOutDate)
	if err != nil {
		fields[reservation.FieldCheckOutDate] = reservation.ErrInvalidDate
	}
	if len(fields) > 0 {
		return reservation.DraftInput{}, fields
	}

	return reservation.DraftInput{
		PackageID:    packageID,
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		GuestPhone:   r.GuestPhone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestsCount:  r.GuestsCount,
		Notes:        ptr.NonBlank(r.Notes),
	}, nil
}

type CheckReservationRequest struct {
	BookingCode string `json:"booking_code" binding:"required"`
	GuestEmail  string `json:"guest_email" binding:"required,email"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

func (r UpdateReservationStatusRequest) ToDomain() (reservation.Status, error) {
	return reservation.ParseStatus(r.Status)
}

type AvailabilityQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// Window returns nil for omitted bounds.
func (q AvailabilityQuery) Window() (start, end *civil.Date, err error) {
	if q.StartDate != "" {
		d, err := civil.ParseDate(q.StartDate)
		if err != nil {
			return nil, nil, err
		}
		start = &d
	}
	if q.EndDate != "" {
		d, err := civil.ParseDate(q.EndDate)
		if err != nil {
			return nil, nil, err
		}
		end = &d
	}
	return start, end, nil
}

type ListReservationsQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

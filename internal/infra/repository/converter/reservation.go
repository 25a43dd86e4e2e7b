package converter

import (
	"fmt"

	"glamping-api/internal/domain/reservation"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const maxInt32 = 1<<31 - 1

func ReservationToInfra(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	if res.GuestsCount() > maxInt32 {
		return sqlc.CreateReservationParams{}, fmt.Errorf("guests count out of int32 range: %d", res.GuestsCount())
	}

	guest := res.Guest()
	stay := res.Stay()

	return sqlc.CreateReservationParams{
		ID:           res.ID(),
		BookingCode:  res.BookingCode().String(),
		PackageID:    res.PackageID(),
		GuestName:    guest.Name(),
		GuestEmail:   guest.Email(),
		GuestPhone:   guest.Phone(),
		CheckInDate:  pgconv.DateToPgtype(stay.CheckIn()),
		CheckOutDate: pgconv.DateToPgtype(stay.CheckOut()),
		GuestsCount:  int32(res.GuestsCount()), // #nosec G115 -- bounded above
		TotalPrice:   pgconv.DecimalToNumeric(res.TotalPrice()),
		Notes:        pgconv.StringPtrToPgtype(res.Notes()),
		Status:       res.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func ReservationFromInfra(row sqlc.Reservations) (*reservation.Reservation, error) {
	checkIn, err := pgconv.DateFromPgtype(row.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := pgconv.DateFromPgtype(row.CheckOutDate)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID,
		reservation.BookingCode(row.BookingCode),
		row.PackageID,
		reservation.ReconstructGuest(row.GuestName, row.GuestEmail, row.GuestPhone),
		reservation.ReconstructStay(checkIn, checkOut),
		int(row.GuestsCount),
		total,
		pgconv.StringPtrFromPgtype(row.Notes),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// OccupancyFromInfra converts the narrow id/dates/status projection shared by
// the overlap and calendar queries.
func OccupancyFromInfra(id uuid.UUID, checkInDate, checkOutDate pgtype.Date, status string) (reservation.Occupancy, error) {
	checkIn, err := pgconv.DateFromPgtype(checkInDate)
	if err != nil {
		return reservation.Occupancy{}, err
	}
	checkOut, err := pgconv.DateFromPgtype(checkOutDate)
	if err != nil {
		return reservation.Occupancy{}, err
	}
	st, err := reservation.ParseStatus(status)
	if err != nil {
		return reservation.Occupancy{}, err
	}
	return reservation.Occupancy{
		ReservationID: id,
		Stay:          reservation.ReconstructStay(checkIn, checkOut),
		Status:        st,
	}, nil
}

package repository

import (
	"context"

	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/infra"
	"glamping-api/internal/infra/repository/converter"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	BookingCodeExists(ctx context.Context, db sqlc.DBTX, bookingCode string) (bool, error)
	FindOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOverlappingReservationsParams) ([]sqlc.FindOverlappingReservationsRow, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	params, err := converter.ReservationToInfra(res)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}

	resultID, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) BookingCodeExists(ctx context.Context, code reservation.BookingCode) (bool, error) {
	exists, err := r.queries.BookingCodeExists(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking code", err)
	}
	return exists, nil
}

// FindOverlapping returns active reservations of the package whose stay touches the candidate.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, packageID uuid.UUID, stay reservation.Stay) ([]reservation.Occupancy, error) {
	rows, err := r.queries.FindOverlappingReservations(ctx, r.db, sqlc.FindOverlappingReservationsParams{
		PackageID: packageID,
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping reservations", err)
	}

	result := make([]reservation.Occupancy, 0, len(rows))
	for _, row := range rows {
		occ, err := converter.OccupancyFromInfra(row.ID, row.CheckInDate, row.CheckOutDate, row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert reservation occupancy", err, infra.KindDBFailure)
		}
		result = append(result, occ)
	}
	return result, nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

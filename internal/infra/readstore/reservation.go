package readstore

import (
	"context"

	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/infra"
	"glamping-api/internal/infra/repository/converter"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/pkg/pgconv"
	"glamping-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	GetReservationViewByCodeAndEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationViewByCodeAndEmailParams) (sqlc.GetReservationViewByCodeAndEmailRow, error)
	ListReservationsForAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsForAdminParams) ([]sqlc.ListReservationsForAdminRow, error)
	CountReservationsForAdmin(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsForAdminParams) (int64, error)
	ListOccupyingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupyingReservationsParams) ([]sqlc.ListOccupyingReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := toReservationView(reservationViewRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation view", err, infra.KindDBFailure)
	}
	return view, nil
}

// FindByCodeAndEmail matches the e-mail case-insensitively.
func (r *ReservationReadStore) FindByCodeAndEmail(ctx context.Context, code, email string) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByCodeAndEmail(ctx, r.db, sqlc.GetReservationViewByCodeAndEmailParams{
		BookingCode: code,
		GuestEmail:  email,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}

	view, err := toReservationView(reservationViewRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation view", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationListItem, int64, error) {
	status := pgconv.StringPtrToPgtype(filter.Status)
	search := pgconv.StringPtrToPgtype(filter.Search)

	total, err := r.queries.CountReservationsForAdmin(ctx, r.db, sqlc.CountReservationsForAdminParams{
		Status: status,
		Search: search,
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	rows, err := r.queries.ListReservationsForAdmin(ctx, r.db, sqlc.ListReservationsForAdminParams{
		Status:     status,
		Search:     search,
		PageLimit:  filter.Limit(),
		PageOffset: filter.Offset(),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}

	items := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toReservationListItem(row)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to convert reservation list item", err, infra.KindDBFailure)
		}
		items = append(items, item)
	}
	return items, total, nil
}

// Occupancies loads the active reservations of a package that intersect the window.
func (r *ReservationReadStore) Occupancies(ctx context.Context, packageID uuid.UUID, window reservation.Window) ([]reservation.Occupancy, error) {
	rows, err := r.queries.ListOccupyingReservations(ctx, r.db, sqlc.ListOccupyingReservationsParams{
		PackageID:   packageID,
		WindowStart: pgconv.DateToPgtype(window.Start()),
		WindowEnd:   pgconv.DateToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupying reservations", err)
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

// reservationViewRow unifies the two view queries, which share a column list.
type reservationViewRow struct {
	ID                   uuid.UUID
	BookingCode          string
	PackageID            uuid.UUID
	GuestName            string
	GuestEmail           string
	GuestPhone           string
	CheckInDate          pgtype.Date
	CheckOutDate         pgtype.Date
	GuestsCount          int32
	TotalPrice           pgtype.Numeric
	Notes                pgtype.Text
	Status               string
	CreatedAt            pgtype.Timestamptz
	UpdatedAt            pgtype.Timestamptz
	PackageName          string
	PackageSlug          string
	PackagePricePerNight pgtype.Numeric
	PackageCapacity      int32
	PackageImages        []string
	LocationID           uuid.UUID
	LocationName         string
	LocationSlug         string
	LocationAddress      pgtype.Text
}

func toReservationView(row reservationViewRow) (*queries.ReservationView, error) {
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
	price, err := pgconv.DecimalFromNumeric(row.PackagePricePerNight)
	if err != nil {
		return nil, err
	}

	return &queries.ReservationView{
		ID:           row.ID,
		BookingCode:  row.BookingCode,
		GuestName:    row.GuestName,
		GuestEmail:   row.GuestEmail,
		GuestPhone:   row.GuestPhone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Nights:       checkOut.DaysSince(checkIn),
		GuestsCount:  int(row.GuestsCount),
		TotalPrice:   total,
		Notes:        pgconv.StringPtrFromPgtype(row.Notes),
		Status:       row.Status,
		Package: queries.ReservationPackage{
			ID:            row.PackageID,
			Name:          row.PackageName,
			Slug:          row.PackageSlug,
			PricePerNight: price,
			Capacity:      int(row.PackageCapacity),
			Images:        row.PackageImages,
			Location: queries.LocationSummary{
				ID:      row.LocationID,
				Name:    row.LocationName,
				Slug:    row.LocationSlug,
				Address: pgconv.StringPtrFromPgtype(row.LocationAddress),
			},
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toReservationListItem(row sqlc.ListReservationsForAdminRow) (*queries.ReservationListItem, error) {
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

	return &queries.ReservationListItem{
		ID:           row.ID,
		BookingCode:  row.BookingCode,
		PackageID:    row.PackageID,
		PackageName:  row.PackageName,
		LocationName: row.LocationName,
		GuestName:    row.GuestName,
		GuestEmail:   row.GuestEmail,
		GuestPhone:   row.GuestPhone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestsCount:  int(row.GuestsCount),
		TotalPrice:   total,
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

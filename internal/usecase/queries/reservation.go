package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=mock_queries

import (
	"context"
	"strings"

	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/infra"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

var ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)

type ReservationFilter struct {
	Status  *string
	Search  *string
	Page    int
	PerPage int
}

func (f ReservationFilter) Limit() int32 {
	return int32(f.PerPage) // #nosec G115 -- capped by normalize
}

func (f ReservationFilter) Offset() int32 {
	return int32((f.Page - 1) * f.PerPage) // #nosec G115 -- page bounded by caller input size
}

func (f ReservationFilter) normalize() (ReservationFilter, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if f.Search != nil {
		s := strings.TrimSpace(*f.Search)
		if s == "" {
			f.Search = nil
		} else {
			f.Search = &s
		}
	}
	if f.Status != nil {
		if *f.Status == "" {
			f.Status = nil
		} else if _, err := reservation.ParseStatus(*f.Status); err != nil {
			return f, shared.FieldValidationError("status", "The selected status is invalid.")
		}
	}
	return f, nil
}

type ReservationQueries interface {
	// CheckBooking is the guest self-service lookup by booking code and e-mail.
	CheckBooking(ctx context.Context, bookingCode, guestEmail string) (*ReservationView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) (*ReservationPage, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByCodeAndEmail(ctx context.Context, code, email string) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationListItem, int64, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) CheckBooking(ctx context.Context, bookingCode, guestEmail string) (*ReservationView, error) {
	code, err := reservation.ParseBookingCode(bookingCode)
	if err != nil {
		// A malformed code cannot match anything.
		return nil, ErrReservationNotFound
	}

	view, err := q.store.FindByCodeAndEmail(ctx, code.String(), strings.TrimSpace(guestEmail))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) (*ReservationPage, error) {
	filter, err := filter.normalize()
	if err != nil {
		return nil, err
	}

	items, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ReservationPage{
		Items:   items,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

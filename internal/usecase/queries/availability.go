package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=mock_queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/pkg/clock"
	"glamping-api/internal/pkg/config"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/shared"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

var ErrPackageNotFound = errs.Mark(errs.New("package not found"), errs.ErrNotFound)

type AvailabilityQueries interface {
	// GetBookedDates reports booked days for the package. Nil bounds fall back
	// to today and today plus the configured number of months.
	GetBookedDates(ctx context.Context, packageID uuid.UUID, start, end *civil.Date) (*AvailabilityView, error)
}

type AvailabilityReadStore interface {
	Occupancies(ctx context.Context, packageID uuid.UUID, window reservation.Window) ([]reservation.Occupancy, error)
}

type ActivePackageChecker interface {
	ActivePackageExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// CacheLookup is the outcome of a cache read. Version is the package version
// the read observed; a miss is written back under that version, never a newer one.
type CacheLookup struct {
	View    *AvailabilityView
	Version int64
	Hit     bool
}

type AvailabilityCache interface {
	Get(ctx context.Context, packageID uuid.UUID, start, end civil.Date) (CacheLookup, error)
	Set(ctx context.Context, version int64, view *AvailabilityView) error
	Invalidate(ctx context.Context, packageID uuid.UUID) error
}

type availabilityQueriesImpl struct {
	store    AvailabilityReadStore
	packages ActivePackageChecker
	cache    AvailabilityCache
	clock    clock.Clock
	loc      *time.Location
	cfg      config.BookingConfig
}

func NewAvailabilityQueries(
	store AvailabilityReadStore,
	packages ActivePackageChecker,
	cache AvailabilityCache,
	clk clock.Clock,
	loc *time.Location,
	cfg config.BookingConfig,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:    store,
		packages: packages,
		cache:    cache,
		clock:    clk,
		loc:      loc,
		cfg:      cfg,
	}
}

func (q *availabilityQueriesImpl) GetBookedDates(ctx context.Context, packageID uuid.UUID, start, end *civil.Date) (*AvailabilityView, error) {
	window, err := q.resolveWindow(start, end)
	if err != nil {
		return nil, err
	}

	exists, err := q.packages.ActivePackageExists(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPackageNotFound
	}

	lookup, cacheErr := q.cache.Get(ctx, packageID, window.Start(), window.End())
	if cacheErr != nil {
		slog.Warn("availability cache read failed", "package_id", packageID, "error", cacheErr.Error())
	} else if lookup.Hit {
		return lookup.View, nil
	}

	occupancies, err := q.store.Occupancies(ctx, packageID, window)
	if err != nil {
		return nil, err
	}

	booked := reservation.BookedDates(window, occupancies)
	view := &AvailabilityView{
		PackageID:   packageID,
		StartDate:   window.Start(),
		EndDate:     window.End(),
		BookedDates: make([]BookedDateView, 0, len(booked)),
	}
	for _, b := range booked {
		view.BookedDates = append(view.BookedDates, BookedDateView{Date: b.Date, Status: b.Status.String()})
	}

	// without a known version the entry could outlive an invalidation
	if cacheErr == nil {
		if err := q.cache.Set(ctx, lookup.Version, view); err != nil {
			slog.Warn("availability cache write failed", "package_id", packageID, "error", err.Error())
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) resolveWindow(start, end *civil.Date) (reservation.Window, error) {
	today := clock.Today(q.clock, q.loc)
	if start == nil && end == nil {
		return reservation.DefaultWindow(today, q.cfg.AvailabilityDefaultMonths), nil
	}

	from := today
	if start != nil {
		from = *start
	}
	to := reservation.DefaultWindow(from, q.cfg.AvailabilityDefaultMonths).End()
	if end != nil {
		to = *end
	}

	window, err := reservation.NewWindow(from, to, q.cfg.AvailabilityMaxDays)
	switch {
	case err == nil:
		return window, nil
	case errors.Is(err, reservation.ErrInvalidWindow):
		return reservation.Window{}, shared.FieldValidationError("end_date", "The end date must be a date after or equal to start date.")
	case errors.Is(err, reservation.ErrWindowTooLarge):
		return reservation.Window{}, shared.FieldValidationError("end_date", "The requested date range is too large.")
	default:
		return reservation.Window{}, shared.FieldValidationError("start_date", "The start date is not a valid date.")
	}
}

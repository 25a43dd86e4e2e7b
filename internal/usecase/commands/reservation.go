package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=mock_commands

import (
	"context"
	"log/slog"

	"glamping-api/internal/domain/reservation"
	reqdto "glamping-api/internal/handler/dto/request"
	"glamping-api/internal/infra"
	"glamping-api/internal/pkg/clock"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityInvalidator drops cached calendars for a package.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, packageID uuid.UUID) error
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	codes   *reservation.CodeGenerator
	views   queries.ReservationQueries
	cache   AvailabilityInvalidator
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	codes *reservation.CodeGenerator,
	views queries.ReservationQueries,
	cache AvailabilityInvalidator,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		codes:   codes,
		views:   views,
		cache:   cache,
		clock:   clk,
	}
}

// CreateReservation books a package. Everything from the package lookup to the
// insert runs in one serializable transaction, so concurrent requests for the
// same dates cannot both commit.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	input, err := req.ToDomain()
	if err != nil {
		return nil, errs.Wrap(asValidationError(err), "create reservation")
	}

	draft, err := c.factory.NewDraft(input)
	if err != nil {
		return nil, errs.Wrap(asValidationError(err), "create reservation")
	}

	var (
		created *reservation.Reservation
		booked  reservation.PackageSpec
	)
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		pkg, err := c.bookablePackage(ctx, tx, draft.PackageID)
		if err != nil {
			return err
		}

		if err := pkg.CheckCapacity(draft.GuestsCount); err != nil {
			return capacityExceeded(asValidationError(err))
		}

		existing, err := tx.Reservations().FindOverlapping(ctx, pkg.ID, draft.Stay)
		if err != nil {
			return err
		}
		if reservation.HasConflict(draft.Stay, existing) {
			return datesUnavailable()
		}

		quote, err := c.factory.Quote(pkg, draft)
		if err != nil {
			return err
		}

		code, err := c.codes.Generate(ctx, tx.Reservations())
		if err != nil {
			if errs.Is(err, reservation.ErrCodeGenerationExhausted) {
				return errs.Mark(err, errs.ErrCodeGenerationExhausted)
			}
			return err
		}

		res, err := c.factory.NewPendingReservation(pkg, draft, quote, code)
		if err != nil {
			return capacityExceeded(asValidationError(err))
		}

		if _, err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolated) {
				return datesUnavailable()
			}
			return err
		}
		created = res
		booked = pkg
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "create reservation")
	}

	c.invalidate(ctx, created.PackageID())
	slog.Info("reservation created",
		"reservation_id", created.ID(),
		"booking_code", created.BookingCode().String(),
		"package_id", created.PackageID(),
		"check_in_date", created.Stay().CheckIn().String(),
		"check_out_date", created.Stay().CheckOut().String(),
		"total_price", created.TotalPrice().StringFixed(2))

	view, err := c.views.GetByID(ctx, created.ID())
	if err != nil {
		// the booking is committed; a failed re-read must not turn it into an error
		slog.Warn("failed to load created reservation",
			"reservation_id", created.ID(),
			"booking_code", created.BookingCode().String(),
			"error", err.Error())
		return committedView(created, booked), nil
	}
	return view, nil
}

// committedView renders a reservation from what the create transaction already holds.
func committedView(res *reservation.Reservation, pkg reservation.PackageSpec) *queries.ReservationView {
	guest := res.Guest()
	return &queries.ReservationView{
		ID:           res.ID(),
		BookingCode:  res.BookingCode().String(),
		GuestName:    guest.Name(),
		GuestEmail:   guest.Email(),
		GuestPhone:   guest.Phone(),
		CheckInDate:  res.Stay().CheckIn(),
		CheckOutDate: res.Stay().CheckOut(),
		Nights:       res.Nights(),
		GuestsCount:  res.GuestsCount(),
		TotalPrice:   res.TotalPrice(),
		Notes:        res.Notes(),
		Status:       res.Status().String(),
		Package: queries.ReservationPackage{
			ID:            pkg.ID,
			PricePerNight: pkg.PricePerNight,
			Capacity:      pkg.Capacity,
			Images:        []string{},
		},
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}
}

func (c *reservationCommandsImpl) bookablePackage(ctx context.Context, tx shared.Tx, id uuid.UUID) (reservation.PackageSpec, error) {
	snapshot, err := tx.Reads().PackageForBooking(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.PackageSpec{}, shared.FieldValidationError(reservation.FieldPackageID, MsgInvalidPackage)
		}
		return reservation.PackageSpec{}, err
	}

	spec := snapshot.Spec()
	if err := spec.CheckBookable(); err != nil {
		return reservation.PackageSpec{}, asValidationError(err)
	}
	return spec, nil
}

// UpdateStatus applies an administrative transition. Moving a reservation back
// into the active set re-checks it against the package calendar.
func (c *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error) {
	next, err := req.ToDomain()
	if err != nil {
		return nil, shared.FieldValidationError(reservation.FieldStatus, "The selected status is invalid.")
	}

	var (
		packageID uuid.UUID
		previous  reservation.Status
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().GetForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrReservationNotFound
			}
			return err
		}
		packageID = res.PackageID()
		previous = res.Status()

		if previous == next {
			return nil
		}
		if err := res.ChangeStatus(next, c.clock.Now()); err != nil {
			return shared.FieldValidationError(reservation.FieldStatus,
				"Cannot change reservation status from "+previous.String()+" to "+next.String()+".")
		}

		if !previous.Occupies() && next.Occupies() {
			existing, err := tx.Reservations().FindOverlapping(ctx, packageID, res.Stay())
			if err != nil {
				return err
			}
			if reservation.HasConflict(res.Stay(), existing, res.ID()) {
				return datesUnavailable()
			}
		}

		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolated) {
				return datesUnavailable()
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "update reservation status")
	}

	if previous != next {
		c.invalidate(ctx, packageID)
		slog.Info("reservation status updated",
			"reservation_id", id,
			"package_id", packageID,
			"from", previous.String(),
			"to", next.String())
	}

	return c.views.GetByID(ctx, id)
}

func (c *reservationCommandsImpl) invalidate(ctx context.Context, packageID uuid.UUID) {
	if err := c.cache.Invalidate(ctx, packageID); err != nil {
		slog.Warn("failed to invalidate availability cache", "package_id", packageID, "error", err.Error())
	}
}

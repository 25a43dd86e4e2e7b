package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=mock_commands

import (
	"context"
	"log/slog"

	"glamping-api/internal/domain/catalog"
	reqdto "glamping-api/internal/handler/dto/request"
	"glamping-api/internal/infra"
	"glamping-api/internal/pkg/clock"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPackageHasReservations = errs.Mark(errs.New("package has reservations and cannot be deleted"), errs.ErrConflict)
	ErrLocationHasPackages    = errs.Mark(errs.New("location has packages and cannot be deleted"), errs.ErrConflict)
)

const msgSlugTaken = "The name has already been taken."

type CatalogCommands interface {
	CreatePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, req reqdto.UpdatePackageRequest) (*queries.PackageView, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
	CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (*queries.LocationView, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, req reqdto.UpdateLocationRequest) (*queries.LocationView, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.CatalogQueries
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, views queries.CatalogQueries, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, views: views, clock: clk}
}

func (c *catalogCommandsImpl) CreatePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error) {
	pkg, err := catalog.NewPackage(req.ToDomain(), c.clock.Now())
	if err != nil {
		return nil, errs.Wrap(asValidationError(err), "create package")
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.requireLocation(ctx, tx, pkg.LocationID()); err != nil {
			return err
		}
		_, err := tx.Packages().Create(ctx, pkg)
		return catalogWriteErr(err)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create package")
	}

	slog.Info("package created", "package_id", pkg.ID(), "slug", pkg.Slug().String())
	return c.views.AdminGetPackage(ctx, pkg.ID())
}

func (c *catalogCommandsImpl) UpdatePackage(ctx context.Context, id uuid.UUID, req reqdto.UpdatePackageRequest) (*queries.PackageView, error) {
	changes := req.ToDomain()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pkg, err := tx.Packages().GetForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrPackageNotFound
			}
			return err
		}

		if err := pkg.Apply(changes, c.clock.Now()); err != nil {
			return asValidationError(err)
		}
		if changes.LocationID != nil {
			if err := c.requireLocation(ctx, tx, pkg.LocationID()); err != nil {
				return err
			}
		}
		return catalogWriteErr(tx.Packages().Update(ctx, pkg))
	})
	if err != nil {
		return nil, errs.Wrap(err, "update package")
	}

	slog.Info("package updated", "package_id", id)
	return c.views.AdminGetPackage(ctx, id)
}

// DeletePackage refuses to remove a package that any reservation still points at.
func (c *catalogCommandsImpl) DeletePackage(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Packages().GetForUpdate(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrPackageNotFound
			}
			return err
		}

		count, err := tx.Packages().CountReservations(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrPackageHasReservations
		}

		err = tx.Packages().Delete(ctx, id)
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrPackageHasReservations
		case infra.IsKind(err, infra.KindNotFound):
			return queries.ErrPackageNotFound
		}
		return err
	})
	if err != nil {
		return errs.Wrap(err, "delete package")
	}

	slog.Info("package deleted", "package_id", id)
	return nil
}

func (c *catalogCommandsImpl) CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (*queries.LocationView, error) {
	loc, err := catalog.NewLocation(req.ToDomain(), c.clock.Now())
	if err != nil {
		return nil, errs.Wrap(asValidationError(err), "create location")
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Locations().Create(ctx, loc)
		return catalogWriteErr(err)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create location")
	}

	slog.Info("location created", "location_id", loc.ID(), "slug", loc.Slug().String())
	return c.views.AdminGetLocation(ctx, loc.ID())
}

func (c *catalogCommandsImpl) UpdateLocation(ctx context.Context, id uuid.UUID, req reqdto.UpdateLocationRequest) (*queries.LocationView, error) {
	changes := req.ToDomain()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Locations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrLocationNotFound
			}
			return err
		}
		if err := loc.Apply(changes, c.clock.Now()); err != nil {
			return asValidationError(err)
		}
		return catalogWriteErr(tx.Locations().Update(ctx, loc))
	})
	if err != nil {
		return nil, errs.Wrap(err, "update location")
	}

	slog.Info("location updated", "location_id", id)
	return c.views.AdminGetLocation(ctx, id)
}

// DeleteLocation refuses to remove a location that still owns packages, active or not.
func (c *catalogCommandsImpl) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Locations().FindByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrLocationNotFound
			}
			return err
		}

		count, err := tx.Locations().CountPackages(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrLocationHasPackages
		}

		err = tx.Locations().Delete(ctx, id)
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrLocationHasPackages
		case infra.IsKind(err, infra.KindNotFound):
			return queries.ErrLocationNotFound
		}
		return err
	})
	if err != nil {
		return errs.Wrap(err, "delete location")
	}

	slog.Info("location deleted", "location_id", id)
	return nil
}

func (c *catalogCommandsImpl) requireLocation(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	ok, err := tx.Reads().LocationExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return shared.FieldValidationError(catalog.FieldLocationID, MsgInvalidLocation)
	}
	return nil
}

// catalogWriteErr maps constraint violations on catalog tables to field errors.
func catalogWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return shared.FieldValidationError(catalog.FieldName, msgSlugTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return shared.FieldValidationError(catalog.FieldLocationID, MsgInvalidLocation)
	}
	return err
}

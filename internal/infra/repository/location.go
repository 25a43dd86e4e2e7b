package repository

import (
	"context"

	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/infra"
	"glamping-api/internal/infra/repository/converter"
	sqlc "glamping-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type LocationWriteQueries interface {
	CreateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLocationParams) (uuid.UUID, error)
	GetLocationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error)
	UpdateLocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLocationParams) (int64, error)
	DeleteLocation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountPackagesByLocation(ctx context.Context, db sqlc.DBTX, locationID uuid.UUID) (int64, error)
}

type LocationRepository struct {
	queries LocationWriteQueries
	db      sqlc.DBTX
}

func NewLocationRepository(queries LocationWriteQueries, db sqlc.DBTX) *LocationRepository {
	return &LocationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LocationRepository) Create(ctx context.Context, l *catalog.Location) (uuid.UUID, error) {
	id, err := r.queries.CreateLocation(ctx, r.db, converter.LocationToCreateParams(l))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create location", err)
	}
	return id, nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Location, error) {
	row, err := r.queries.GetLocationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find location", err)
	}
	return converter.LocationFromInfra(row), nil
}

func (r *LocationRepository) Update(ctx context.Context, l *catalog.Location) error {
	affected, err := r.queries.UpdateLocation(ctx, r.db, converter.LocationToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update location", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteLocation(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete location", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LocationRepository) CountPackages(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := r.queries.CountPackagesByLocation(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count location packages", err)
	}
	return n, nil
}

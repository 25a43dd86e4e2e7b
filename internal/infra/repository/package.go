package repository

import (
	"context"

	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/infra"
	"glamping-api/internal/infra/repository/converter"
	sqlc "glamping-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PackageWriteQueries interface {
	CreatePackage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePackageParams) (uuid.UUID, error)
	GetPackageForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Packages, error)
	UpdatePackage(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePackageParams) (int64, error)
	DeletePackage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CountReservationsByPackage(ctx context.Context, db sqlc.DBTX, packageID uuid.UUID) (int64, error)
}

type PackageRepository struct {
	queries PackageWriteQueries
	db      sqlc.DBTX
}

func NewPackageRepository(queries PackageWriteQueries, db sqlc.DBTX) *PackageRepository {
	return &PackageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PackageRepository) Create(ctx context.Context, p *catalog.Package) (uuid.UUID, error) {
	params, err := converter.PackageToCreateParams(p)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
	}

	id, err := r.queries.CreatePackage(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create package", err)
	}
	return id, nil
}

func (r *PackageRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	row, err := r.queries.GetPackageForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock package", err)
	}

	p, err := converter.PackageFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *PackageRepository) Update(ctx context.Context, p *catalog.Package) error {
	params, err := converter.PackageToUpdateParams(p)
	if err != nil {
		return infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
	}

	affected, err := r.queries.UpdatePackage(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update package", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("package not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeletePackage(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete package", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("package not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PackageRepository) CountReservations(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := r.queries.CountReservationsByPackage(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count package reservations", err)
	}
	return n, nil
}

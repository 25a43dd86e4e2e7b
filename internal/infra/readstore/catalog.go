package readstore

import (
	"context"

	"glamping-api/internal/infra"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/pkg/pgconv"
	"glamping-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	ListActiveLocations(ctx context.Context, db sqlc.DBTX) ([]sqlc.Locations, error)
	GetActiveLocationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error)
	ListLocationsWithPackageCount(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListLocationsWithPackageCountRow, error)
	GetLocationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Locations, error)
	ListActivePackages(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActivePackagesParams) ([]sqlc.ListActivePackagesRow, error)
	ListActivePackagesByLocationIDs(ctx context.Context, db sqlc.DBTX, locationIds []uuid.UUID) ([]sqlc.Packages, error)
	ListFeaturedPackages(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListFeaturedPackagesRow, error)
	GetActivePackageBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.GetActivePackageBySlugRow, error)
	GetActivePackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	ListAllPackages(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListAllPackagesRow, error)
	GetPackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPackageByIDRow, error)
	GetPackageForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPackageForBookingRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// ListActiveLocations returns active locations, each carrying its active packages.
func (r *CatalogReadStore) ListActiveLocations(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListActiveLocations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active locations", err)
	}

	locations := make([]*queries.LocationView, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, toLocationView(row))
		ids = append(ids, row.ID)
	}
	if err := r.attachPackages(ctx, locations, ids); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *CatalogReadStore) FindActiveLocation(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	row, err := r.queries.GetActiveLocationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active location", err)
	}

	location := toLocationView(row)
	if err := r.attachPackages(ctx, []*queries.LocationView{location}, []uuid.UUID{row.ID}); err != nil {
		return nil, err
	}
	return location, nil
}

func (r *CatalogReadStore) attachPackages(ctx context.Context, locations []*queries.LocationView, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := r.queries.ListActivePackagesByLocationIDs(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list packages by location", err)
	}

	byLocation := make(map[uuid.UUID][]queries.PackageView, len(ids))
	for _, row := range rows {
		view, err := toPackageView(packageRow(row), nil)
		if err != nil {
			return infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
		}
		byLocation[row.LocationID] = append(byLocation[row.LocationID], *view)
	}
	for _, l := range locations {
		l.Packages = byLocation[l.ID]
		if l.Packages == nil {
			l.Packages = []queries.PackageView{}
		}
		l.PackageCount = int64(len(l.Packages))
	}
	return nil
}

func (r *CatalogReadStore) ListLocations(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.queries.ListLocationsWithPackageCount(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}

	result := make([]*queries.LocationView, 0, len(rows))
	for _, row := range rows {
		view := toLocationView(sqlc.Locations{
			ID:          row.ID,
			Name:        row.Name,
			Slug:        row.Slug,
			Address:     row.Address,
			Description: row.Description,
			MapEmbedUrl: row.MapEmbedUrl,
			Image:       row.Image,
			IsActive:    row.IsActive,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
		view.PackageCount = row.PackageCount
		result = append(result, view)
	}
	return result, nil
}

func (r *CatalogReadStore) FindLocationByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	row, err := r.queries.GetLocationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find location", err)
	}
	return toLocationView(row), nil
}

func (r *CatalogReadStore) ListActivePackages(ctx context.Context, filter queries.PackageFilter) ([]*queries.PackageView, error) {
	rows, err := r.queries.ListActivePackages(ctx, r.db, sqlc.ListActivePackagesParams{
		LocationID: pgconv.UUIDPtrToPgtype(filter.LocationID),
		Search:     pgconv.StringPtrToPgtype(filter.Search),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active packages", err)
	}

	result := make([]*queries.PackageView, 0, len(rows))
	for _, row := range rows {
		view, err := packageWithLocationRow(row).view()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *CatalogReadStore) ListFeaturedPackages(ctx context.Context, limit int32) ([]*queries.PackageView, error) {
	rows, err := r.queries.ListFeaturedPackages(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured packages", err)
	}

	result := make([]*queries.PackageView, 0, len(rows))
	for _, row := range rows {
		view, err := packageWithLocationRow(row).view()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *CatalogReadStore) FindActivePackageBySlug(ctx context.Context, slug string) (*queries.PackageView, error) {
	row, err := r.queries.GetActivePackageBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find package by slug", err)
	}

	view, err := packageWithLocationRow(row).view()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
	}
	return view, nil
}

// ActivePackageExists reports false, not an error, for unknown or inactive packages.
func (r *CatalogReadStore) ActivePackageExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.queries.GetActivePackageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check package", err)
	}
	return true, nil
}

func (r *CatalogReadStore) ListPackages(ctx context.Context) ([]*queries.PackageView, error) {
	rows, err := r.queries.ListAllPackages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}

	result := make([]*queries.PackageView, 0, len(rows))
	for _, row := range rows {
		view, err := packageWithLocationRow(row).view()
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *CatalogReadStore) FindPackageByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	row, err := r.queries.GetPackageByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find package", err)
	}

	view, err := packageWithLocationRow(row).view()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert package", err, infra.KindDBFailure)
	}
	return view, nil
}

// FindBookingTerms loads only what booking needs: capacity, price and whether the package is on sale.
func (r *CatalogReadStore) FindBookingTerms(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	row, err := r.queries.GetPackageForBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load package for booking", err)
	}

	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert package price", err, infra.KindDBFailure)
	}
	return &queries.PackageView{
		ID:            row.ID,
		Capacity:      int(row.Capacity),
		PricePerNight: price,
		IsActive:      row.IsActive,
	}, nil
}

func toLocationView(row sqlc.Locations) *queries.LocationView {
	return &queries.LocationView{
		ID:          row.ID,
		Name:        row.Name,
		Slug:        row.Slug,
		Address:     pgconv.StringPtrFromPgtype(row.Address),
		Description: pgconv.StringPtrFromPgtype(row.Description),
		MapEmbedURL: pgconv.StringPtrFromPgtype(row.MapEmbedUrl),
		Image:       pgconv.StringPtrFromPgtype(row.Image),
		IsActive:    row.IsActive,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

// packageRow mirrors sqlc.Packages so every package query can share one converter.
type packageRow sqlc.Packages

// packageWithLocationRow mirrors the package-plus-location projection shared by
// the joined package queries.
type packageWithLocationRow struct {
	ID               uuid.UUID
	LocationID       uuid.UUID
	Name             string
	Slug             string
	Description      pgtype.Text
	ShortDescription pgtype.Text
	PricePerNight    pgtype.Numeric
	Capacity         int32
	Facilities       []string
	Images           []string
	IsActive         bool
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
	LocationName     string
	LocationSlug     string
}

func (r packageWithLocationRow) packageRow() packageRow {
	return packageRow{
		ID:               r.ID,
		LocationID:       r.LocationID,
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		PricePerNight:    r.PricePerNight,
		Capacity:         r.Capacity,
		Facilities:       r.Facilities,
		Images:           r.Images,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r packageWithLocationRow) view() (*queries.PackageView, error) {
	return toPackageView(r.packageRow(), &queries.LocationSummary{
		ID:   r.LocationID,
		Name: r.LocationName,
		Slug: r.LocationSlug,
	})
}

func toPackageView(row packageRow, location *queries.LocationSummary) (*queries.PackageView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, err
	}

	facilities := row.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	images := row.Images
	if images == nil {
		images = []string{}
	}

	return &queries.PackageView{
		ID:               row.ID,
		LocationID:       row.LocationID,
		Name:             row.Name,
		Slug:             row.Slug,
		Description:      pgconv.StringPtrFromPgtype(row.Description),
		ShortDescription: pgconv.StringPtrFromPgtype(row.ShortDescription),
		PricePerNight:    price,
		Capacity:         int(row.Capacity),
		Facilities:       facilities,
		Images:           images,
		IsActive:         row.IsActive,
		Location:         location,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

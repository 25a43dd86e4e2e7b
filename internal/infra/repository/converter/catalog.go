package converter

import (
	"fmt"

	"glamping-api/internal/domain/catalog"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/pkg/pgconv"
)

func PackageToCreateParams(p *catalog.Package) (sqlc.CreatePackageParams, error) {
	capacity, err := capacityToInt32(p.Capacity())
	if err != nil {
		return sqlc.CreatePackageParams{}, err
	}

	return sqlc.CreatePackageParams{
		ID:               p.ID(),
		LocationID:       p.LocationID(),
		Name:             p.Name().String(),
		Slug:             p.Slug().String(),
		Description:      pgconv.StringPtrToPgtype(p.Description()),
		ShortDescription: pgconv.StringPtrToPgtype(p.ShortDescription()),
		PricePerNight:    pgconv.DecimalToNumeric(p.PricePerNight()),
		Capacity:         capacity,
		Facilities:       p.Facilities(),
		Images:           p.Images(),
		IsActive:         p.IsActive(),
		CreatedAt:        pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}, nil
}

func PackageToUpdateParams(p *catalog.Package) (sqlc.UpdatePackageParams, error) {
	capacity, err := capacityToInt32(p.Capacity())
	if err != nil {
		return sqlc.UpdatePackageParams{}, err
	}

	return sqlc.UpdatePackageParams{
		ID:               p.ID(),
		LocationID:       p.LocationID(),
		Name:             p.Name().String(),
		Slug:             p.Slug().String(),
		Description:      pgconv.StringPtrToPgtype(p.Description()),
		ShortDescription: pgconv.StringPtrToPgtype(p.ShortDescription()),
		PricePerNight:    pgconv.DecimalToNumeric(p.PricePerNight()),
		Capacity:         capacity,
		Facilities:       p.Facilities(),
		Images:           p.Images(),
		IsActive:         p.IsActive(),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}, nil
}

func PackageFromInfra(row sqlc.Packages) (*catalog.Package, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, err
	}

	return catalog.ReconstructPackage(
		row.ID,
		row.LocationID,
		row.Name,
		row.Slug,
		pgconv.StringPtrFromPgtype(row.Description),
		pgconv.StringPtrFromPgtype(row.ShortDescription),
		price,
		int(row.Capacity),
		row.Facilities,
		row.Images,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func LocationToCreateParams(l *catalog.Location) sqlc.CreateLocationParams {
	return sqlc.CreateLocationParams{
		ID:          l.ID(),
		Name:        l.Name().String(),
		Slug:        l.Slug().String(),
		Address:     pgconv.StringPtrToPgtype(l.Address()),
		Description: pgconv.StringPtrToPgtype(l.Description()),
		MapEmbedUrl: pgconv.StringPtrToPgtype(l.MapEmbedURL()),
		Image:       pgconv.StringPtrToPgtype(l.Image()),
		IsActive:    l.IsActive(),
		CreatedAt:   pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func LocationToUpdateParams(l *catalog.Location) sqlc.UpdateLocationParams {
	return sqlc.UpdateLocationParams{
		ID:          l.ID(),
		Name:        l.Name().String(),
		Slug:        l.Slug().String(),
		Address:     pgconv.StringPtrToPgtype(l.Address()),
		Description: pgconv.StringPtrToPgtype(l.Description()),
		MapEmbedUrl: pgconv.StringPtrToPgtype(l.MapEmbedURL()),
		Image:       pgconv.StringPtrToPgtype(l.Image()),
		IsActive:    l.IsActive(),
		UpdatedAt:   pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func LocationFromInfra(row sqlc.Locations) *catalog.Location {
	return catalog.ReconstructLocation(
		row.ID,
		row.Name,
		row.Slug,
		pgconv.StringPtrFromPgtype(row.Address),
		pgconv.StringPtrFromPgtype(row.Description),
		pgconv.StringPtrFromPgtype(row.MapEmbedUrl),
		pgconv.StringPtrFromPgtype(row.Image),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func capacityToInt32(c int) (int32, error) {
	if c < 0 || c > maxInt32 {
		return 0, fmt.Errorf("capacity out of int32 range: %d", c)
	}
	return int32(c), nil // #nosec G115 -- bounded above
}

package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=mock_queries

import (
	"context"
	"strings"

	"glamping-api/internal/infra"
	"glamping-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const FeaturedPackagesLimit = 6

var ErrLocationNotFound = errs.Mark(errs.New("location not found"), errs.ErrNotFound)

type PackageFilter struct {
	LocationID *uuid.UUID
	Search     *string
}

type CatalogQueries interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListPackages(ctx context.Context, filter PackageFilter) ([]*PackageView, error)
	FeaturedPackages(ctx context.Context) ([]*PackageView, error)
	GetPackageBySlug(ctx context.Context, slug string) (*PackageView, error)

	// Admin views include inactive records.
	AdminListLocations(ctx context.Context) ([]*LocationView, error)
	AdminGetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	AdminListPackages(ctx context.Context) ([]*PackageView, error)
	AdminGetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type CatalogReadStore interface {
	ListActiveLocations(ctx context.Context) ([]*LocationView, error)
	FindActiveLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListLocations(ctx context.Context) ([]*LocationView, error)
	FindLocationByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListActivePackages(ctx context.Context, filter PackageFilter) ([]*PackageView, error)
	ListFeaturedPackages(ctx context.Context, limit int32) ([]*PackageView, error)
	FindActivePackageBySlug(ctx context.Context, slug string) (*PackageView, error)
	ListPackages(ctx context.Context) ([]*PackageView, error)
	FindPackageByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.store.ListActiveLocations(ctx)
}

func (q *catalogQueriesImpl) GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	view, err := q.store.FindActiveLocation(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrLocationNotFound)
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context, filter PackageFilter) ([]*PackageView, error) {
	if filter.Search != nil {
		s := strings.TrimSpace(*filter.Search)
		filter.Search = &s
		if s == "" {
			filter.Search = nil
		}
	}
	return q.store.ListActivePackages(ctx, filter)
}

func (q *catalogQueriesImpl) FeaturedPackages(ctx context.Context) ([]*PackageView, error) {
	return q.store.ListFeaturedPackages(ctx, FeaturedPackagesLimit)
}

func (q *catalogQueriesImpl) GetPackageBySlug(ctx context.Context, slug string) (*PackageView, error) {
	view, err := q.store.FindActivePackageBySlug(ctx, slug)
	if err != nil {
		return nil, mapNotFound(err, ErrPackageNotFound)
	}
	return view, nil
}

func (q *catalogQueriesImpl) AdminListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.store.ListLocations(ctx)
}

func (q *catalogQueriesImpl) AdminGetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	view, err := q.store.FindLocationByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrLocationNotFound)
	}
	return view, nil
}

func (q *catalogQueriesImpl) AdminListPackages(ctx context.Context) ([]*PackageView, error) {
	return q.store.ListPackages(ctx)
}

func (q *catalogQueriesImpl) AdminGetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	view, err := q.store.FindPackageByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrPackageNotFound)
	}
	return view, nil
}

func mapNotFound(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}

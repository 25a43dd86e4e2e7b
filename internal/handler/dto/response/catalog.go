package response

import (
	"time"

	"glamping-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationSummaryResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	Address *string   `json:"address"`
}

type PackageResponse struct {
	ID               uuid.UUID                `json:"id"`
	LocationID       uuid.UUID                `json:"location_id"`
	Name             string                   `json:"name"`
	Slug             string                   `json:"slug"`
	Description      *string                  `json:"description"`
	ShortDescription *string                  `json:"short_description"`
	PricePerNight    string                   `json:"price_per_night"`
	Capacity         int                      `json:"capacity"`
	Facilities       []string                 `json:"facilities"`
	Images           []string                 `json:"images"`
	IsActive         bool                     `json:"is_active"`
	Location         *LocationSummaryResponse `json:"location,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

type LocationResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	Address       *string            `json:"address"`
	Description   *string            `json:"description"`
	MapEmbedURL   *string            `json:"map_embed_url"`
	Image         *string            `json:"image"`
	IsActive      bool               `json:"is_active"`
	PackagesCount int64              `json:"packages_count"`
	Packages      []*PackageResponse `json:"packages,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromPackageView(v *queries.PackageView) *PackageResponse {
	res := &PackageResponse{
		ID:               v.ID,
		LocationID:       v.LocationID,
		Name:             v.Name,
		Slug:             v.Slug,
		Description:      v.Description,
		ShortDescription: v.ShortDescription,
		PricePerNight:    v.PricePerNight.StringFixed(2),
		Capacity:         v.Capacity,
		Facilities:       v.Facilities,
		Images:           v.Images,
		IsActive:         v.IsActive,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.Location != nil {
		res.Location = fromLocationSummary(*v.Location)
	}
	return res
}

func FromPackageViews(vs []*queries.PackageView) []*PackageResponse {
	res := make([]*PackageResponse, len(vs))
	for i, v := range vs {
		res[i] = FromPackageView(v)
	}
	return res
}

func FromLocationView(v *queries.LocationView) *LocationResponse {
	res := &LocationResponse{
		ID:            v.ID,
		Name:          v.Name,
		Slug:          v.Slug,
		Address:       v.Address,
		Description:   v.Description,
		MapEmbedURL:   v.MapEmbedURL,
		Image:         v.Image,
		IsActive:      v.IsActive,
		PackagesCount: v.PackageCount,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	if v.Packages != nil {
		res.Packages = make([]*PackageResponse, len(v.Packages))
		for i := range v.Packages {
			res.Packages[i] = FromPackageView(&v.Packages[i])
		}
	}
	return res
}

func FromLocationViews(vs []*queries.LocationView) []*LocationResponse {
	res := make([]*LocationResponse, len(vs))
	for i, v := range vs {
		res[i] = FromLocationView(v)
	}
	return res
}

func fromLocationSummary(s queries.LocationSummary) *LocationSummaryResponse {
	return &LocationSummaryResponse{ID: s.ID, Name: s.Name, Slug: s.Slug, Address: s.Address}
}

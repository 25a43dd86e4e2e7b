package request

import (
	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePackageRequest struct {
	LocationID       uuid.UUID        `json:"location_id" binding:"required"`
	Name             string           `json:"name" binding:"required,max=255"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"short_description" binding:"omitempty,max=500"`
	PricePerNight    *decimal.Decimal `json:"price_per_night" binding:"required"`
	Capacity         int              `json:"capacity" binding:"required,min=1"`
	Facilities       []string         `json:"facilities" binding:"omitempty,dive,max=255"`
	Images           []string         `json:"images" binding:"omitempty,dive,max=2048"`
	IsActive         *bool            `json:"is_active"`
}

func (r CreatePackageRequest) ToDomain() catalog.PackageParams {
	return catalog.PackageParams{
		LocationID:       r.LocationID,
		Name:             r.Name,
		Description:      ptr.NonBlank(r.Description),
		ShortDescription: ptr.NonBlank(r.ShortDescription),
		PricePerNight:    ptr.Value(r.PricePerNight),
		Capacity:         r.Capacity,
		Facilities:       r.Facilities,
		Images:           r.Images,
		IsActive:         r.IsActive == nil || *r.IsActive,
	}
}

// UpdatePackageRequest is a partial update: omitted fields keep their values.
type UpdatePackageRequest struct {
	LocationID       *uuid.UUID       `json:"location_id"`
	Name             *string          `json:"name" binding:"omitempty,max=255"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"short_description" binding:"omitempty,max=500"`
	PricePerNight    *decimal.Decimal `json:"price_per_night"`
	Capacity         *int             `json:"capacity" binding:"omitempty,min=1"`
	Facilities       *[]string        `json:"facilities"`
	Images           *[]string        `json:"images"`
	IsActive         *bool            `json:"is_active"`
}

func (r UpdatePackageRequest) ToDomain() catalog.PackageChanges {
	return catalog.PackageChanges{
		LocationID:       r.LocationID,
		Name:             r.Name,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		PricePerNight:    r.PricePerNight,
		Capacity:         r.Capacity,
		Facilities:       r.Facilities,
		Images:           r.Images,
		IsActive:         r.IsActive,
	}
}

type CreateLocationRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	MapEmbedURL *string `json:"map_embed_url"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"is_active"`
}

func (r CreateLocationRequest) ToDomain() catalog.LocationParams {
	return catalog.LocationParams{
		Name:        r.Name,
		Address:     ptr.NonBlank(r.Address),
		Description: ptr.NonBlank(r.Description),
		MapEmbedURL: ptr.NonBlank(r.MapEmbedURL),
		Image:       ptr.NonBlank(r.Image),
		IsActive:    r.IsActive == nil || *r.IsActive,
	}
}

type UpdateLocationRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	MapEmbedURL *string `json:"map_embed_url"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateLocationRequest) ToDomain() catalog.LocationChanges {
	return catalog.LocationChanges{
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		MapEmbedURL: r.MapEmbedURL,
		Image:       r.Image,
		IsActive:    r.IsActive,
	}
}

type ListPackagesQuery struct {
	LocationID string `form:"location_id" binding:"omitempty,uuid"`
	Search     string `form:"search" binding:"omitempty,max=255"`
}

func (q ListPackagesQuery) LocationUUID() *uuid.UUID {
	if q.LocationID == "" {
		return nil
	}
	id, err := uuid.Parse(q.LocationID)
	if err != nil {
		return nil
	}
	return &id
}

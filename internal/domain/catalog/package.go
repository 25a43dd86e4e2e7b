package catalog

import (
	"time"

	"glamping-api/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Package struct {
	id               uuid.UUID
	locationID       uuid.UUID
	name             Name
	slug             Slug
	description      *string
	shortDescription *string
	pricePerNight    decimal.Decimal
	capacity         int
	facilities       []string
	images           []string
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

type PackageParams struct {
	LocationID       uuid.UUID
	Name             string
	Description      *string
	ShortDescription *string
	PricePerNight    decimal.Decimal
	Capacity         int
	Facilities       []string
	Images           []string
	IsActive         bool
}

// PackageChanges is a partial update; nil fields are left untouched.
type PackageChanges struct {
	LocationID       *uuid.UUID
	Name             *string
	Description      *string
	ShortDescription *string
	PricePerNight    *decimal.Decimal
	Capacity         *int
	Facilities       *[]string
	Images           *[]string
	IsActive         *bool
}

func NewPackage(p PackageParams, now time.Time) (*Package, error) {
	fields := InvalidFields{}

	if p.LocationID == uuid.Nil {
		fields[FieldLocationID] = ErrLocationRequired
	}
	name, err := NewName(p.Name)
	if err != nil {
		fields[FieldName] = err
	}
	var s Slug
	if err == nil {
		if s, err = SlugFromName(name); err != nil {
			fields[FieldName] = err
		}
	}
	if err := checkShortDescription(p.ShortDescription); err != nil {
		fields[FieldShortDescription] = err
	}
	if err := checkPrice(p.PricePerNight); err != nil {
		fields[FieldPricePerNight] = err
	}
	if err := checkCapacity(p.Capacity); err != nil {
		fields[FieldCapacity] = err
	}
	if err := fields.orNil(); err != nil {
		return nil, err
	}

	return &Package{
		id:               uuid.New(),
		locationID:       p.LocationID,
		name:             name,
		slug:             s,
		description:      p.Description,
		shortDescription: p.ShortDescription,
		pricePerNight:    p.PricePerNight,
		capacity:         p.Capacity,
		facilities:       nonNil(p.Facilities),
		images:           nonNil(p.Images),
		isActive:         p.IsActive,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructPackage(
	id, locationID uuid.UUID,
	name string,
	slug string,
	description, shortDescription *string,
	pricePerNight decimal.Decimal,
	capacity int,
	facilities, images []string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Package {
	return &Package{
		id:               id,
		locationID:       locationID,
		name:             Name{value: name},
		slug:             Slug(slug),
		description:      description,
		shortDescription: shortDescription,
		pricePerNight:    pricePerNight,
		capacity:         capacity,
		facilities:       nonNil(facilities),
		images:           nonNil(images),
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Apply validates and applies a partial update. A new name re-derives the slug.
func (p *Package) Apply(c PackageChanges, now time.Time) error {
	fields := InvalidFields{}

	locationID := patch.Coalesce(c.LocationID, p.locationID)
	if locationID == uuid.Nil {
		fields[FieldLocationID] = ErrLocationRequired
	}

	name, s := p.name, p.slug
	if c.Name != nil {
		n, err := NewName(*c.Name)
		if err == nil {
			s, err = SlugFromName(n)
		}
		if err != nil {
			fields[FieldName] = err
		}
		name = n
	}

	shortDescription := p.shortDescription
	if c.ShortDescription != nil {
		if err := checkShortDescription(c.ShortDescription); err != nil {
			fields[FieldShortDescription] = err
		}
		shortDescription = c.ShortDescription
	}

	price := patch.Coalesce(c.PricePerNight, p.pricePerNight)
	if err := checkPrice(price); err != nil {
		fields[FieldPricePerNight] = err
	}
	capacity := patch.Coalesce(c.Capacity, p.capacity)
	if err := checkCapacity(capacity); err != nil {
		fields[FieldCapacity] = err
	}

	if err := fields.orNil(); err != nil {
		return err
	}

	p.locationID = locationID
	p.name = name
	p.slug = s
	if c.Description != nil {
		p.description = c.Description
	}
	p.shortDescription = shortDescription
	p.pricePerNight = price
	p.capacity = capacity
	p.facilities = nonNil(patch.Coalesce(c.Facilities, p.facilities))
	p.images = nonNil(patch.Coalesce(c.Images, p.images))
	p.isActive = patch.Coalesce(c.IsActive, p.isActive)
	p.updatedAt = now
	return nil
}

func (p *Package) ID() uuid.UUID                  { return p.id }
func (p *Package) LocationID() uuid.UUID          { return p.locationID }
func (p *Package) Name() Name                     { return p.name }
func (p *Package) Slug() Slug                     { return p.slug }
func (p *Package) Description() *string           { return p.description }
func (p *Package) ShortDescription() *string      { return p.shortDescription }
func (p *Package) PricePerNight() decimal.Decimal { return p.pricePerNight }
func (p *Package) Capacity() int                  { return p.capacity }
func (p *Package) Facilities() []string           { return p.facilities }
func (p *Package) Images() []string               { return p.images }
func (p *Package) IsActive() bool                 { return p.isActive }
func (p *Package) CreatedAt() time.Time           { return p.createdAt }
func (p *Package) UpdatedAt() time.Time           { return p.updatedAt }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

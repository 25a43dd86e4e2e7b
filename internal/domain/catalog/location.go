package catalog

import (
	"time"

	"glamping-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Location struct {
	id          uuid.UUID
	name        Name
	slug        Slug
	address     *string
	description *string
	mapEmbedURL *string
	image       *string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type LocationParams struct {
	Name        string
	Address     *string
	Description *string
	MapEmbedURL *string
	Image       *string
	IsActive    bool
}

type LocationChanges struct {
	Name        *string
	Address     *string
	Description *string
	MapEmbedURL *string
	Image       *string
	IsActive    *bool
}

func NewLocation(p LocationParams, now time.Time) (*Location, error) {
	name, s, err := nameAndSlug(p.Name)
	if err != nil {
		return nil, InvalidFields{FieldName: err}
	}
	return &Location{
		id:          uuid.New(),
		name:        name,
		slug:        s,
		address:     p.Address,
		description: p.Description,
		mapEmbedURL: p.MapEmbedURL,
		image:       p.Image,
		isActive:    p.IsActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructLocation(
	id uuid.UUID,
	name, slug string,
	address, description, mapEmbedURL, image *string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Location {
	return &Location{
		id:          id,
		name:        Name{value: name},
		slug:        Slug(slug),
		address:     address,
		description: description,
		mapEmbedURL: mapEmbedURL,
		image:       image,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Location) Apply(c LocationChanges, now time.Time) error {
	if c.Name != nil {
		name, s, err := nameAndSlug(*c.Name)
		if err != nil {
			return InvalidFields{FieldName: err}
		}
		l.name, l.slug = name, s
	}
	// Optional text fields are only replaced when present.
	if c.Address != nil {
		l.address = c.Address
	}
	if c.Description != nil {
		l.description = c.Description
	}
	if c.MapEmbedURL != nil {
		l.mapEmbedURL = c.MapEmbedURL
	}
	if c.Image != nil {
		l.image = c.Image
	}
	l.isActive = patch.Coalesce(c.IsActive, l.isActive)
	l.updatedAt = now
	return nil
}

func (l *Location) ID() uuid.UUID        { return l.id }
func (l *Location) Name() Name           { return l.name }
func (l *Location) Slug() Slug           { return l.slug }
func (l *Location) Address() *string     { return l.address }
func (l *Location) Description() *string { return l.description }
func (l *Location) MapEmbedURL() *string { return l.mapEmbedURL }
func (l *Location) Image() *string       { return l.image }
func (l *Location) IsActive() bool       { return l.isActive }
func (l *Location) CreatedAt() time.Time { return l.createdAt }
func (l *Location) UpdatedAt() time.Time { return l.updatedAt }

func nameAndSlug(raw string) (Name, Slug, error) {
	name, err := NewName(raw)
	if err != nil {
		return Name{}, "", err
	}
	s, err := SlugFromName(name)
	if err != nil {
		return Name{}, "", err
	}
	return name, s, nil
}

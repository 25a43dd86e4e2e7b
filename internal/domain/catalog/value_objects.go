package catalog

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired            = errors.New("name is required")
	ErrNameTooLong             = errors.New("name is too long")
	ErrInvalidSlug             = errors.New("name must contain at least one letter or digit")
	ErrShortDescriptionTooLong = errors.New("short description is too long")
	ErrNegativePrice           = errors.New("price per night must be zero or more")
	ErrInvalidCapacity         = errors.New("capacity must be at least 1")
	ErrLocationRequired        = errors.New("location is required")
)

const (
	MaxNameLength             = 255
	MaxShortDescriptionLength = 500
)

// Field names used when reporting invalid input.
const (
	FieldLocationID       = "location_id"
	FieldName             = "name"
	FieldShortDescription = "short_description"
	FieldPricePerNight    = "price_per_night"
	FieldCapacity         = "capacity"
)

// InvalidFields collects per-field validation failures.
type InvalidFields map[string]error

func (f InvalidFields) Error() string {
	parts := make([]string, 0, len(f))
	for field, err := range f {
		parts = append(parts, field+": "+err.Error())
	}
	return "invalid catalog input: " + strings.Join(parts, "; ")
}

func (f InvalidFields) orNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrNameRequired
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Slug is the URL-safe form of a name.
type Slug string

func SlugFromName(n Name) (Slug, error) {
	s := slug.Make(n.value)
	if !slug.IsSlug(s) {
		return "", ErrInvalidSlug
	}
	return Slug(s), nil
}

func (s Slug) String() string { return string(s) }

func checkPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func checkCapacity(c int) error {
	if c < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

func checkShortDescription(s *string) error {
	if s != nil && utf8.RuneCountInString(*s) > MaxShortDescriptionLength {
		return ErrShortDescriptionTooLong
	}
	return nil
}

//go:build unit

package catalog_test

import (
	"strings"
	"testing"
	"time"

	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func validPackageParams() catalog.PackageParams {
	return catalog.PackageParams{
		LocationID:    uuid.New(),
		Name:          "Safari Tent Deluxe",
		PricePerNight: decimal.RequireFromString("1500000.00"),
		Capacity:      4,
		Facilities:    []string{"WiFi", "Hot shower"},
		IsActive:      true,
	}
}

func TestNewPackage(t *testing.T) {
	t.Run("名前からスラッグを生成", func(t *testing.T) {
		p, err := catalog.NewPackage(validPackageParams(), now)
		require.NoError(t, err)
		assert.Equal(t, catalog.Slug("safari-tent-deluxe"), p.Slug())
		assert.Equal(t, []string{}, p.Images())
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("記号のみの名前はNG", func(t *testing.T) {
		params := validPackageParams()
		params.Name = "!!!"
		_, err := catalog.NewPackage(params, now)

		var fields catalog.InvalidFields
		require.ErrorAs(t, err, &fields)
		assert.ErrorIs(t, fields[catalog.FieldName], catalog.ErrInvalidSlug)
	})

	t.Run("不正な項目をまとめて返す", func(t *testing.T) {
		params := catalog.PackageParams{
			Name:             "",
			ShortDescription: ptr.Of(strings.Repeat("a", catalog.MaxShortDescriptionLength+1)),
			PricePerNight:    decimal.RequireFromString("-1"),
			Capacity:         0,
		}
		_, err := catalog.NewPackage(params, now)

		var fields catalog.InvalidFields
		require.ErrorAs(t, err, &fields)
		assert.ErrorIs(t, fields[catalog.FieldLocationID], catalog.ErrLocationRequired)
		assert.ErrorIs(t, fields[catalog.FieldName], catalog.ErrNameRequired)
		assert.ErrorIs(t, fields[catalog.FieldShortDescription], catalog.ErrShortDescriptionTooLong)
		assert.ErrorIs(t, fields[catalog.FieldPricePerNight], catalog.ErrNegativePrice)
		assert.ErrorIs(t, fields[catalog.FieldCapacity], catalog.ErrInvalidCapacity)
	})

	t.Run("価格0は許可", func(t *testing.T) {
		params := validPackageParams()
		params.PricePerNight = decimal.Zero
		_, err := catalog.NewPackage(params, now)
		assert.NoError(t, err)
	})
}

func TestPackage_Apply(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("名前変更でスラッグも更新", func(t *testing.T) {
		p, err := catalog.NewPackage(validPackageParams(), now)
		require.NoError(t, err)

		require.NoError(t, p.Apply(catalog.PackageChanges{Name: ptr.Of("Bamboo Villa")}, later))
		assert.Equal(t, "Bamboo Villa", p.Name().String())
		assert.Equal(t, catalog.Slug("bamboo-villa"), p.Slug())
		assert.Equal(t, 4, p.Capacity())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("不正な値では何も変えない", func(t *testing.T) {
		p, err := catalog.NewPackage(validPackageParams(), now)
		require.NoError(t, err)

		err = p.Apply(catalog.PackageChanges{Name: ptr.Of("Renamed"), Capacity: ptr.Of(0)}, later)
		var fields catalog.InvalidFields
		require.ErrorAs(t, err, &fields)
		assert.ErrorIs(t, fields[catalog.FieldCapacity], catalog.ErrInvalidCapacity)
		assert.Equal(t, "Safari Tent Deluxe", p.Name().String())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("非アクティブ化", func(t *testing.T) {
		p, err := catalog.NewPackage(validPackageParams(), now)
		require.NoError(t, err)

		require.NoError(t, p.Apply(catalog.PackageChanges{IsActive: ptr.Of(false)}, later))
		assert.False(t, p.IsActive())
		assert.Equal(t, catalog.Slug("safari-tent-deluxe"), p.Slug())
	})
}

func TestLocation(t *testing.T) {
	l, err := catalog.NewLocation(catalog.LocationParams{Name: "Ubud Forest", Address: ptr.Of("Jl. Raya Ubud"), IsActive: true}, now)
	require.NoError(t, err)
	assert.Equal(t, catalog.Slug("ubud-forest"), l.Slug())

	require.NoError(t, l.Apply(catalog.LocationChanges{Description: ptr.Of("Rainforest glamping")}, now))
	assert.Equal(t, "Jl. Raya Ubud", *l.Address())
	assert.Equal(t, "Rainforest glamping", *l.Description())

	err = l.Apply(catalog.LocationChanges{Name: ptr.Of("  ")}, now)
	var fields catalog.InvalidFields
	require.ErrorAs(t, err, &fields)
	assert.ErrorIs(t, fields[catalog.FieldName], catalog.ErrNameRequired)
}

//go:build unit

package pgconv_test

import (
	"database/sql"
	"math/big"
	"testing"
	"time"

	"glamping-api/internal/pkg/pgconv"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateConversion(t *testing.T) {
	d := civil.Date{Year: 2025, Month: time.June, Day: 10}

	pd := pgconv.DateToPgtype(d)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.UTC, pd.Time.Location())

	got, err := pgconv.DateFromPgtype(pd)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = pgconv.DateFromPgtype(pgtype.Date{})
	assert.ErrorIs(t, err, pgconv.ErrInvalidDateValue)

	_, err = pgconv.DateFromPgtype(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity})
	assert.ErrorIs(t, err, pgconv.ErrInvalidDateValue)
}

func TestDecimalConversion(t *testing.T) {
	t.Run("金額の往復で値が変わらない", func(t *testing.T) {
		price := decimal.RequireFromString("1000000.50")

		got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(price))
		require.NoError(t, err)
		assert.True(t, price.Equal(got), "got %s", got)
	})

	t.Run("scale 付きの numeric を読み取れる", func(t *testing.T) {
		// 2000000.00 as returned for numeric(12,2)
		pn := pgtype.Numeric{Int: big.NewInt(200000000), Exp: -2, Valid: true}

		got, err := pgconv.DecimalFromNumeric(pn)
		require.NoError(t, err)
		assert.Equal(t, "2000000.00", got.StringFixed(2))
	})

	t.Run("NULL と NaN は拒否する", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)

		_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}

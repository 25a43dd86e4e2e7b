//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamping-api/internal/infra/cache"
	"glamping-api/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	packageID = uuid.MustParse("7b0d6a56-4c55-4b3a-9f0d-2f6b7b7c1a01")
	start     = civil.Date{Year: 2025, Month: time.June, Day: 1}
	end       = civil.Date{Year: 2025, Month: time.June, Day: 30}
)

const (
	verKey  = "availability:7b0d6a56-4c55-4b3a-9f0d-2f6b7b7c1a01:version"
	v0Key   = "availability:7b0d6a56-4c55-4b3a-9f0d-2f6b7b7c1a01:v0:2025-06-01:2025-06-30"
	v3Key   = "availability:7b0d6a56-4c55-4b3a-9f0d-2f6b7b7c1a01:v3:2025-06-01:2025-06-30"
	payload = `{"package_id":"7b0d6a56-4c55-4b3a-9f0d-2f6b7b7c1a01","start_date":"2025-06-01","end_date":"2025-06-30","booked_dates":[{"date":"2025-06-10","status":"confirmed"}]}`
)

func TestAvailabilityCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("キャッシュヒット", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewAvailabilityCache(db, time.Minute)

		mock.ExpectGet(verKey).SetVal("3")
		mock.ExpectGet(v3Key).SetVal(payload)

		lookup, err := c.Get(ctx, packageID, start, end)

		require.NoError(t, err)
		require.True(t, lookup.Hit)
		assert.Equal(t, int64(3), lookup.Version)
		view := lookup.View
		assert.Equal(t, packageID, view.PackageID)
		require.Len(t, view.BookedDates, 1)
		assert.Equal(t, civil.Date{Year: 2025, Month: time.June, Day: 10}, view.BookedDates[0].Date)
		assert.Equal(t, "confirmed", view.BookedDates[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("バージョン未設定なら v0 を参照してミス", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewAvailabilityCache(db, time.Minute)

		mock.ExpectGet(verKey).RedisNil()
		mock.ExpectGet(v0Key).RedisNil()

		lookup, err := c.Get(ctx, packageID, start, end)

		require.NoError(t, err)
		assert.False(t, lookup.Hit)
		assert.Nil(t, lookup.View)
		assert.Equal(t, int64(0), lookup.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis エラーは呼び出し元に返す", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewAvailabilityCache(db, time.Minute)

		mock.ExpectGet(verKey).SetErr(errors.New("connection refused"))

		lookup, err := c.Get(ctx, packageID, start, end)

		assert.Error(t, err)
		assert.False(t, lookup.Hit)
	})

	t.Run("壊れたエントリはエラー", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewAvailabilityCache(db, time.Minute)

		mock.ExpectGet(verKey).SetVal("3")
		mock.ExpectGet(v3Key).SetVal("{not json")

		lookup, err := c.Get(ctx, packageID, start, end)

		assert.Error(t, err)
		assert.False(t, lookup.Hit)
	})
}

func TestAvailabilityCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, 5*time.Minute)

	mock.ExpectSet(v3Key, []byte(payload), 5*time.Minute).SetVal("OK")

	err := c.Set(context.Background(), 3, bookedView())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func bookedView() *queries.AvailabilityView {
	return &queries.AvailabilityView{
		PackageID: packageID,
		StartDate: start,
		EndDate:   end,
		BookedDates: []queries.BookedDateView{
			{Date: civil.Date{Year: 2025, Month: time.June, Day: 10}, Status: "confirmed"},
		},
	}
}

// A booking invalidates the package while a miss is being filled from the
// store. The stale window lands under the old version and is never served.
func TestAvailabilityCache_InvalidateDuringFill(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)

	v4Key := "availability:7b0d6a56-4c55-4b3a-9f0d-2f6b7b7c1a01:v4:2025-06-01:2025-06-30"

	mock.ExpectGet(verKey).SetVal("3")
	mock.ExpectGet(v3Key).RedisNil()
	mock.ExpectIncr(verKey).SetVal(4)
	mock.ExpectSet(v3Key, []byte(payload), time.Minute).SetVal("OK")
	mock.ExpectGet(verKey).SetVal("4")
	mock.ExpectGet(v4Key).RedisNil()

	lookup, err := c.Get(ctx, packageID, start, end)
	require.NoError(t, err)
	require.False(t, lookup.Hit)

	require.NoError(t, c.Invalidate(ctx, packageID))
	require.NoError(t, c.Set(ctx, lookup.Version, bookedView()))

	next, err := c.Get(ctx, packageID, start, end)
	require.NoError(t, err)
	assert.False(t, next.Hit, "window filled before the invalidation must not be served")
	assert.Equal(t, int64(4), next.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewAvailabilityCache(db, time.Minute)

	mock.ExpectIncr(verKey).SetVal(4)

	require.NoError(t, c.Invalidate(context.Background(), packageID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopAvailabilityCache(t *testing.T) {
	c := cache.NewNopAvailabilityCache()

	lookup, err := c.Get(context.Background(), packageID, start, end)
	assert.NoError(t, err)
	assert.False(t, lookup.Hit)
	assert.Nil(t, lookup.View)
	assert.NoError(t, c.Set(context.Background(), 0, &queries.AvailabilityView{}))
	assert.NoError(t, c.Invalidate(context.Background(), packageID))
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/queries"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "availability"

var errCorruptEntry = errs.New("corrupt availability cache entry")

// AvailabilityCache stores rendered availability windows per package.
// Every package has a version counter; bumping it orphans all cached windows,
// which then expire through their TTL.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedBookedDate struct {
	Date   civil.Date `json:"date"`
	Status string     `json:"status"`
}

type cachedAvailability struct {
	PackageID   uuid.UUID          `json:"package_id"`
	StartDate   civil.Date         `json:"start_date"`
	EndDate     civil.Date         `json:"end_date"`
	BookedDates []cachedBookedDate `json:"booked_dates"`
}

func versionKey(packageID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, packageID)
}

func windowKey(packageID uuid.UUID, version int64, start, end civil.Date) string {
	return fmt.Sprintf("%s:%s:v%d:%s:%s", keyPrefix, packageID, version, start, end)
}

func (c *AvailabilityCache) version(ctx context.Context, packageID uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(packageID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "read availability version")
	}
	return v, nil
}

func (c *AvailabilityCache) Get(ctx context.Context, packageID uuid.UUID, start, end civil.Date) (queries.CacheLookup, error) {
	v, err := c.version(ctx, packageID)
	if err != nil {
		return queries.CacheLookup{}, err
	}

	raw, err := c.client.Get(ctx, windowKey(packageID, v, start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return queries.CacheLookup{Version: v}, nil
	}
	if err != nil {
		return queries.CacheLookup{}, errs.Wrap(err, "read availability window")
	}

	var entry cachedAvailability
	if err := json.Unmarshal(raw, &entry); err != nil {
		return queries.CacheLookup{}, errs.Mark(err, errCorruptEntry)
	}

	view := &queries.AvailabilityView{
		PackageID:   entry.PackageID,
		StartDate:   entry.StartDate,
		EndDate:     entry.EndDate,
		BookedDates: make([]queries.BookedDateView, 0, len(entry.BookedDates)),
	}
	for _, d := range entry.BookedDates {
		view.BookedDates = append(view.BookedDates, queries.BookedDateView{Date: d.Date, Status: d.Status})
	}
	return queries.CacheLookup{View: view, Version: v, Hit: true}, nil
}

// Set stores view under the given version. Passing the version seen by Get
// leaves the entry unreachable if the package was invalidated in between.
func (c *AvailabilityCache) Set(ctx context.Context, version int64, view *queries.AvailabilityView) error {
	entry := cachedAvailability{
		PackageID:   view.PackageID,
		StartDate:   view.StartDate,
		EndDate:     view.EndDate,
		BookedDates: make([]cachedBookedDate, 0, len(view.BookedDates)),
	}
	for _, d := range view.BookedDates {
		entry.BookedDates = append(entry.BookedDates, cachedBookedDate{Date: d.Date, Status: d.Status})
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return errs.Wrap(err, "encode availability window")
	}

	if err := c.client.Set(ctx, windowKey(view.PackageID, version, view.StartDate, view.EndDate), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write availability window")
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, packageID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(packageID)).Err(); err != nil {
		return errs.Wrap(err, "bump availability version")
	}
	return nil
}

// NopAvailabilityCache is used when no Redis URL is configured.
type NopAvailabilityCache struct{}

func NewNopAvailabilityCache() NopAvailabilityCache {
	return NopAvailabilityCache{}
}

func (NopAvailabilityCache) Get(context.Context, uuid.UUID, civil.Date, civil.Date) (queries.CacheLookup, error) {
	return queries.CacheLookup{}, nil
}

func (NopAvailabilityCache) Set(context.Context, int64, *queries.AvailabilityView) error {
	return nil
}

func (NopAvailabilityCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

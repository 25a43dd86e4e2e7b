//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const (
	DefaultLocationName = "Pine Ridge"
	DefaultPackageName  = "Forest Dome"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT ((lower(email))) DO NOTHING",
		userID, "Test "+role, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
	}

	return userID
}

func CreateInactiveUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "admin")
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
	return userID
}

func CreateTestLocation(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO locations (name, slug, address) VALUES ($1, $2, $3) RETURNING id",
		name, slug.Make(name), "1 Trail Road").Scan(&id)
	require.NoError(t, err)
	return id
}

type PackageFixture struct {
	Name          string
	PricePerNight string
	Capacity      int
	IsActive      bool
}

func DefaultPackage() PackageFixture {
	return PackageFixture{
		Name:          DefaultPackageName,
		PricePerNight: "150.00",
		Capacity:      4,
		IsActive:      true,
	}
}

func CreateTestPackage(t *testing.T, db DBLike, locationID uuid.UUID, p PackageFixture) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO packages (location_id, name, slug, price_per_night, capacity, facilities, is_active)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7) RETURNING id`,
		locationID, p.Name, slug.Make(p.Name), p.PricePerNight, p.Capacity, []string{"wifi", "fire pit"}, p.IsActive).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a stay directly, bypassing availability checks.
func CreateTestReservation(t *testing.T, db DBLike, packageID uuid.UUID, code, checkIn, checkOut, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO reservations (booking_code, package_id, guest_name, guest_email, guest_phone,
		   check_in_date, check_out_date, guests_count, total_price, status)
		 VALUES ($1, $2, 'Existing Guest', 'existing@guest.test', '0800000000', $3::date, $4::date, 2, 300.00, $5)
		 RETURNING id`,
		code, packageID, checkIn, checkOut, status).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO locations (name, slug, address)
		VALUES ($1, $2, 'Trailhead 7')
		ON CONFLICT DO NOTHING;
	`, DefaultLocationName, slug.Make(DefaultLocationName))
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// DefaultLocationID looks up the seeded location.
func DefaultLocationID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM locations WHERE slug = $1", slug.Make(DefaultLocationName)).Scan(&id)
	require.NoError(t, err)
	return id
}

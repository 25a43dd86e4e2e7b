package shared

import (
	"context"

	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/domain/user"
	sqlc "glamping-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Read-committed transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for check-then-insert flows
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Packages() PackageRepository
	Locations() LocationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PackageForBooking(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
	LocationExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	reservation.CodeRegistry
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindOverlapping(ctx context.Context, packageID uuid.UUID, stay reservation.Stay) ([]reservation.Occupancy, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type PackageRepository interface {
	Create(ctx context.Context, p *catalog.Package) (uuid.UUID, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	Update(ctx context.Context, p *catalog.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReservations(ctx context.Context, id uuid.UUID) (int64, error)
}

type LocationRepository interface {
	Create(ctx context.Context, l *catalog.Location) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Location, error)
	Update(ctx context.Context, l *catalog.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountPackages(ctx context.Context, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

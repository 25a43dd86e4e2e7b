//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"

	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/domain/user"
	"glamping-api/internal/infra"
	sqlc "glamping-api/internal/infra/sqlc/generated"
	"glamping-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows")

// memoryUoW is an in-memory shared.UnitOfWork. A transaction runs against a
// copy of the state that replaces the original only when fn succeeds.
type memoryUoW struct {
	mu    sync.Mutex
	state *memoryState

	serializableCalls int
	// failCreate, when set, is returned from the next reservation insert.
	failCreate error
}

type memoryState struct {
	packages     map[uuid.UUID]*catalog.Package
	locations    map[uuid.UUID]*catalog.Location
	reservations map[uuid.UUID]*reservation.Reservation
	lastLogins   map[uuid.UUID]int
}

func newMemoryUoW() *memoryUoW {
	return &memoryUoW{state: &memoryState{
		packages:     map[uuid.UUID]*catalog.Package{},
		locations:    map[uuid.UUID]*catalog.Location{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		lastLogins:   map[uuid.UUID]int{},
	}}
}

func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		packages:     make(map[uuid.UUID]*catalog.Package, len(s.packages)),
		locations:    make(map[uuid.UUID]*catalog.Location, len(s.locations)),
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
		lastLogins:   make(map[uuid.UUID]int, len(s.lastLogins)),
	}
	for k, v := range s.packages {
		p := *v
		c.packages[k] = &p
	}
	for k, v := range s.locations {
		l := *v
		c.locations[k] = &l
	}
	for k, v := range s.reservations {
		r := *v
		c.reservations[k] = &r
	}
	for k, v := range s.lastLogins {
		c.lastLogins[k] = v
	}
	return c
}

func (u *memoryUoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	working := u.state.clone()
	if err := fn(ctx, &memoryTx{uow: u, state: working}); err != nil {
		return err
	}
	u.state = working
	return nil
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *memoryUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.serializableCalls++
	return u.run(ctx, fn)
}

func (u *memoryUoW) WithinReadOnly(context.Context, func(ctx context.Context, db sqlc.DBTX) error) error {
	panic("not used by commands")
}

func (u *memoryUoW) WithDB(context.Context, func(ctx context.Context, db sqlc.DBTX) error) error {
	panic("not used by commands")
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	return &memoryReads{state: u.state}
}

func (u *memoryUoW) addLocation(l *catalog.Location) { u.state.locations[l.ID()] = l }
func (u *memoryUoW) addPackage(p *catalog.Package)   { u.state.packages[p.ID()] = p }
func (u *memoryUoW) addReservation(r *reservation.Reservation) {
	u.state.reservations[r.ID()] = r
}

func (u *memoryUoW) reservationsFor(packageID uuid.UUID) []*reservation.Reservation {
	var out []*reservation.Reservation
	for _, r := range u.state.reservations {
		if r.PackageID() == packageID {
			out = append(out, r)
		}
	}
	return out
}

type memoryTx struct {
	uow   *memoryUoW
	state *memoryState
}

func (t *memoryTx) Reservations() shared.ReservationRepository {
	return &memoryReservations{uow: t.uow, state: t.state}
}
func (t *memoryTx) Packages() shared.PackageRepository   { return &memoryPackages{state: t.state} }
func (t *memoryTx) Locations() shared.LocationRepository { return &memoryLocations{state: t.state} }
func (t *memoryTx) Users() shared.UserRepository         { return &memoryUsers{state: t.state} }
func (t *memoryTx) Reads() shared.CommandReads           { return &memoryReads{state: t.state} }
func (t *memoryTx) DB() sqlc.DBTX                        { return nil }

type memoryReads struct{ state *memoryState }

func (r *memoryReads) PackageForBooking(_ context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	p, ok := r.state.packages[id]
	if !ok {
		return nil, infra.WrapRepoErr("package not found", errNoRows, infra.KindNotFound)
	}
	return &shared.PackageSnapshot{
		ID:            p.ID(),
		Capacity:      p.Capacity(),
		PricePerNight: p.PricePerNight(),
		IsActive:      p.IsActive(),
	}, nil
}

func (r *memoryReads) LocationExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.state.locations[id]
	return ok, nil
}

type memoryReservations struct {
	uow   *memoryUoW
	state *memoryState
}

func (r *memoryReservations) BookingCodeExists(_ context.Context, code reservation.BookingCode) (bool, error) {
	for _, res := range r.state.reservations {
		if res.BookingCode() == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryReservations) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	if err := r.uow.failCreate; err != nil {
		r.uow.failCreate = nil
		return uuid.Nil, err
	}
	r.state.reservations[res.ID()] = res
	return res.ID(), nil
}

func (r *memoryReservations) FindOverlapping(_ context.Context, packageID uuid.UUID, stay reservation.Stay) ([]reservation.Occupancy, error) {
	var out []reservation.Occupancy
	for _, res := range r.state.reservations {
		if res.PackageID() != packageID || !res.Status().Occupies() {
			continue
		}
		if !res.Stay().CheckOut().Before(stay.CheckIn()) && !res.Stay().CheckIn().After(stay.CheckOut()) {
			out = append(out, res.Occupancy())
		}
	}
	return out, nil
}

func (r *memoryReservations) GetForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errNoRows, infra.KindNotFound)
	}
	return res, nil
}

func (r *memoryReservations) UpdateStatus(_ context.Context, res *reservation.Reservation) error {
	r.state.reservations[res.ID()] = res
	return nil
}

type memoryPackages struct{ state *memoryState }

func (p *memoryPackages) Create(_ context.Context, pkg *catalog.Package) (uuid.UUID, error) {
	for _, existing := range p.state.packages {
		if existing.Slug() == pkg.Slug() {
			return uuid.Nil, infra.WrapRepoErr("duplicate slug", errNoRows, infra.KindDuplicateKey)
		}
	}
	p.state.packages[pkg.ID()] = pkg
	return pkg.ID(), nil
}

func (p *memoryPackages) GetForUpdate(_ context.Context, id uuid.UUID) (*catalog.Package, error) {
	pkg, ok := p.state.packages[id]
	if !ok {
		return nil, infra.WrapRepoErr("package not found", errNoRows, infra.KindNotFound)
	}
	return pkg, nil
}

func (p *memoryPackages) Update(_ context.Context, pkg *catalog.Package) error {
	p.state.packages[pkg.ID()] = pkg
	return nil
}

func (p *memoryPackages) Delete(_ context.Context, id uuid.UUID) error {
	delete(p.state.packages, id)
	return nil
}

func (p *memoryPackages) CountReservations(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	for _, res := range p.state.reservations {
		if res.PackageID() == id {
			n++
		}
	}
	return n, nil
}

type memoryLocations struct{ state *memoryState }

func (l *memoryLocations) Create(_ context.Context, loc *catalog.Location) (uuid.UUID, error) {
	l.state.locations[loc.ID()] = loc
	return loc.ID(), nil
}

func (l *memoryLocations) FindByID(_ context.Context, id uuid.UUID) (*catalog.Location, error) {
	loc, ok := l.state.locations[id]
	if !ok {
		return nil, infra.WrapRepoErr("location not found", errNoRows, infra.KindNotFound)
	}
	return loc, nil
}

func (l *memoryLocations) Update(_ context.Context, loc *catalog.Location) error {
	l.state.locations[loc.ID()] = loc
	return nil
}

func (l *memoryLocations) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := l.state.locations[id]; !ok {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	for _, pkg := range l.state.packages {
		if pkg.LocationID() == id {
			return infra.WrapRepoErr("packages reference location", errNoRows, infra.KindForeignKeyViolated)
		}
	}
	delete(l.state.locations, id)
	return nil
}

func (l *memoryLocations) CountPackages(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	for _, pkg := range l.state.packages {
		if pkg.LocationID() == id {
			n++
		}
	}
	return n, nil
}

type memoryUsers struct{ state *memoryState }

func (u *memoryUsers) Create(_ context.Context, usr *user.User) (uuid.UUID, error) {
	return usr.ID(), nil
}

func (u *memoryUsers) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	u.state.lastLogins[id]++
	return nil
}

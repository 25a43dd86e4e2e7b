package reservation

import (
	"slices"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// FindConflicts returns the occupying reservations that collide with candidate.
// A reservation collides when its check-in or check-out falls inside the
// candidate range, or when it encloses the candidate range; all bounds inclusive.
// Reservations whose IDs are listed in ignore are skipped.
func FindConflicts(candidate Stay, existing []Occupancy, ignore ...uuid.UUID) []Occupancy {
	var conflicts []Occupancy
	for _, occ := range existing {
		if !occ.Status.Occupies() || slices.Contains(ignore, occ.ReservationID) {
			continue
		}
		if collides(candidate, occ.Stay) {
			conflicts = append(conflicts, occ)
		}
	}
	return conflicts
}

func HasConflict(candidate Stay, existing []Occupancy, ignore ...uuid.UUID) bool {
	return len(FindConflicts(candidate, existing, ignore...)) > 0
}

func collides(candidate, r Stay) bool {
	checkInInside := within(r.checkIn, candidate)
	checkOutInside := within(r.checkOut, candidate)
	encloses := !r.checkIn.After(candidate.checkIn) && !r.checkOut.Before(candidate.checkOut)
	return checkInInside || checkOutInside || encloses
}

func within(d civil.Date, s Stay) bool {
	return !d.Before(s.checkIn) && !d.After(s.checkOut)
}

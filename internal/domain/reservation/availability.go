package reservation

import (
	"errors"
	"sort"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

var (
	ErrInvalidWindow  = errors.New("end date must be on or after start date")
	ErrWindowTooLarge = errors.New("availability window is too large")
)

// Occupancy is the slice of a stored reservation the calendar logic needs.
type Occupancy struct {
	ReservationID uuid.UUID
	Stay          Stay
	Status        Status
}

type BookedDate struct {
	Date   civil.Date
	Status Status
}

// Window is an inclusive [start, end] display range.
type Window struct {
	start civil.Date
	end   civil.Date
}

func NewWindow(start, end civil.Date, maxDays int) (Window, error) {
	if !start.IsValid() || !end.IsValid() {
		return Window{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}
	if maxDays > 0 && end.DaysSince(start)+1 > maxDays {
		return Window{}, ErrWindowTooLarge
	}
	return Window{start: start, end: end}, nil
}

// DefaultWindow runs from today through the same day the given number of months later.
func DefaultWindow(today civil.Date, months int) Window {
	end := civil.DateOf(today.In(time.UTC).AddDate(0, months, 0))
	return Window{start: today, end: end}
}

func (w Window) Start() civil.Date { return w.start }
func (w Window) End() civil.Date   { return w.end }

// Intersects uses the same inclusive rule as the store query:
// check-out on or after start and check-in on or before end.
func (w Window) Intersects(s Stay) bool {
	return !s.checkOut.Before(w.start) && !s.checkIn.After(w.end)
}

// BookedDates expands every occupying reservation that touches the window into
// one entry per calendar day of its stay, check-out day included. Days claimed
// more than once keep the most restrictive status. The result is sorted by date.
func BookedDates(window Window, occupancies []Occupancy) []BookedDate {
	byDate := make(map[civil.Date]Status)
	for _, occ := range occupancies {
		if !occ.Status.Occupies() || !window.Intersects(occ.Stay) {
			continue
		}
		for _, day := range occ.Stay.Days() {
			current, seen := byDate[day]
			if !seen || occ.Status.restrictiveness() > current.restrictiveness() {
				byDate[day] = occ.Status
			}
		}
	}

	booked := make([]BookedDate, 0, len(byDate))
	for day, status := range byDate {
		booked = append(booked, BookedDate{Date: day, Status: status})
	}
	sort.Slice(booked, func(i, j int) bool {
		return booked[i].Date.Before(booked[j].Date)
	})
	return booked
}

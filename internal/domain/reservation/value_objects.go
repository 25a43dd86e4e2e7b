package reservation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/golang-sql/civil"
)

var (
	ErrInvalidDate             = errors.New("invalid calendar date")
	ErrCheckInBeforeToday      = errors.New("check-in date must be today or later")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrGuestNameRequired       = errors.New("guest name is required")
	ErrGuestNameTooLong        = errors.New("guest name is too long")
	ErrGuestEmailInvalid       = errors.New("guest email is invalid")
	ErrGuestEmailTooLong       = errors.New("guest email is too long")
	ErrGuestPhoneRequired      = errors.New("guest phone is required")
	ErrGuestPhoneTooLong       = errors.New("guest phone is too long")
	ErrInvalidGuestsCount      = errors.New("guests count must be at least 1")
	ErrInvalidBookingCode      = errors.New("invalid booking code")
)

const (
	MaxGuestNameLength  = 255
	MaxGuestEmailLength = 255
	MaxGuestPhoneLength = 20
)

// Field names used when reporting invalid input.
const (
	FieldPackageID    = "package_id"
	FieldGuestName    = "guest_name"
	FieldGuestEmail   = "guest_email"
	FieldGuestPhone   = "guest_phone"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldGuestsCount  = "guests_count"
	FieldStatus       = "status"
)

// InvalidFields collects per-field validation failures.
type InvalidFields map[string]error

func (f InvalidFields) Error() string {
	parts := make([]string, 0, len(f))
	for field, err := range f {
		parts = append(parts, field+": "+err.Error())
	}
	return "invalid reservation input: " + strings.Join(parts, "; ")
}

func (f InvalidFields) add(field string, err error) {
	if _, exists := f[field]; !exists {
		f[field] = err
	}
}

// Stay is an inclusive [check-in, check-out] pair of calendar dates.
// The check-out day itself counts as occupied for overlap purposes.
type Stay struct {
	checkIn  civil.Date
	checkOut civil.Date
}

func NewStay(checkIn, checkOut, today civil.Date) (Stay, error) {
	fields := InvalidFields{}
	if !checkIn.IsValid() {
		fields.add(FieldCheckInDate, ErrInvalidDate)
	} else if checkIn.Before(today) {
		fields.add(FieldCheckInDate, ErrCheckInBeforeToday)
	}
	if !checkOut.IsValid() {
		fields.add(FieldCheckOutDate, ErrInvalidDate)
	} else if checkIn.IsValid() && !checkOut.After(checkIn) {
		fields.add(FieldCheckOutDate, ErrCheckOutNotAfterCheckIn)
	}
	if len(fields) > 0 {
		return Stay{}, fields
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStay rebuilds a persisted stay without the "not in the past" rule.
func ReconstructStay(checkIn, checkOut civil.Date) Stay {
	return Stay{checkIn: checkIn, checkOut: checkOut}
}

func (s Stay) CheckIn() civil.Date  { return s.checkIn }
func (s Stay) CheckOut() civil.Date { return s.checkOut }

func (s Stay) Nights() int {
	return s.checkOut.DaysSince(s.checkIn)
}

// Days enumerates every calendar day from check-in through check-out, both inclusive.
func (s Stay) Days() []civil.Date {
	if s.checkOut.Before(s.checkIn) {
		return nil
	}
	days := make([]civil.Date, 0, s.Nights()+1)
	for d := s.checkIn; !d.After(s.checkOut); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Overlaps treats both ranges as inclusive calendar days.
func (s Stay) Overlaps(other Stay) bool {
	return !s.checkIn.After(other.checkOut) && !s.checkOut.Before(other.checkIn)
}

type Guest struct {
	name  string
	email string
	phone string
}

var guestEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	fields := InvalidFields{}
	switch {
	case name == "":
		fields.add(FieldGuestName, ErrGuestNameRequired)
	case utf8.RuneCountInString(name) > MaxGuestNameLength:
		fields.add(FieldGuestName, ErrGuestNameTooLong)
	}
	switch {
	case utf8.RuneCountInString(email) > MaxGuestEmailLength:
		fields.add(FieldGuestEmail, ErrGuestEmailTooLong)
	case !guestEmailRegex.MatchString(email):
		fields.add(FieldGuestEmail, ErrGuestEmailInvalid)
	}
	switch {
	case phone == "":
		fields.add(FieldGuestPhone, ErrGuestPhoneRequired)
	case utf8.RuneCountInString(phone) > MaxGuestPhoneLength:
		fields.add(FieldGuestPhone, ErrGuestPhoneTooLong)
	}
	if len(fields) > 0 {
		return Guest{}, fields
	}
	return Guest{name: name, email: email, phone: phone}, nil
}

func ReconstructGuest(name, email, phone string) Guest {
	return Guest{name: name, email: email, phone: phone}
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }

// BookingCode has the form GC-XXXXXXXX with X in [A-Z0-9].
type BookingCode string

var bookingCodeRegex = regexp.MustCompile(`^GC-[A-Z0-9]{8}$`)

func ParseBookingCode(s string) (BookingCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !bookingCodeRegex.MatchString(s) {
		return "", ErrInvalidBookingCode
	}
	return BookingCode(s), nil
}

func (c BookingCode) String() string {
	return string(c)
}

package reservation

import "errors"

var (
	ErrInvalidStatus           = errors.New("invalid reservation status")
	ErrInvalidStatusTransition = errors.New("reservation status transition not allowed")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Administrative transitions. completed is terminal; cancelled may be reinstated.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusPending},
	StatusCompleted: {},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Occupies reports whether a reservation in this status blocks its dates.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// restrictiveness orders statuses for availability merging; higher wins.
func (s Status) restrictiveness() int {
	switch s {
	case StatusConfirmed:
		return 2
	case StatusPending:
		return 1
	default:
		return 0
	}
}

func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

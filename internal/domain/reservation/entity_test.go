//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"glamping-api/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedReservation(status reservation.Status) *reservation.Reservation {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, jakarta)
	return reservation.ReconstructReservation(
		uuid.New(),
		reservation.BookingCode("GC-AB12CD34"),
		uuid.New(),
		reservation.ReconstructGuest("Budi", "budi@example.com", "+628123"),
		reservation.ReconstructStay(june(10), june(12)),
		2,
		decimal.RequireFromString("3000000.00"),
		nil,
		status,
		created, created,
	)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to reservation.Status
		want     bool
	}{
		{reservation.StatusPending, reservation.StatusConfirmed, true},
		{reservation.StatusPending, reservation.StatusCancelled, true},
		{reservation.StatusPending, reservation.StatusCompleted, false},
		{reservation.StatusConfirmed, reservation.StatusCompleted, true},
		{reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{reservation.StatusConfirmed, reservation.StatusPending, false},
		{reservation.StatusCancelled, reservation.StatusPending, true},
		{reservation.StatusCancelled, reservation.StatusConfirmed, false},
		{reservation.StatusCompleted, reservation.StatusPending, false},
		{reservation.StatusCompleted, reservation.StatusCancelled, false},
		{reservation.StatusCompleted, reservation.StatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, err := reservation.ParseStatus("confirmed")
	require.NoError(t, err)
	assert.True(t, st.Occupies())

	_, err = reservation.ParseStatus("archived")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)

	assert.False(t, reservation.StatusCancelled.Occupies())
	assert.Equal(t, []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed}, reservation.ActiveStatuses())
}

func TestReservation_ChangeStatus(t *testing.T) {
	later := time.Date(2025, 6, 2, 9, 0, 0, 0, jakarta)

	t.Run("許可された遷移は更新日時も変える", func(t *testing.T) {
		r := storedReservation(reservation.StatusPending)
		require.NoError(t, r.ChangeStatus(reservation.StatusConfirmed, later))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, june(10), r.Stay().CheckIn())
	})

	t.Run("完了済みからは遷移できない", func(t *testing.T) {
		r := storedReservation(reservation.StatusCompleted)
		err := r.ChangeStatus(reservation.StatusPending, later)
		assert.ErrorIs(t, err, reservation.ErrInvalidStatusTransition)
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})

	t.Run("未知のステータス", func(t *testing.T) {
		r := storedReservation(reservation.StatusPending)
		assert.ErrorIs(t, r.ChangeStatus("archived", later), reservation.ErrInvalidStatus)
	})

	t.Run("キャンセル後は日程を占有しない", func(t *testing.T) {
		r := storedReservation(reservation.StatusConfirmed)
		require.NoError(t, r.ChangeStatus(reservation.StatusCancelled, later))
		assert.False(t, reservation.HasConflict(r.Stay(), []reservation.Occupancy{r.Occupancy()}))
	})
}

func TestStay(t *testing.T) {
	s := reservation.ReconstructStay(june(10), june(12))
	assert.Equal(t, 2, s.Nights())
	assert.Len(t, s.Days(), 3)

	_, err := reservation.NewStay(june(10), june(11), june(10))
	assert.NoError(t, err)
}

//go:build unit

package reservation_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"glamping-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRegistry struct {
	mu    sync.Mutex
	codes map[reservation.BookingCode]struct{}
	calls int
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{codes: make(map[reservation.BookingCode]struct{})}
}

func (r *memoryRegistry) BookingCodeExists(_ context.Context, code reservation.BookingCode) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	_, ok := r.codes[code]
	return ok, nil
}

func (r *memoryRegistry) add(code reservation.BookingCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[code] = struct{}{}
}

type alwaysTaken struct{ calls int }

func (a *alwaysTaken) BookingCodeExists(context.Context, reservation.BookingCode) (bool, error) {
	a.calls++
	return true, nil
}

type failingRegistry struct{ err error }

func (f failingRegistry) BookingCodeExists(context.Context, reservation.BookingCode) (bool, error) {
	return false, f.err
}

func TestCodeGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("形式はGC-と英大文字数字8桁", func(t *testing.T) {
		gen := reservation.NewCodeGenerator(reservation.DefaultCodeMaxAttempts)
		for i := 0; i < 200; i++ {
			code, err := gen.Generate(ctx, newMemoryRegistry())
			require.NoError(t, err)
			assert.Regexp(t, `^GC-[A-Z0-9]{8}$`, code.String())
		}
	})

	t.Run("固定の乱数源では決定的", func(t *testing.T) {
		src := bytes.Repeat([]byte{0, 1, 2, 3, 26, 27, 35, 36}, 4)
		gen := reservation.NewCodeGeneratorWithSource(bytes.NewReader(src), 3)

		code, err := gen.Generate(ctx, newMemoryRegistry())
		require.NoError(t, err)
		assert.Equal(t, reservation.BookingCode("GC-ABCD019A"), code)
	})

	t.Run("252以上のバイトは捨てる", func(t *testing.T) {
		src := []byte{255, 252, 0, 253, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0}
		gen := reservation.NewCodeGeneratorWithSource(bytes.NewReader(src), 1)

		code, err := gen.Generate(ctx, newMemoryRegistry())
		require.NoError(t, err)
		assert.Equal(t, reservation.BookingCode("GC-ABCDEFGH"), code)
	})

	t.Run("衝突したら引き直す", func(t *testing.T) {
		src := append(bytes.Repeat([]byte{0}, 16), bytes.Repeat([]byte{1}, 16)...)
		registry := newMemoryRegistry()
		registry.add("GC-AAAAAAAA")

		gen := reservation.NewCodeGeneratorWithSource(bytes.NewReader(src), 5)
		code, err := gen.Generate(ctx, registry)
		require.NoError(t, err)
		assert.Equal(t, reservation.BookingCode("GC-BBBBBBBB"), code)
		assert.Equal(t, 2, registry.calls)
	})

	t.Run("上限回数で打ち切る", func(t *testing.T) {
		registry := &alwaysTaken{}
		gen := reservation.NewCodeGenerator(7)

		_, err := gen.Generate(ctx, registry)
		assert.ErrorIs(t, err, reservation.ErrCodeGenerationExhausted)
		assert.Equal(t, 7, registry.calls)
	})

	t.Run("レジストリのエラーはそのまま返す", func(t *testing.T) {
		boom := errors.New("db down")
		gen := reservation.NewCodeGenerator(3)

		_, err := gen.Generate(ctx, failingRegistry{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("キャンセル済みのコンテキスト", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := reservation.NewCodeGenerator(3).Generate(cancelled, newMemoryRegistry())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// Scenario E: codes stay unique across ten thousand creations.
func TestCodeGenerator_Uniqueness(t *testing.T) {
	ctx := context.Background()
	registry := newMemoryRegistry()
	gen := reservation.NewCodeGenerator(reservation.DefaultCodeMaxAttempts)

	for i := 0; i < 9999; i++ {
		code, err := gen.Generate(ctx, registry)
		require.NoError(t, err)
		registry.add(code)
	}

	code, err := gen.Generate(ctx, registry)
	require.NoError(t, err)

	exists, err := registry.BookingCodeExists(ctx, code)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Len(t, registry.codes, 9999)
}

func TestParseBookingCode(t *testing.T) {
	code, err := reservation.ParseBookingCode(" gc-ab12cd34 ")
	require.NoError(t, err)
	assert.Equal(t, reservation.BookingCode("GC-AB12CD34"), code)

	for _, bad := range []string{"", "GC-1234567", "GC-123456789", "XX-12345678", "GC-ABCD_123"} {
		_, err := reservation.ParseBookingCode(bad)
		assert.ErrorIs(t, err, reservation.ErrInvalidBookingCode, bad)
	}
}

//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"glamping-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both sentinel and cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := errs.Mark(errs.Wrap(cause, "load package"), errs.ErrNotFound)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errs.ErrValidationFailed))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrDatesUnavailable)
		assert.Same(t, errs.ErrDatesUnavailable, err)
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "noop"))
	assert.Nil(t, errs.Wrapf(nil, "noop %d", 1))

	err := errs.Wrapf(errors.New("inner"), "outer %s", "ctx")
	assert.Equal(t, "outer ctx: inner", err.Error())
	assert.NotEmpty(t, errs.ExtractStackLines(err, 3))
	assert.LessOrEqual(t, len(errs.ExtractStackLines(err, 3)), 3)
}

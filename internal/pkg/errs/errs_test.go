//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parking-monitor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(cause, errs.ErrDatabaseOperationFailed)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.True(t, errs.Is(err, cause))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrInvalidParkingSpace)
		assert.Same(t, errs.ErrInvalidParkingSpace, err)
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, errs.Wrap(nil, "ignored"))

	err := errs.Wrap(errs.ErrPaymentFailed, "charge card")
	assert.EqualError(t, err, "charge card: payment failed")
	assert.True(t, errs.Is(err, errs.ErrPaymentFailed))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
}

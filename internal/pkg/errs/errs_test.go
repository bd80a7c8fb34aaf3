//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"billiar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// The handlers match sentinels with the stdlib errors.Is, so every
// construction the engine uses must keep the sentinel in the wrap
// chain.
func TestSentinelVisibility(t *testing.T) {
	t.Run("wrapped sentinel matches", func(t *testing.T) {
		err := errs.Wrapf(errs.ErrTableNotFound, "table %s", "abc")
		assert.ErrorIs(t, err, errs.ErrTableNotFound)
	})

	t.Run("marked wrapped sentinel matches", func(t *testing.T) {
		err := errs.Mark(
			errs.Wrapf(errs.ErrNotCancellable, "reservation gone"),
			errs.ErrNotCancellable,
		)
		assert.ErrorIs(t, err, errs.ErrNotCancellable)
	})

	t.Run("bare mark does not satisfy the stdlib", func(t *testing.T) {
		// Documents why lookups substitute the sentinel instead of
		// marking the repository error with it.
		err := errs.Mark(errors.New("no rows"), errs.ErrTableNotFound)
		assert.NotErrorIs(t, err, errs.ErrTableNotFound)
	})
}

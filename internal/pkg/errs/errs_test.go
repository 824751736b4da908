//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"carreserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("invalid time slot")

	t.Run("マークした番兵は標準のerrors.Isで見える", func(t *testing.T) {
		cause := errors.New("end must be after start")
		err := errs.Mark(cause, sentinel)
		require.Error(t, err)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause, "the original cause stays in the chain")
	})

	t.Run("nilをマークすると番兵そのものを返す", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})

	t.Run("Wrapを挟んでも番兵に届く", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("boom"), sentinel), "outer context")
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("多段マークは全ての番兵を保つ", func(t *testing.T) {
		other := errors.New("database operation failed")
		err := errs.Mark(errs.Mark(errors.New("boom"), sentinel), other)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, other)
	})
}

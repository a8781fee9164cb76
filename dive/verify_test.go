package dive_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mipdive/dive"
)

func TestVerify(t *testing.T) {
	// x0 + x1 ≤ 1 ; x0 - x1 ≥ -1
	m := mustDense(t, [][]float64{{1, 1}, {1, -1}})
	rowLo := []float64{negInf, -1}
	rowUp := []float64{1, inf}
	ints := roaring.BitmapOf(0, 1)

	t.Run("feasible", func(t *testing.T) {
		v, err := dive.Verify(m, rowLo, rowUp, ints, []float64{1, 0}, 1e-7, 1e-6)
		require.NoError(t, err)
		require.True(t, v.Feasible)
		require.Equal(t, -1, v.Row)
		require.Equal(t, -1, v.Column)
	})

	t.Run("within widened tolerance", func(t *testing.T) {
		// excess 5e-5 ≤ 1000·1e-7
		v, err := dive.Verify(m, rowLo, rowUp, roaring.New(), []float64{1.00005, 0}, 1e-7, 1e-6)
		require.NoError(t, err)
		require.True(t, v.Feasible)
		require.InDelta(t, 5e-5, v.Violation, 1e-12)
	})

	t.Run("row violated", func(t *testing.T) {
		v, err := dive.Verify(m, rowLo, rowUp, ints, []float64{1, 1}, 1e-7, 1e-6)
		require.NoError(t, err)
		require.False(t, v.Feasible)
		require.Equal(t, 0, v.Row)
		require.InDelta(t, 1.0, v.Violation, 1e-12)
	})

	t.Run("fractional integer", func(t *testing.T) {
		v, err := dive.Verify(m, rowLo, rowUp, ints, []float64{0, 0.5}, 1e-7, 1e-6)
		require.NoError(t, err)
		require.False(t, v.Feasible)
		require.Equal(t, -1, v.Row)
		require.Equal(t, 1, v.Column)
	})

	t.Run("continuous column may be fractional", func(t *testing.T) {
		v, err := dive.Verify(m, rowLo, rowUp, roaring.BitmapOf(0), []float64{0, 0.5}, 1e-7, 1e-6)
		require.NoError(t, err)
		require.True(t, v.Feasible)
	})

	t.Run("negative tolerance clamps to zero", func(t *testing.T) {
		v, err := dive.Verify(m, rowLo, rowUp, ints, []float64{1, 0}, -1, 1e-6)
		require.NoError(t, err)
		require.True(t, v.Feasible)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := dive.Verify(nil, rowLo, rowUp, ints, []float64{0, 0}, 1e-7, 1e-6)
		require.ErrorIs(t, err, dive.ErrNilModel)
		_, err = dive.Verify(m, rowLo, rowUp, ints, []float64{0}, 1e-7, 1e-6)
		require.ErrorIs(t, err, dive.ErrDimensionMismatch)
		_, err = dive.Verify(m, rowLo[:1], rowUp, ints, []float64{0, 0}, 1e-7, 1e-6)
		require.ErrorIs(t, err, dive.ErrDimensionMismatch)
		_, err = dive.Verify(m, rowLo, rowUp, roaring.BitmapOf(5), []float64{0, 0}, 1e-7, 1e-6)
		require.ErrorIs(t, err, dive.ErrBadIntegerColumn)
	})
}

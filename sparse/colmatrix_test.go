package sparse_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mipdive/sparse"
)

// mkSmall builds
//
//	[ 1  0  2 ]
//	[ 0 -3  0 ]
func mkSmall(t *testing.T) *sparse.ColMatrix {
	t.Helper()
	m, err := sparse.FromDense([][]float64{
		{1, 0, 2},
		{0, -3, 0},
	})
	require.NoError(t, err)

	return m
}

func TestFromDense_ShapeAndColumns(t *testing.T) {
	m := mkSmall(t)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 3, m.NNZ())

	rows, vals := m.Column(0)
	require.Equal(t, []int{0}, rows)
	require.Equal(t, []float64{1}, vals)

	rows, vals = m.Column(1)
	require.Equal(t, []int{1}, rows)
	require.Equal(t, []float64{-3}, vals)

	require.Equal(t, 1, m.ColumnLen(2))
}

func TestNewColMatrix_FoldsDuplicatesAndDropsZeros(t *testing.T) {
	m, err := sparse.NewColMatrix(3, 2, []sparse.Entry{
		{Row: 2, Col: 1, Value: 4},
		{Row: 0, Col: 1, Value: 1},
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 0, Value: 5},
		{Row: 1, Col: 0, Value: -5}, // cancels to zero
	})
	require.NoError(t, err)
	require.Equal(t, 0, m.ColumnLen(0))

	rows, vals := m.Column(1)
	require.Equal(t, []int{0, 2}, rows, "rows must be ascending")
	require.Equal(t, []float64{3, 4}, vals)
}

func TestNewColMatrix_EmptyShapes(t *testing.T) {
	m, err := sparse.NewColMatrix(0, 4, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.ColumnLen(3))

	act, err := m.Activity([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Empty(t, act)

	_, err = m.Dense()
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestNewColMatrix_Sentinels(t *testing.T) {
	_, err := sparse.NewColMatrix(-1, 2, nil)
	require.True(t, errors.Is(err, sparse.ErrBadShape))

	_, err = sparse.NewColMatrix(2, 2, []sparse.Entry{{Row: 2, Col: 0, Value: 1}})
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.NewColMatrix(2, 2, []sparse.Entry{{Row: 0, Col: 0, Value: math.NaN()}})
	require.ErrorIs(t, err, sparse.ErrNaNInf)

	_, err = sparse.FromDense([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, sparse.ErrRaggedRows)

	_, err = sparse.FromDense(nil)
	require.ErrorIs(t, err, sparse.ErrBadShape)
}

func TestAt(t *testing.T) {
	m := mkSmall(t)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestActivity(t *testing.T) {
	m := mkSmall(t)
	act, err := m.Activity([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{7, -6}, act)

	// Longer vectors are accepted; trailing entries are ignored.
	act, err = m.Activity([]float64{1, 2, 3, 99})
	require.NoError(t, err)
	require.Equal(t, []float64{7, -6}, act)

	_, err = m.Activity([]float64{1})
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestDense_RoundTrip(t *testing.T) {
	m := mkSmall(t)
	d, err := m.Dense()
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2.0, d.At(0, 2))
	require.Equal(t, -3.0, d.At(1, 1))
	require.Zero(t, d.At(1, 2))
}

func TestColumn_ViewsAreCapped(t *testing.T) {
	m := mkSmall(t)
	rows, _ := m.Column(0)
	// Appending to a view must never clobber the next column.
	_ = append(rows, 42)
	next, _ := m.Column(1)
	require.Equal(t, []int{1}, next)
}

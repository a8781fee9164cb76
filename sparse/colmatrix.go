// SPDX-License-Identifier: MIT
// Package: sparse
//
// colmatrix.go - compressed-sparse-column snapshot of a constraint matrix.
//
// Design contract:
//   - Immutable after construction: no setters, accessors hand out read-only views.
//   - Canonical form: within each column, row indices are strictly ascending,
//     duplicate (row,col) triplets are summed, exact zeros are dropped.
//   - Deterministic: identical inputs produce byte-identical storage.
//
// Complexity:
//   - Build: O(nnz·log nnz) for the canonical sort.
//   - Column(j): O(1); At(i,j): O(log len(column j)); Activity: O(nnz).

package sparse

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Entry is one (row, col, value) triplet used to assemble a ColMatrix.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// ColMatrix is an immutable column-major sparse matrix.
// Column j occupies index[starts[j]:starts[j+1]] / value[starts[j]:starts[j+1]].
type ColMatrix struct {
	rows, cols int
	starts     []int     // len == cols+1
	index      []int     // row index per nonzero
	value      []float64 // coefficient per nonzero
}

// NewColMatrix assembles a rows×cols matrix from triplets.
// Stage 1 (Validate): shape, index ranges and finiteness.
// Stage 2 (Prepare): stable sort by (col,row).
// Stage 3 (Finalize): fold duplicates, drop zeros, emit CSC arrays.
func NewColMatrix(rows, cols int, entries []Entry) (*ColMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf("NewColMatrix", ErrBadShape)
	}

	var (
		k int   // entry cursor
		e Entry // current entry
	)
	for k = 0; k < len(entries); k++ {
		e = entries[k]
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf("NewColMatrix", ErrOutOfRange)
		}
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, sparseErrorf("NewColMatrix", ErrNaNInf)
		}
	}

	// Work on a private copy so the caller's slice order is never disturbed.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Col != sorted[b].Col {
			return sorted[a].Col < sorted[b].Col
		}

		return sorted[a].Row < sorted[b].Row
	})

	m := &ColMatrix{
		rows:   rows,
		cols:   cols,
		starts: make([]int, cols+1),
		index:  make([]int, 0, len(sorted)),
		value:  make([]float64, 0, len(sorted)),
	}

	var (
		j   int     // column cursor for starts
		sum float64 // accumulated duplicate value
	)
	for k = 0; k < len(sorted); {
		e = sorted[k]
		sum = e.Value
		k++
		for k < len(sorted) && sorted[k].Col == e.Col && sorted[k].Row == e.Row {
			sum += sorted[k].Value // fold duplicate triplet
			k++
		}
		if sum == 0 {
			continue
		}
		for j < e.Col {
			j++
			m.starts[j] = len(m.index)
		}
		m.index = append(m.index, e.Row)
		m.value = append(m.value, sum)
	}
	for j < cols {
		j++
		m.starts[j] = len(m.index)
	}

	return m, nil
}

// FromDense builds a ColMatrix from a row-major dense slice.
// All rows must share the same length; zeros are skipped.
func FromDense(a [][]float64) (*ColMatrix, error) {
	if len(a) == 0 {
		return nil, sparseErrorf("FromDense", ErrBadShape)
	}
	var (
		rows = len(a)
		cols = len(a[0])
		i, j int
	)
	entries := make([]Entry, 0, rows)
	for i = 0; i < rows; i++ {
		if len(a[i]) != cols {
			return nil, sparseErrorf("FromDense", ErrRaggedRows)
		}
		for j = 0; j < cols; j++ {
			if a[i][j] != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Value: a[i][j]})
			}
		}
	}

	return NewColMatrix(rows, cols, entries)
}

// Rows returns the number of rows.
func (m *ColMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *ColMatrix) Cols() int { return m.cols }

// NNZ returns the number of stored nonzeros.
func (m *ColMatrix) NNZ() int { return len(m.index) }

// ColumnLen returns the number of nonzeros stored in column j.
// It panics if j is out of range (programmer error, like slice indexing).
func (m *ColMatrix) ColumnLen(j int) int {
	return m.starts[j+1] - m.starts[j]
}

// Column returns read-only views of the row indices and coefficients of
// column j. Callers must not modify the returned slices.
func (m *ColMatrix) Column(j int) ([]int, []float64) {
	lo, hi := m.starts[j], m.starts[j+1]

	return m.index[lo:hi:hi], m.value[lo:hi:hi]
}

// At returns the coefficient at (i,j), zero when not stored.
func (m *ColMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, sparseErrorf("At", ErrOutOfRange)
	}
	rows, vals := m.Column(j)
	p := sort.SearchInts(rows, i)
	if p < len(rows) && rows[p] == i {
		return vals[p], nil
	}

	return 0, nil
}

// Activity returns the row activities A·x.
// len(x) must be at least Cols(); extra entries are ignored so callers may pass
// a full solution vector of a model that appended columns after the snapshot.
func (m *ColMatrix) Activity(x []float64) ([]float64, error) {
	out := make([]float64, m.rows)
	if err := m.ActivityInto(x, out); err != nil {
		return nil, err
	}

	return out, nil
}

// ActivityInto writes A·x into dst (len(dst) must be Rows()).
// Zero entries of x are skipped.
func (m *ColMatrix) ActivityInto(x, dst []float64) error {
	if len(x) < m.cols || len(dst) != m.rows {
		return sparseErrorf("ActivityInto", ErrDimensionMismatch)
	}
	var (
		j, p int
		xj   float64
	)
	for p = range dst {
		dst[p] = 0
	}
	for j = 0; j < m.cols; j++ {
		xj = x[j]
		if xj == 0 {
			continue
		}
		for p = m.starts[j]; p < m.starts[j+1]; p++ {
			dst[m.index[p]] += xj * m.value[p]
		}
	}

	return nil
}

// Dense exports the matrix into a freshly allocated gonum *mat.Dense.
// gonum rejects zero-sized matrices, so an empty shape yields ErrBadShape.
func (m *ColMatrix) Dense() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf("Dense", ErrBadShape)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	var j, p int
	for j = 0; j < m.cols; j++ {
		for p = m.starts[j]; p < m.starts[j+1]; p++ {
			d.Set(m.index[p], j, m.value[p])
		}
	}

	return d, nil
}

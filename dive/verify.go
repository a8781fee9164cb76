// SPDX-License-Identifier: MIT
// Package dive - independent feasibility re-verification.
//
// Repeated bound tightenings let LP noise accumulate, so a vector that looks
// integral to the relaxation may still break a row. Before a candidate is
// reported, Verify recomputes every row activity from the constraint snapshot
// (never from the oracle's bookkeeping) and re-checks integrality.
//
// Row i passes when  rowLower_i − tol ≤ activity_i ≤ rowUpper_i + tol  with
// tol = max(0, VerifyToleranceScale·primalTol).
//
// Complexity: O(nnz + rows + |integers|).

package dive

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/mipdive/sparse"
)

// VerifyToleranceScale widens the primal tolerance for the row check.
const VerifyToleranceScale = 1000.0

// Verdict is the outcome of Verify.
type Verdict struct {
	Feasible bool
	// Row is the first row outside tolerance, or -1.
	Row int
	// Column is the first (lowest) non-integral integer column, or -1.
	Column int
	// Violation is the largest row excess beyond its bounds (before tolerance).
	Violation float64
}

// Verify checks x against the snapshot rows and the integer set ints.
func Verify(m *sparse.ColMatrix, rowLower, rowUpper []float64, ints *roaring.Bitmap,
	x []float64, primalTol, intTol float64) (Verdict, error) {
	if m == nil || ints == nil {
		return Verdict{}, diveErrorf("Verify", ErrNilModel)
	}
	if len(rowLower) < m.Rows() || len(rowUpper) < m.Rows() || len(x) < m.Cols() {
		return Verdict{}, diveErrorf("Verify", ErrDimensionMismatch)
	}

	act, err := m.Activity(x)
	if err != nil {
		return Verdict{}, diveErrorf("Verify", err)
	}

	var (
		v   = Verdict{Feasible: true, Row: -1, Column: -1}
		tol = math.Max(0, VerifyToleranceScale*primalTol)
		ex  float64
		i   int
	)
	for i = range act {
		ex = 0
		if act[i] < rowLower[i] {
			ex = rowLower[i] - act[i]
		} else if act[i] > rowUpper[i] {
			ex = act[i] - rowUpper[i]
		}
		if ex > v.Violation {
			v.Violation = ex
		}
		if ex > tol && v.Row < 0 {
			v.Feasible = false
			v.Row = i
		}
	}

	it := ints.Iterator()
	for it.HasNext() {
		col := int(it.Next())
		if col >= len(x) {
			return Verdict{}, diveErrorf("Verify", ErrBadIntegerColumn)
		}
		if isFractional(x[col], intTol) {
			v.Feasible = false
			v.Column = col
			break
		}
	}

	return v, nil
}

// isFractional reports whether v is farther than tol from its nearest integer.
func isFractional(v, tol float64) bool {
	return math.Abs(math.Floor(v+0.5)-v) > tol
}

// SPDX-License-Identifier: MIT
// Package relax - problem description shared by oracles and generators.
//
// Contract:
//   - Problem is read-only once handed to an oracle; oracles copy the column
//     bounds they mutate and share everything else.
//   - Validate is pure and O(nnz + rows + cols).

package relax

import (
	"math"

	"github.com/katalvlaran/mipdive/sparse"
)

// DefaultBoundCap replaces infinite column upper bounds in the standard-form
// conversion. It must dominate any meaningful variable value of the instance.
const DefaultBoundCap = 1e7

// Problem is a ranged linear program over a sparse constraint matrix.
type Problem struct {
	Matrix *sparse.ColMatrix

	ColLower []float64
	ColUpper []float64
	RowLower []float64
	RowUpper []float64

	Objective []float64
	Offset    float64
	Sense     Sense

	// BoundCap replaces infinite column upper bounds; 0 means DefaultBoundCap.
	BoundCap float64
}

// Validate checks shapes and bound consistency.
func (p *Problem) Validate() error {
	if p == nil || p.Matrix == nil {
		return ErrNilProblem
	}
	var (
		m = p.Matrix.Rows()
		n = p.Matrix.Cols()
	)
	if len(p.ColLower) != n || len(p.ColUpper) != n || len(p.Objective) != n {
		return ErrDimensionMismatch
	}
	if len(p.RowLower) != m || len(p.RowUpper) != m {
		return ErrDimensionMismatch
	}

	var i int
	for i = 0; i < n; i++ {
		if badPair(p.ColLower[i], p.ColUpper[i]) {
			return relaxErrorf("Validate col", i, ErrInconsistentBounds)
		}
		if math.IsNaN(p.Objective[i]) || math.IsInf(p.Objective[i], 0) {
			return relaxErrorf("Validate objective", i, ErrBadObjective)
		}
	}
	for i = 0; i < m; i++ {
		if badPair(p.RowLower[i], p.RowUpper[i]) {
			return relaxErrorf("Validate row", i, ErrInconsistentBounds)
		}
	}
	if p.BoundCap < 0 || math.IsNaN(p.BoundCap) {
		return ErrInconsistentBounds
	}

	return nil
}

// boundCap resolves the zero-value policy.
func (p *Problem) boundCap() float64 {
	if p.BoundCap == 0 {
		return DefaultBoundCap
	}

	return p.BoundCap
}

// badPair reports NaN or lower > upper.
func badPair(lo, up float64) bool {
	return math.IsNaN(lo) || math.IsNaN(up) || lo > up
}

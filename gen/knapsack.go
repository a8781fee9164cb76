// SPDX-License-Identifier: MIT
// Package gen - 0/1 knapsack.

package gen

import (
	"math"

	"github.com/katalvlaran/mipdive/relax"
	"github.com/katalvlaran/mipdive/sparse"
)

// Knapsack returns  max Σ v_i·x_i  s.t.  Σ w_i·x_i ≤ C,  x ∈ {0,1}^n  with
// values and weights drawn from [1, maxCost] and C = ⌊Σ w / 2⌋.
func Knapsack(n int, opts ...Option) (*relax.Problem, []int, error) {
	if n < 1 {
		return nil, nil, genErrorf("Knapsack", ErrBadSize)
	}
	cfg := newConfig(opts...)

	var (
		entries = make([]sparse.Entry, n)
		obj     = make([]float64, n)
		total   float64
		j       int
	)
	for j = 0; j < n; j++ {
		w := cfg.draw()
		obj[j] = cfg.draw()
		entries[j] = sparse.Entry{Row: 0, Col: j, Value: w}
		total += w
	}
	m, err := sparse.NewColMatrix(1, n, entries)
	if err != nil {
		return nil, nil, genErrorf("Knapsack", err)
	}

	return &relax.Problem{
		Matrix:    m,
		ColLower:  make([]float64, n),
		ColUpper:  filled(n, 1),
		RowLower:  []float64{math.Inf(-1)},
		RowUpper:  []float64{math.Floor(total / 2)},
		Objective: obj,
		Sense:     relax.Maximize,
	}, allColumns(n), nil
}

// filled returns a slice of n copies of v.
func filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}

	return s
}

// allColumns returns 0..n-1.
func allColumns(n int) []int {
	ints := make([]int, n)
	for i := range ints {
		ints[i] = i
	}

	return ints
}

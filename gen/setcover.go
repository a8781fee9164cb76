// SPDX-License-Identifier: MIT
// Package gen - weighted set cover.

package gen

import (
	"math"

	"github.com/katalvlaran/mipdive/relax"
	"github.com/katalvlaran/mipdive/sparse"
)

// SetCover returns  min Σ c_j·x_j  s.t.  Σ_{j covers i} x_j ≥ 1  for every
// row i, x ∈ {0,1}^cols. Each (row, column) pair is a cover with probability
// density; a row left uncovered receives one random column so the instance
// is always feasible.
func SetCover(rows, cols int, density float64, opts ...Option) (*relax.Problem, []int, error) {
	if rows < 1 || cols < 1 {
		return nil, nil, genErrorf("SetCover", ErrBadSize)
	}
	if math.IsNaN(density) || density <= 0 || density > 1 {
		return nil, nil, genErrorf("SetCover", ErrBadDensity)
	}
	cfg := newConfig(opts...)

	var (
		entries = make([]sparse.Entry, 0, int(float64(rows*cols)*density)+rows)
		i, j    int
	)
	for i = 0; i < rows; i++ {
		covered := false
		for j = 0; j < cols; j++ {
			if cfg.rng.Float64() < density {
				entries = append(entries, sparse.Entry{Row: i, Col: j, Value: 1})
				covered = true
			}
		}
		if !covered {
			entries = append(entries, sparse.Entry{Row: i, Col: cfg.rng.Intn(cols), Value: 1})
		}
	}
	obj := make([]float64, cols)
	for j = range obj {
		obj[j] = cfg.draw()
	}
	m, err := sparse.NewColMatrix(rows, cols, entries)
	if err != nil {
		return nil, nil, genErrorf("SetCover", err)
	}

	return &relax.Problem{
		Matrix:    m,
		ColLower:  make([]float64, cols),
		ColUpper:  filled(cols, 1),
		RowLower:  filled(rows, 1),
		RowUpper:  filled(rows, math.Inf(1)),
		Objective: obj,
	}, allColumns(cols), nil
}

// SPDX-License-Identifier: MIT
// Package gen - assignment families.
//
// Column layout for both families: x_{i,j} lives in column i·jobs + j.

package gen

import (
	"math"

	"github.com/katalvlaran/mipdive/relax"
	"github.com/katalvlaran/mipdive/sparse"
)

// gapSlack scales the average agent load into its capacity. Any value ≥ 1
// keeps the uniform split x_{i,j} = 1/agents feasible for the relaxation.
const gapSlack = 1.25

// Assignment returns the n×n linear assignment problem
// min Σ c_ij·x_ij  s.t.  each agent takes one task, each task one agent.
// Rows 0..n-1 are agents, rows n..2n-1 are tasks.
func Assignment(n int, opts ...Option) (*relax.Problem, []int, error) {
	if n < 1 {
		return nil, nil, genErrorf("Assignment", ErrBadSize)
	}
	cfg := newConfig(opts...)

	var (
		cols    = n * n
		entries = make([]sparse.Entry, 0, 2*cols)
		obj     = make([]float64, cols)
		i, j    int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			col := i*n + j
			obj[col] = cfg.draw()
			entries = append(entries,
				sparse.Entry{Row: i, Col: col, Value: 1},
				sparse.Entry{Row: n + j, Col: col, Value: 1})
		}
	}
	m, err := sparse.NewColMatrix(2*n, cols, entries)
	if err != nil {
		return nil, nil, genErrorf("Assignment", err)
	}

	return &relax.Problem{
		Matrix:    m,
		ColLower:  make([]float64, cols),
		ColUpper:  filled(cols, 1),
		RowLower:  filled(2*n, 1),
		RowUpper:  filled(2*n, 1),
		Objective: obj,
	}, allColumns(cols), nil
}

// GeneralizedAssignment returns a generalized assignment problem: every job
// goes to exactly one agent (rows 0..jobs-1) and the weighted load of agent i
// stays within its capacity (row jobs+i). Capacities are gapSlack times the
// agent's average load, so the relaxation is always feasible while the
// integer problem usually is not trivially so.
func GeneralizedAssignment(agents, jobs int, opts ...Option) (*relax.Problem, []int, error) {
	if agents < 1 || jobs < 1 {
		return nil, nil, genErrorf("GeneralizedAssignment", ErrBadSize)
	}
	cfg := newConfig(opts...)

	var (
		cols    = agents * jobs
		rows    = jobs + agents
		entries = make([]sparse.Entry, 0, 2*cols)
		obj     = make([]float64, cols)
		rowLo   = make([]float64, rows)
		rowUp   = make([]float64, rows)
		i, j    int
	)
	for i = 0; i < agents; i++ {
		var load float64
		for j = 0; j < jobs; j++ {
			col := i*jobs + j
			w := cfg.draw()
			obj[col] = cfg.draw()
			load += w
			entries = append(entries,
				sparse.Entry{Row: j, Col: col, Value: 1},
				sparse.Entry{Row: jobs + i, Col: col, Value: w})
		}
		rowLo[jobs+i] = math.Inf(-1)
		rowUp[jobs+i] = math.Ceil(gapSlack * load / float64(agents))
	}
	for j = 0; j < jobs; j++ {
		rowLo[j], rowUp[j] = 1, 1
	}
	m, err := sparse.NewColMatrix(rows, cols, entries)
	if err != nil {
		return nil, nil, genErrorf("GeneralizedAssignment", err)
	}

	return &relax.Problem{
		Matrix:    m,
		ColLower:  make([]float64, cols),
		ColUpper:  filled(cols, 1),
		RowLower:  rowLo,
		RowUpper:  rowUp,
		Objective: obj,
	}, allColumns(cols), nil
}

// SPDX-License-Identifier: MIT
// Package relax - reference Oracle on top of gonum's dense simplex.
//
// Standard-form conversion (rebuilt on every Resolve, bounds may have moved):
//
//	y_j = x_j − colLower_j ≥ 0                           (shift)
//	a_r·y + s_r = rowUpper_r − a_r·colLower   for finite rowUpper
//	a_r·y − t_r = rowLower_r − a_r·colLower   for finite rowLower
//	y_j + w_j   = colUpper_j − colLower_j     (capped at BoundCap when infinite)
//
// Every standard-form row owns a private slack column and every structural
// column appears in its bound row, so A' has full row rank and no zero
// column, which lp.Simplex requires.
//
// Complexity: O((k+n)·(k+2n)) memory per Resolve for the dense A', where k is
// the number of finite row sides. Intended for small and medium instances.

package relax

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultPivotTolerance is handed to lp.Simplex as its reduced-cost tolerance.
const DefaultPivotTolerance = 1e-10

// snapTol pulls solution entries that are integral up to LP noise onto the integer.
const snapTol = 1e-9

// Status is the outcome of the last Resolve.
type Status int

const (
	// StatusUnsolved means Resolve has not been called yet.
	StatusUnsolved Status = iota
	// StatusOptimal means the last Resolve proved optimality.
	StatusOptimal
	// StatusInfeasible means the current bounds admit no point.
	StatusInfeasible
	// StatusUnbounded means the relaxation is unbounded.
	StatusUnbounded
	// StatusFailed means the LP routine gave up for numeric reasons.
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusFailed:
		return "failed"
	default:
		return "unsolved"
	}
}

// SimplexOption configures a Simplex oracle.
type SimplexOption func(*Simplex)

// WithPrimalTolerance sets the tolerance reported by PrimalTolerance.
// Panics if tol is negative or not finite.
func WithPrimalTolerance(tol float64) SimplexOption {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("relax: WithPrimalTolerance: tol must be finite, non-negative")
	}

	return func(s *Simplex) { s.primalTol = tol }
}

// WithPivotTolerance sets the reduced-cost tolerance passed to lp.Simplex.
// Panics if tol is negative or not finite.
func WithPivotTolerance(tol float64) SimplexOption {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("relax: WithPivotTolerance: tol must be finite, non-negative")
	}

	return func(s *Simplex) { s.pivotTol = tol }
}

// Simplex is an Oracle solving its relaxation with lp.Simplex.
type Simplex struct {
	prob *Problem // shared, read-only

	lower []float64 // private working bounds
	upper []float64
	x     []float64 // last column solution

	status    Status
	primalTol float64
	pivotTol  float64
	released  bool
}

var _ Oracle = (*Simplex)(nil)

// NewSimplex validates p and returns an unsolved oracle over it.
// Column lower bounds must be finite.
func NewSimplex(p *Problem, opts ...SimplexOption) (*Simplex, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.Matrix.Cols()

	var j int
	for j = 0; j < n; j++ {
		if !IsFiniteLower(p.ColLower[j]) {
			return nil, relaxErrorf("NewSimplex", j, ErrUnboundedBelow)
		}
	}

	s := &Simplex{
		prob:      p,
		lower:     append([]float64(nil), p.ColLower...),
		upper:     append([]float64(nil), p.ColUpper...),
		x:         make([]float64, n),
		primalTol: DefaultPrimalTolerance,
		pivotTol:  DefaultPivotTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Clone implements Oracle.
func (s *Simplex) Clone() (Oracle, error) {
	if s.released {
		return nil, ErrReleased
	}

	return &Simplex{
		prob:      s.prob,
		lower:     append([]float64(nil), s.lower...),
		upper:     append([]float64(nil), s.upper...),
		x:         append([]float64(nil), s.x...),
		status:    s.status,
		primalTol: s.primalTol,
		pivotTol:  s.pivotTol,
	}, nil
}

// Release implements Oracle.
func (s *Simplex) Release() {
	if s.released {
		return
	}
	s.released = true
	s.lower, s.upper, s.x = nil, nil, nil
}

// Released reports whether Release has been called.
func (s *Simplex) Released() bool { return s.released }

func (s *Simplex) NumRows() int { return s.prob.Matrix.Rows() }
func (s *Simplex) NumCols() int { return s.prob.Matrix.Cols() }

func (s *Simplex) ColLower() []float64 { return s.lower }
func (s *Simplex) ColUpper() []float64 { return s.upper }

func (s *Simplex) SetColLower(j int, v float64) { s.lower[j] = v }
func (s *Simplex) SetColUpper(j int, v float64) { s.upper[j] = v }

func (s *Simplex) ColSolution() []float64     { return s.x }
func (s *Simplex) ObjCoefficients() []float64 { return s.prob.Objective }
func (s *Simplex) ObjOffset() float64         { return s.prob.Offset }
func (s *Simplex) ObjSense() Sense            { return s.prob.Sense }
func (s *Simplex) RowLower() []float64        { return s.prob.RowLower }
func (s *Simplex) RowUpper() []float64        { return s.prob.RowUpper }
func (s *Simplex) PrimalTolerance() float64   { return s.primalTol }

// IsProvenOptimal implements Oracle.
func (s *Simplex) IsProvenOptimal() bool { return s.status == StatusOptimal }

// Status returns the outcome of the last Resolve.
func (s *Simplex) Status() Status { return s.status }

// ObjValue returns offset + cᵀx for the last solution (in the problem's own sense).
func (s *Simplex) ObjValue() float64 {
	var (
		v = s.prob.Offset
		j int
	)
	for j = range s.x {
		v += s.prob.Objective[j] * s.x[j]
	}

	return v
}

// Resolve implements Oracle.
func (s *Simplex) Resolve() {
	s.status = s.solve()
}

// solve builds the standard form under the current bounds and runs lp.Simplex.
// On any non-optimal outcome the previous column solution is kept.
func (s *Simplex) solve() Status {
	var (
		p    = s.prob
		m    = p.Matrix.Rows()
		n    = p.Matrix.Cols()
		bcap = p.boundCap()
		i, j int
	)

	// Stage 1: crossed bounds are infeasible without calling the LP routine.
	for j = 0; j < n; j++ {
		if s.lower[j] > s.upper[j] {
			return StatusInfeasible
		}
	}

	// Stage 2: row activity at the shift point and side numbering.
	shift := make([]float64, m)
	if err := p.Matrix.ActivityInto(s.lower, shift); err != nil {
		return StatusFailed
	}
	upSide := make([]int, m) // standard-form row of the ≤ side, or -1
	loSide := make([]int, m) // standard-form row of the ≥ side, or -1
	k := 0
	for i = 0; i < m; i++ {
		upSide[i], loSide[i] = -1, -1
		if IsFiniteUpper(p.RowUpper[i]) {
			upSide[i] = k
			k++
		}
		if IsFiniteLower(p.RowLower[i]) {
			loSide[i] = k
			k++
		}
	}

	// Stage 3: assemble A', b, c.
	var (
		rows = k + n
		cols = n + k + n
		a    = mat.NewDense(rows, cols, nil)
		b    = make([]float64, rows)
		c    = make([]float64, cols)
		f    = p.Sense.Factor()
	)
	for j = 0; j < n; j++ {
		c[j] = f * p.Objective[j]
		idx, val := p.Matrix.Column(j)
		for q := range idx {
			if r := upSide[idx[q]]; r >= 0 {
				a.Set(r, j, val[q])
			}
			if r := loSide[idx[q]]; r >= 0 {
				a.Set(r, j, val[q])
			}
		}
	}
	for i = 0; i < m; i++ {
		if r := upSide[i]; r >= 0 {
			a.Set(r, n+r, 1)
			b[r] = p.RowUpper[i] - shift[i]
		}
		if r := loSide[i]; r >= 0 {
			a.Set(r, n+r, -1)
			b[r] = p.RowLower[i] - shift[i]
		}
	}
	for j = 0; j < n; j++ {
		r := k + j
		a.Set(r, j, 1)
		a.Set(r, n+k+j, 1)
		if IsFiniteUpper(s.upper[j]) {
			b[r] = s.upper[j] - s.lower[j]
		} else {
			b[r] = bcap
		}
	}

	// Stage 4: solve and map back.
	_, y, err := lp.Simplex(c, a, b, s.pivotTol, nil)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return StatusInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return StatusUnbounded
	default:
		return StatusFailed
	}
	for j = 0; j < n; j++ {
		s.x[j] = snap(s.lower[j]+y[j], s.lower[j], s.upper[j])
	}

	return StatusOptimal
}

// snap removes LP noise around integers and clamps into [lo,up].
func snap(v, lo, up float64) float64 {
	if r := math.Round(v); math.Abs(v-r) <= snapTol {
		v = r
	}
	if v < lo {
		v = lo
	}
	if v > up {
		v = up
	}

	return v
}

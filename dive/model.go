// SPDX-License-Identifier: MIT
// Package dive - the enclosing solver's view.
//
// A Model hands the heuristic a live relaxation (cloned, never mutated), the
// constraint snapshot the locks are derived from and the trigger state.
// StaticModel is a plain-value implementation.

package dive

import (
	"github.com/katalvlaran/mipdive/relax"
	"github.com/katalvlaran/mipdive/sparse"
)

// Model is the enclosing search's view offered to the heuristic.
type Model interface {
	// Solver is the live relaxation. The heuristic only ever clones it.
	Solver() relax.Oracle
	// Matrix is the immutable constraint snapshot the locks are derived from.
	Matrix() *sparse.ColMatrix
	// IntegerColumns lists the integer-constrained columns.
	IntegerColumns() []int
	// IntegerTolerance is the distance to the nearest integer still counted as integral.
	IntegerTolerance() float64
	// NumObjects counts all discrete objects (integers, SOS sets, ...).
	NumObjects() int
	// When is the trigger code; 0 switches the heuristic off. See Heuristic.Solution.
	When() int
	// Phase is the current search phase of the enclosing solver.
	Phase() int
}

// IncumbentSource is implemented by models that expose the best known
// solution vector. Guided diving requires it.
type IncumbentSource interface {
	BestSolution() []float64
}

// DefaultIntegerTolerance is used by StaticModel when Tolerance is zero.
const DefaultIntegerTolerance = 1e-6

// StaticModel is a plain-value Model, handy for standalone use and tests.
type StaticModel struct {
	LP          relax.Oracle
	Constraints *sparse.ColMatrix
	Integers    []int
	Tolerance   float64 // 0 ⇒ DefaultIntegerTolerance
	Objects     int     // 0 ⇒ len(Integers)
	Trigger     int
	SearchPhase int
	Incumbent   []float64 // optional, feeds guided diving
}

var (
	_ Model           = (*StaticModel)(nil)
	_ IncumbentSource = (*StaticModel)(nil)
)

// Solver returns LP.
func (m *StaticModel) Solver() relax.Oracle { return m.LP }

// Matrix returns Constraints.
func (m *StaticModel) Matrix() *sparse.ColMatrix { return m.Constraints }

// IntegerColumns returns Integers.
func (m *StaticModel) IntegerColumns() []int { return m.Integers }

// When returns Trigger.
func (m *StaticModel) When() int { return m.Trigger }

// Phase returns SearchPhase.
func (m *StaticModel) Phase() int { return m.SearchPhase }

// BestSolution returns Incumbent; nil when no incumbent is known.
func (m *StaticModel) BestSolution() []float64 { return m.Incumbent }

// IntegerTolerance returns Tolerance, or DefaultIntegerTolerance when zero.
func (m *StaticModel) IntegerTolerance() float64 {
	if m.Tolerance == 0 {
		return DefaultIntegerTolerance
	}

	return m.Tolerance
}

// NumObjects returns Objects, or len(Integers) when zero.
func (m *StaticModel) NumObjects() int {
	if m.Objects == 0 {
		return len(m.Integers)
	}

	return m.Objects
}

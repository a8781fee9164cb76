// SPDX-License-Identifier: MIT
// Package relax - the relaxation-oracle contract.
//
// An Oracle owns its column bounds and last column solution; everything else
// (matrix, row bounds, objective) is read-only. Bounds at or beyond
// ±Infinity are absent.

package relax

// Infinity is the magnitude at or beyond which a bound counts as absent.
const Infinity = 1e20

// DefaultPrimalTolerance matches the customary LP primal feasibility tolerance.
const DefaultPrimalTolerance = 1e-7

// Sense is the optimization direction. The zero value minimizes.
type Sense int

const (
	// Minimize is the default sense.
	Minimize Sense = iota
	// Maximize flips the objective.
	Maximize
)

// Factor returns +1 for Minimize and −1 for Maximize, so that
// Factor()·objective is always "smaller is better".
func (s Sense) Factor() float64 {
	if s == Maximize {
		return -1
	}

	return 1
}

// String implements fmt.Stringer.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// IsFiniteLower reports whether v is a real (present) lower bound.
func IsFiniteLower(v float64) bool { return v > -Infinity }

// IsFiniteUpper reports whether v is a real (present) upper bound.
func IsFiniteUpper(v float64) bool { return v < Infinity }

// Oracle is a re-solvable LP relaxation.
//
// Slices returned by the getters are read-only views owned by the oracle; they
// may reflect later SetColLower/SetColUpper/Resolve calls. Callers that need a
// stable copy must copy.
//
// An Oracle is not safe for concurrent mutation. Clone must be safe to call
// concurrently with other Clone calls on the same receiver.
type Oracle interface {
	// Clone returns an independent copy sharing no mutable state.
	Clone() (Oracle, error)
	// Release frees the oracle's working state. Calling it twice is a no-op.
	Release()

	NumRows() int
	NumCols() int

	ColLower() []float64
	ColUpper() []float64
	SetColLower(j int, v float64)
	SetColUpper(j int, v float64)

	// ColSolution is the column vector of the last Resolve.
	ColSolution() []float64
	ObjCoefficients() []float64
	// ObjOffset is the constant term added to cᵀx.
	ObjOffset() float64
	ObjSense() Sense

	// Resolve re-optimizes under the current bounds. Outcome is reported by
	// IsProvenOptimal; Resolve never returns an error.
	Resolve()
	IsProvenOptimal() bool

	RowLower() []float64
	RowUpper() []float64
	PrimalTolerance() float64
}

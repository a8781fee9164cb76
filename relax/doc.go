// Package relax defines the relaxation-oracle contract used by primal
// heuristics and ships a reference oracle backed by gonum's simplex.
//
// An Oracle is a stateful LP relaxation: it owns the current column bounds,
// re-solves on demand and reports the column solution. Heuristics never mutate
// the caller's oracle; they Clone it, work on the copy and Release the copy on
// every exit path.
//
// The Simplex oracle converts a bounded, ranged LP
//
//	min/max  cᵀx + offset
//	s.t.     rowLower ≤ A·x ≤ rowUpper
//	         colLower ≤ x   ≤ colUpper
//
// into gonum's standard form (A'·y = b, y ≥ 0) by shifting columns onto their
// lower bounds and adding one slack per finite row side and per column bound.
// Column lower bounds must be finite; infinite upper bounds are capped at
// Problem.BoundCap.
//
// Bounds at or beyond ±Infinity (1e20) are treated as absent.
package relax

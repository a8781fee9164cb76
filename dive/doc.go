// Package dive implements fractional and guided diving, a primal heuristic
// that turns a fractional LP relaxation point of a mixed-integer program into
// an integer-feasible solution.
//
// The package is split into three cooperating parts:
//
//   - Lock analysis (ComputeLocks): from a static column-major snapshot and
//     the row bounds, count for every integer column how many rows may be
//     violated by rounding it down and by rounding it up.
//   - The dive controller (Heuristic.Solution): clones the caller's
//     relaxation oracle, repeatedly tightens the bound of the "least
//     fractional" blocked column and re-solves, pinning integral columns at
//     their bounds on the way and backtracking (undo pins, flip direction,
//     abandon) when the relaxation turns infeasible. As soon as every
//     fractional column has a zero lock, the point is rounded directly.
//   - Verification (Verify): row activities are recomputed from the snapshot
//     and integrality is re-checked before a candidate may replace the
//     incumbent.
//
// Objective values crossing the API are in minimization form, i.e. already
// multiplied by the oracle's Sense.Factor(): "smaller is better". Pass
// math.Inf(1) when no incumbent exists.
//
// A Heuristic is not safe for concurrent use. Distinct instances are
// independent; RunPortfolio runs several of them concurrently.
//
// Example:
//
//	h, err := dive.New(model, dive.WithMaxIterations(50))
//	if err != nil { ... }
//	out := make([]float64, model.Solver().NumCols())
//	res, err := h.Solution(ctx, math.Inf(1), out)
//	if err == nil && res.Improved { use(out, res.Value) }
package dive

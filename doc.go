// Package mipdive is a small toolkit around diving, a primal heuristic for
// mixed-integer programming: starting from a fractional LP relaxation point,
// repeatedly fix or tighten integer columns and re-solve until the point is
// integral, then hand back a verified, strictly improving solution.
//
// Layout:
//
//	sparse/        immutable column-major constraint snapshot (CSC)
//	relax/         the re-solvable relaxation contract (Oracle) and a
//	               gonum-backed reference implementation (Simplex)
//	dive/          lock analysis, the dive controller with backtracking,
//	               independent verification, a concurrent portfolio
//	gen/           reproducible knapsack, set-cover and assignment instances
//	internal/cli/  the mipdive command (cobra, charmbracelet/log, lipgloss)
//	cmd/mipdive/   entry point
//
// Quick start:
//
//	p, ints, _ := gen.Knapsack(30, gen.WithSeed(7))
//	lp, _ := relax.NewSimplex(p)
//	lp.Resolve()
//	h, _ := dive.New(&dive.StaticModel{LP: lp, Constraints: p.Matrix, Integers: ints, Trigger: 3})
//	out := make([]float64, p.Matrix.Cols())
//	res, _ := h.Solution(ctx, math.Inf(1), out)
//
// Objective values exchanged with dive are in minimization form ("smaller is
// better"); multiply by the problem's Sense.Factor() to get the original value.
package mipdive

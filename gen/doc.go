// Package gen builds small, reproducible mixed-integer programs for demos,
// benchmarks and property tests of the diving heuristic.
//
// Every generator returns a *relax.Problem (ready for relax.NewSimplex) and
// the list of integer-constrained columns. Instances are deterministic: the
// same size and seed yield identical problems on every platform.
//
// Families:
//
//   - Knapsack:              max Σ v·x  s.t.  Σ w·x ≤ C,  x ∈ {0,1}
//   - SetCover:              min Σ c·x  s.t.  every row covered,  x ∈ {0,1}
//   - Assignment:            min Σ c·x  s.t.  one task per agent, one agent per task
//   - GeneralizedAssignment: jobs assigned exactly once, agents capacitated
//
// Knapsack and SetCover relaxations round directly (their columns lock on one
// side only). The assignment relaxation has integral vertices, so the root
// solution is usually integral already. GeneralizedAssignment couples its
// equality rows with capacity rows; its relaxation is fractional and the dive
// has to tighten, resolve and backtrack.
//
// Example:
//
//	p, ints, err := gen.Knapsack(30, gen.WithSeed(7))
//	lp, err := relax.NewSimplex(p)
package gen

// Package sparse provides the immutable, column-major constraint snapshot
// consumed by primal heuristics.
//
// The package offers:
//
//   - ColMatrix: a compressed-sparse-column (CSC) view of a constraint matrix,
//     built once from triplets or from a dense row-major slice and never
//     mutated afterwards.
//   - Activity: row activities A·x recomputed straight from the snapshot,
//     independent of any solver bookkeeping.
//   - Dense: export into a gonum *mat.Dense for LP oracles.
//
// A ColMatrix is safe for concurrent readers. Rebuild a new one (never patch)
// when the owning model changes structurally.
package sparse

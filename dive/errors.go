// SPDX-License-Identifier: MIT
// Package dive: sentinel error set.
//
// Error policy:
//   - Search outcomes (infeasible dive, exhausted budget, rejected candidate)
//     are never errors; they are reported through Result.Outcome.
//   - Errors are reserved for caller contract violations and malformed models.
//   - Callers branch with errors.Is; sentinels may be wrapped with method context.

package dive

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel is returned when a nil Model, oracle or matrix is supplied.
	ErrNilModel = errors.New("dive: nil model")

	// ErrNilHeuristic is returned by methods invoked on a nil *Heuristic.
	ErrNilHeuristic = errors.New("dive: nil heuristic")

	// ErrBadIntegerColumn indicates an integer column index that is out of range or repeated.
	ErrBadIntegerColumn = errors.New("dive: invalid integer column")

	// ErrDimensionMismatch indicates row bounds or vectors that disagree with the snapshot shape.
	ErrDimensionMismatch = errors.New("dive: dimension mismatch")

	// ErrColumnTooDense is returned by ComputeLocks when an integer column has
	// more nonzeros than a lock counter can represent.
	ErrColumnTooDense = errors.New("dive: column too dense for lock counters")

	// ErrShortBuffer is returned when the output buffer cannot hold a full solution.
	ErrShortBuffer = errors.New("dive: output buffer shorter than column count")

	// ErrBadOption indicates an Options value outside its documented range.
	ErrBadOption = errors.New("dive: invalid option value")

	// ErrDuplicateInstance is returned by RunPortfolio when one *Heuristic is listed twice.
	ErrDuplicateInstance = errors.New("dive: heuristic instance listed twice")
)

// diveErrorf wraps err with the public method name.
func diveErrorf(method string, err error) error {
	return fmt.Errorf("dive.%s: %w", method, err)
}

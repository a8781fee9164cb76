// SPDX-License-Identifier: MIT
// Package relax: sentinel error set.

package relax

import (
	"errors"
	"fmt"
)

var (
	// ErrNilProblem is returned when a nil *Problem (or nil matrix) is supplied.
	ErrNilProblem = errors.New("relax: nil problem")

	// ErrDimensionMismatch indicates bound/objective vectors that disagree with the matrix shape.
	ErrDimensionMismatch = errors.New("relax: dimension mismatch")

	// ErrInconsistentBounds indicates lower > upper for a row or column, or a NaN bound.
	ErrInconsistentBounds = errors.New("relax: inconsistent bounds")

	// ErrBadObjective indicates a NaN or ±Inf objective coefficient.
	ErrBadObjective = errors.New("relax: NaN or Inf objective coefficient")

	// ErrUnboundedBelow is returned by NewSimplex when a column has no finite lower bound.
	ErrUnboundedBelow = errors.New("relax: column lower bound must be finite")

	// ErrReleased is returned by Clone on an oracle that has already been released.
	ErrReleased = errors.New("relax: oracle released")
)

// relaxErrorf wraps err with method and index context.
func relaxErrorf(method string, idx int, err error) error {
	return fmt.Errorf("relax.%s(%d): %w", method, idx, err)
}

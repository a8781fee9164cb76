// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All constructors return these sentinels (optionally wrapped with method
// context via %w); callers branch with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when the requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index lies outside the shape.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf signals a NaN or ±Inf coefficient; constraint coefficients must be finite.
	ErrNaNInf = errors.New("sparse: NaN or Inf coefficient")

	// ErrDimensionMismatch indicates a vector whose length disagrees with the matrix shape.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrRaggedRows is returned by FromDense when the input rows differ in length.
	ErrRaggedRows = errors.New("sparse: ragged dense input")
)

// sparseErrorf wraps err with the public method name for context.
func sparseErrorf(method string, err error) error {
	return fmt.Errorf("sparse.%s: %w", method, err)
}

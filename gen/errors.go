// SPDX-License-Identifier: MIT
// Package gen: sentinel errors.

package gen

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a non-positive instance dimension.
	ErrBadSize = errors.New("gen: size must be positive")

	// ErrBadDensity indicates a set-cover density outside (0,1].
	ErrBadDensity = errors.New("gen: density must lie in (0,1]")

	// ErrUnknownKind is returned by Build for an unrecognized family name.
	ErrUnknownKind = errors.New("gen: unknown instance kind")
)

// genErrorf adds the generator name to err.
func genErrorf(fn string, err error) error {
	return fmt.Errorf("gen.%s: %w", fn, err)
}

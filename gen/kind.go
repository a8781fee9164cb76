// SPDX-License-Identifier: MIT
// Package gen - instance families by name.

package gen

import (
	"strings"

	"github.com/katalvlaran/mipdive/relax"
)

// Kind names an instance family.
type Kind string

const (
	KindKnapsack   Kind = "knapsack"
	KindSetCover   Kind = "setcover"
	KindAssignment Kind = "assignment"
	KindGAP        Kind = "gap"
)

// DefaultDensity is the set-cover density used by Build.
const DefaultDensity = 0.2

// Kinds lists every family accepted by Build, in display order.
func Kinds() []Kind {
	return []Kind{KindKnapsack, KindSetCover, KindAssignment, KindGAP}
}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", genErrorf("ParseKind", ErrUnknownKind)
}

// Build creates one instance of kind scaled by size:
//   - knapsack:   size items
//   - setcover:   size rows, 2·size columns, DefaultDensity
//   - assignment: size agents and tasks (integral relaxation)
//   - gap:        max(2, size/4) agents, size jobs (fractional relaxation)
func Build(kind Kind, size int, opts ...Option) (*relax.Problem, []int, error) {
	switch kind {
	case KindKnapsack:
		return Knapsack(size, opts...)
	case KindSetCover:
		return SetCover(size, 2*size, DefaultDensity, opts...)
	case KindAssignment:
		return Assignment(size, opts...)
	case KindGAP:
		return GeneralizedAssignment(max(2, size/4), size, opts...)
	default:
		return nil, nil, genErrorf("Build", ErrUnknownKind)
	}
}

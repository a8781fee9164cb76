// SPDX-License-Identifier: MIT
// Package dive - lock analysis.
//
// A lock of integer column j in row r says that moving x_j in one direction
// can, on its own, push r's activity out of its bounds:
//
//	row with finite lower AND upper     → down++, up++
//	coeff > 0, finite upper             → up++      (else down++)
//	coeff < 0, finite lower             → up++      (else down++)
//
// Counts record presence, not magnitude. A column with a zero lock can always
// be rounded toward that side without a resolve.
//
// Counters are 16 bits wide. Columns with more than MaxLockCount nonzeros are
// refused (ErrColumnTooDense) instead of silently wrapping.
//
// Complexity: O(Σ nnz of integer columns), pure and deterministic.

package dive

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mipdive/relax"
	"github.com/katalvlaran/mipdive/sparse"
)

// MaxLockCount is the largest nonzero count a lock counter can hold.
const MaxLockCount = math.MaxUint16

// Locks holds per-integer-column lock counts, indexed like the integer list
// passed to ComputeLocks (not by column).
type Locks struct {
	Down []uint16
	Up   []uint16
}

// Len returns the number of integer columns covered.
func (l Locks) Len() int { return len(l.Down) }

// Roundable reports whether the i-th integer column has a zero lock on some side.
func (l Locks) Roundable(i int) bool { return l.Down[i] == 0 || l.Up[i] == 0 }

// ComputeLocks derives lock counts for intCols from the snapshot m and the row bounds.
func ComputeLocks(m *sparse.ColMatrix, rowLower, rowUpper []float64, intCols []int) (Locks, error) {
	if m == nil {
		return Locks{}, diveErrorf("ComputeLocks", ErrNilModel)
	}
	if len(rowLower) < m.Rows() || len(rowUpper) < m.Rows() {
		return Locks{}, diveErrorf("ComputeLocks", ErrDimensionMismatch)
	}

	locks := Locks{
		Down: make([]uint16, len(intCols)),
		Up:   make([]uint16, len(intCols)),
	}

	var (
		i, col   int
		q, r     int
		down, up int
	)
	for i, col = range intCols {
		if col < 0 || col >= m.Cols() {
			return Locks{}, diveErrorf("ComputeLocks", ErrBadIntegerColumn)
		}
		if m.ColumnLen(col) > MaxLockCount {
			return Locks{}, fmt.Errorf("dive.ComputeLocks: column %d has %d nonzeros: %w",
				col, m.ColumnLen(col), ErrColumnTooDense)
		}
		rows, vals := m.Column(col)
		down, up = 0, 0
		for q, r = range rows {
			lo, hi := relax.IsFiniteLower(rowLower[r]), relax.IsFiniteUpper(rowUpper[r])
			switch {
			case lo && hi:
				down++
				up++
			case vals[q] > 0:
				if hi {
					up++
				} else {
					down++
				}
			default:
				if lo {
					up++
				} else {
					down++
				}
			}
		}
		locks.Down[i] = uint16(down)
		locks.Up[i] = uint16(up)
	}

	return locks, nil
}

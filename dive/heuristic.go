// SPDX-License-Identifier: MIT
// Package dive - heuristic instance and its structural snapshot.
//
// A Heuristic owns:
//   - the constraint snapshot and lock counts (rebuilt wholesale by Rebuild,
//     never patched),
//   - the integer-column set as a roaring bitmap (duplicate detection and the
//     verifier's integrality sweep),
//   - an explicit enabled/disabled state with the reason it was disabled.
//
// Everything else (working vector, pin records, oracle clone) is call-scoped.

package dive

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/mipdive/sparse"
)

// SensitiveTriggerLimit: trigger codes below it assume plain integer semantics
// and disable the heuristic when the model carries other discrete objects.
const SensitiveTriggerLimit = 10

// DisableReason explains why a heuristic refuses to run.
type DisableReason int

const (
	// Enabled means the heuristic is runnable.
	Enabled DisableReason = iota
	// DisabledDenseColumn: an integer column exceeds MaxLockCount nonzeros.
	DisabledDenseColumn
	// DisabledNonSimpleIntegers: sensitive trigger with non-integer discrete objects.
	DisabledNonSimpleIntegers
	// DisabledInvalidModel: the last Rebuild failed validation.
	DisabledInvalidModel
)

// String implements fmt.Stringer.
func (r DisableReason) String() string {
	switch r {
	case Enabled:
		return "enabled"
	case DisabledDenseColumn:
		return "dense column"
	case DisabledNonSimpleIntegers:
		return "non-simple integers"
	case DisabledInvalidModel:
		return "invalid model"
	default:
		return "unknown"
	}
}

// Heuristic is a fractional (or guided) diving heuristic bound to one Model.
type Heuristic struct {
	model Model
	opts  Options

	matrix  *sparse.ColMatrix
	intCols []int
	intSet  *roaring.Bitmap
	locks   Locks

	disabled DisableReason
}

// New binds a heuristic to model and builds its snapshot.
// Structural conditions the heuristic cannot handle do not fail New; they
// leave the instance disabled (see Disabled). Malformed models return an error.
func New(model Model, opts ...Option) (*Heuristic, error) {
	h := &Heuristic{opts: gatherOptions(opts...)}
	if err := h.Rebuild(model); err != nil {
		return nil, err
	}

	return h, nil
}

// Options returns the resolved configuration.
func (h *Heuristic) Options() Options { return h.opts }

// Locks returns the current lock counts (indexed like IntegerColumns).
func (h *Heuristic) Locks() Locks { return h.locks }

// Disabled returns the reason the heuristic refuses to run, or Enabled.
func (h *Heuristic) Disabled() DisableReason { return h.disabled }

// Rebuild rebinds the heuristic to model and recomputes the snapshot from
// scratch. It is the only way to clear a disabled state. Call it whenever the
// model changes structurally; never concurrently with Solution.
func (h *Heuristic) Rebuild(model Model) error {
	if h == nil {
		return ErrNilHeuristic
	}
	h.model = model
	h.matrix, h.intCols, h.intSet, h.locks = nil, nil, nil, Locks{}
	h.disabled = DisabledInvalidModel

	if model == nil || model.Solver() == nil || model.Matrix() == nil {
		return diveErrorf("Rebuild", ErrNilModel)
	}
	var (
		lp   = model.Solver()
		m    = model.Matrix()
		ints = model.IntegerColumns()
	)
	if m.Rows() > lp.NumRows() || m.Cols() > lp.NumCols() {
		return diveErrorf("Rebuild", ErrDimensionMismatch)
	}

	set := roaring.New()
	for _, col := range ints {
		if col < 0 || col >= m.Cols() || !set.CheckedAdd(uint32(col)) {
			return diveErrorf("Rebuild", ErrBadIntegerColumn)
		}
	}
	h.matrix = m
	h.intCols = append([]int(nil), ints...)
	h.intSet = set

	log := h.opts.Logger
	if model.When() < SensitiveTriggerLimit && len(ints) != model.NumObjects() {
		h.disabled = DisabledNonSimpleIntegers
		log.Debug("dive disabled", "reason", h.disabled, "integers", len(ints), "objects", model.NumObjects())

		return nil
	}

	locks, err := ComputeLocks(m, lp.RowLower(), lp.RowUpper(), h.intCols)
	if err != nil && !errors.Is(err, ErrColumnTooDense) {
		return diveErrorf("Rebuild", err)
	}
	if err != nil {
		h.disabled = DisabledDenseColumn
		log.Debug("dive disabled", "reason", h.disabled, "err", err)

		return nil
	}
	h.locks = locks
	h.disabled = Enabled
	log.Debug("dive snapshot rebuilt", "rows", m.Rows(), "cols", m.Cols(), "integers", len(ints))

	return nil
}

// shouldRun decodes the trigger code against the search phase:
// 0 is off, x1 runs only in phase 1, x2 only in phases 2 and 3,
// any other nonzero code always runs.
func shouldRun(when, phase int) bool {
	if when == 0 {
		return false
	}
	switch when % 10 {
	case 1:
		return phase == 1
	case 2:
		return phase == 2 || phase == 3
	default:
		return true
	}
}

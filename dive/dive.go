// SPDX-License-Identifier: MIT
// Package dive - the dive controller.
//
// Solution runs one dive on a private clone of the model's relaxation:
//
//  1. Gate on the disabled state and the trigger/phase code.
//  2. Clone the oracle; the clone is released on every return path.
//  3. Loop while integer columns are fractional:
//     a. scan: pick the blocked fractional column with the smallest score,
//     pin integral columns sitting at a bound (at most cap per pass);
//     b. if nothing is blocked, round every fractional column toward its
//     unlocked side and stop (no resolve);
//     c. check the budgets (iterations, wall time, ctx);
//     d. tighten the selected column and resolve, backtracking through
//     Advance until Settled or Abandoned.
//  4. Recompute the objective from the working vector, require a strict
//     improvement over the incumbent, then Verify.
//
// Design notes:
//   - Pins applied in earlier passes stay in force; a rollback only undoes
//     the pins of the current pass.
//   - The objective is recomputed from the original coefficients instead of
//     the oracle's last value, so drift across tightenings cannot leak in.

package dive

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mipdive/relax"
)

// Direction is the rounding side of a column.
type Direction int

const (
	// Down rounds toward floor.
	Down Direction = -1
	// Up rounds toward ceil.
	Up Direction = 1
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}

	return "down"
}

// Outcome classifies how a call ended.
type Outcome int

const (
	// OutcomeSkipped: disabled, gated off by trigger/phase, or guided without incumbent.
	OutcomeSkipped Outcome = iota
	// OutcomeImproved: a verified, strictly better solution was written to the buffer.
	OutcomeImproved
	// OutcomeNotBetter: an integral candidate was found but does not beat the incumbent.
	OutcomeNotBetter
	// OutcomeRejected: the candidate failed re-verification.
	OutcomeRejected
	// OutcomeAbandoned: backtracking ran out of options.
	OutcomeAbandoned
	// OutcomeBudget: iteration or time budget exhausted.
	OutcomeBudget
	// OutcomeCanceled: the context was done.
	OutcomeCanceled
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeImproved:
		return "improved"
	case OutcomeNotBetter:
		return "not-better"
	case OutcomeRejected:
		return "rejected"
	case OutcomeAbandoned:
		return "abandoned"
	case OutcomeBudget:
		return "budget"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Result reports one call of Solution.
type Result struct {
	Improved bool
	// Value is the candidate objective in minimization form. Set whenever a
	// full candidate was evaluated (OutcomeImproved, NotBetter, Rejected).
	Value   float64
	Outcome Outcome
	// Rounded is true when the dive ended by direct rounding.
	Rounded bool

	Iterations int
	Resolves   int
	Rollbacks  int
	Flips      int
	Pinned     int
}

// pin is a bound temporarily pinned during one pass.
type pin struct {
	col     int
	saved   float64 // bound overwritten by the pin
	atLower bool    // true ⇒ upper was lowered onto lower
}

// selection is the outcome of one scan over the integer columns.
type selection struct {
	col      int
	dir      Direction
	score    float64
	canRound bool
}

// diver holds the call-scoped state of one dive.
type diver struct {
	h   *Heuristic
	lp  relax.Oracle
	log *log.Logger

	intCols []int
	locks   Locks
	intTol  float64
	sense   float64
	obj     []float64
	guide   []float64

	x       []float64 // working solution
	pins    []pin     // pins of the current pass
	maxPins int
	start   time.Time

	res Result
}

// Solution runs one dive and, on success, writes the new solution into out
// and reports its objective (minimization form) in Result.Value.
//
// incumbent is the best known objective in minimization form (math.Inf(1)
// if none). Only a strictly smaller, verified value is accepted.
//
// Trigger decoding (Model.When against Model.Phase): 0 never runs; codes
// ending in 1 run only in phase 1; codes ending in 2 only in phases 2 and 3;
// any other nonzero code always runs.
//
// Errors are returned only for contract violations (nil receiver, short
// buffer, failed clone). All search outcomes are reported via Result.
func (h *Heuristic) Solution(ctx context.Context, incumbent float64, out []float64) (Result, error) {
	if h == nil {
		return Result{}, ErrNilHeuristic
	}
	if h.disabled != Enabled || !shouldRun(h.model.When(), h.model.Phase()) {
		return Result{Outcome: OutcomeSkipped}, nil
	}

	live := h.model.Solver()
	n := live.NumCols()
	if len(out) < n {
		return Result{}, diveErrorf("Solution", ErrShortBuffer)
	}

	var guide []float64
	if h.opts.Rule == RuleGuided {
		src, ok := h.model.(IncumbentSource)
		if ok {
			guide = src.BestSolution()
		}
		if len(guide) < n {
			h.opts.Logger.Debug("guided dive skipped: no incumbent solution")

			return Result{Outcome: OutcomeSkipped}, nil
		}
	}

	lp, err := live.Clone()
	if err != nil {
		return Result{}, diveErrorf("Solution", err)
	}
	defer lp.Release()

	d := &diver{
		h:       h,
		lp:      lp,
		log:     h.opts.Logger,
		intCols: h.intCols,
		locks:   h.locks,
		intTol:  h.model.IntegerTolerance(),
		sense:   lp.ObjSense().Factor(),
		obj:     lp.ObjCoefficients(),
		guide:   guide,
		x:       append(make([]float64, 0, n), lp.ColSolution()[:n]...),
		maxPins: int(math.Floor(h.opts.FixFraction * float64(len(h.intCols)))),
		start:   time.Now(),
	}
	d.pins = make([]pin, 0, d.maxPins)

	return d.run(ctx, incumbent, out), nil
}

// run is the outer loop; it returns the final Result.
func (d *diver) run(ctx context.Context, incumbent float64, out []float64) Result {
	d.log.Debug("dive start", "rule", d.h.opts.Rule, "integers", len(d.intCols), "maxPins", d.maxPins)

	for d.countFractional() > 0 {
		d.res.Iterations++

		sel := d.scan()
		if sel.canRound {
			d.roundDirect()
			d.res.Rounded = true

			break
		}
		if sel.col < 0 {
			d.res.Outcome = OutcomeAbandoned

			return d.res
		}
		if stop, ok := d.overBudget(ctx); ok {
			d.res.Outcome = stop
			d.log.Debug("dive stopped", "outcome", stop, "iterations", d.res.Iterations)

			return d.res
		}
		if !d.tightenAndResolve(sel) {
			d.res.Outcome = OutcomeAbandoned
			d.log.Debug("dive abandoned", "col", sel.col, "iterations", d.res.Iterations)

			return d.res
		}
		copy(d.x, d.lp.ColSolution())
	}

	return d.finish(incumbent, out)
}

// countFractional counts integer columns that are not integral in x.
func (d *diver) countFractional() int {
	var k int
	for _, col := range d.intCols {
		if isFractional(d.x[col], d.intTol) {
			k++
		}
	}

	return k
}

// scan performs one pass over the integer columns: candidate selection,
// roundability, and pinning of integral columns at their bounds.
func (d *diver) scan() selection {
	var (
		lower   = d.lp.ColLower()
		upper   = d.lp.ColUpper()
		sel     = selection{col: -1, score: math.MaxFloat64, canRound: true}
		penalty = d.h.opts.NonBinaryPenalty
	)
	d.pins = d.pins[:0]

	for i, col := range d.intCols {
		v := d.x[col]
		if isFractional(v, d.intTol) {
			if d.locks.Roundable(i) {
				continue
			}
			sel.canRound = false
			dir, score := d.pick(col, v)
			if !isBinary(lower[col], upper[col]) {
				score *= penalty
			}
			if score < sel.score {
				sel.col, sel.dir, sel.score = col, dir, score
			}

			continue
		}

		if len(d.pins) >= d.maxPins || lower[col] == upper[col] {
			continue
		}
		lo, up := lower[col], upper[col]
		switch {
		case math.Abs(lo-v) <= d.intTol:
			d.pins = append(d.pins, pin{col: col, saved: up, atLower: true})
			d.lp.SetColUpper(col, lo)
		case math.Abs(up-v) <= d.intTol:
			d.pins = append(d.pins, pin{col: col, saved: lo, atLower: false})
			d.lp.SetColLower(col, up)
		}
	}
	d.res.Pinned += len(d.pins)

	return sel
}

// pick returns the rounding direction and score of a blocked fractional column.
func (d *diver) pick(col int, v float64) (Direction, float64) {
	frac := v - math.Floor(v)
	if d.h.opts.Rule == RuleGuided {
		if v >= d.guide[col] {
			return Down, frac
		}

		return Up, 1 - frac
	}
	if frac < 0.5 {
		return Down, frac
	}

	return Up, 1 - frac
}

// roundDirect rounds every fractional column toward a side without a lock.
// With both sides free it follows the objective: floor when it does not
// worsen the (minimization-form) objective, ceil otherwise.
func (d *diver) roundDirect() {
	for i, col := range d.intCols {
		v := d.x[col]
		if !isFractional(v, d.intTol) {
			continue
		}
		switch {
		case d.locks.Down[i] == 0 && d.locks.Up[i] == 0:
			if d.sense*d.obj[col] >= 0 {
				d.x[col] = math.Floor(v)
			} else {
				d.x[col] = math.Ceil(v)
			}
		case d.locks.Down[i] == 0:
			d.x[col] = math.Floor(v)
		default:
			d.x[col] = math.Ceil(v)
		}
	}
}

// overBudget reports whether the iteration, time or context budget is spent.
func (d *diver) overBudget(ctx context.Context) (Outcome, bool) {
	if ctx.Err() != nil {
		return OutcomeCanceled, true
	}
	if d.res.Iterations > d.h.opts.MaxIterations {
		return OutcomeBudget, true
	}
	if d.h.opts.MaxTime > 0 && time.Since(d.start) > d.h.opts.MaxTime {
		return OutcomeBudget, true
	}

	return 0, false
}

// tightenAndResolve tightens sel.col toward sel.dir and resolves, walking the
// backtracking state machine. It reports whether the relaxation settled.
func (d *diver) tightenAndResolve(sel selection) bool {
	var (
		col   = sel.col
		v     = d.x[col]
		saved float64
		state = StateTentative
		step  Step
	)
	if sel.dir == Down {
		saved = d.lp.ColUpper()[col]
		d.lp.SetColUpper(col, math.Floor(v))
	} else {
		saved = d.lp.ColLower()[col]
		d.lp.SetColLower(col, math.Ceil(v))
	}

	for {
		d.lp.Resolve()
		d.res.Resolves++

		state, step = Advance(state, d.lp.IsProvenOptimal(), len(d.pins) > 0)
		switch step {
		case StepAccept:
			return true
		case StepUndoPins:
			d.undoPins()
		case StepFlip:
			d.flip(col, v, sel.dir, saved)
		default:
			return false
		}
	}
}

// undoPins restores every bound pinned in the current pass.
func (d *diver) undoPins() {
	for _, p := range d.pins {
		if p.atLower {
			d.lp.SetColUpper(p.col, p.saved)
		} else {
			d.lp.SetColLower(p.col, p.saved)
		}
	}
	d.log.Debug("dive pins rolled back", "count", len(d.pins))
	d.pins = d.pins[:0]
	d.res.Rollbacks++
}

// flip moves the tightening of col from dir to the opposite side.
// saved is the bound that the original tightening overwrote.
func (d *diver) flip(col int, v float64, dir Direction, saved float64) {
	if dir == Down {
		d.lp.SetColLower(col, math.Ceil(v))
		d.lp.SetColUpper(col, saved)
	} else {
		d.lp.SetColLower(col, saved)
		d.lp.SetColUpper(col, math.Floor(v))
	}
	d.log.Debug("dive direction flipped", "col", col, "from", dir)
	d.res.Flips++
}

// finish evaluates the candidate, verifies it and copies it out on success.
func (d *diver) finish(incumbent float64, out []float64) Result {
	value := d.lp.ObjOffset()
	for j, c := range d.obj {
		value += c * d.x[j]
	}
	value *= d.sense
	d.res.Value = value

	if !(value < incumbent) {
		d.res.Outcome = OutcomeNotBetter
		d.log.Debug("dive candidate not better", "value", value, "incumbent", incumbent)

		return d.res
	}

	verdict, err := Verify(d.h.matrix, d.lp.RowLower(), d.lp.RowUpper(), d.h.intSet,
		d.x, d.lp.PrimalTolerance(), d.intTol)
	if err != nil || !verdict.Feasible {
		d.res.Outcome = OutcomeRejected
		d.log.Debug("dive candidate rejected", "row", verdict.Row, "col", verdict.Column, "err", err)

		return d.res
	}

	copy(out, d.x)
	d.res.Improved = true
	d.res.Outcome = OutcomeImproved
	d.log.Debug("dive improved", "value", value, "resolves", d.res.Resolves)

	return d.res
}

// isBinary reports whether bounds lo, up both lie in {0,1}.
func isBinary(lo, up float64) bool {
	return (lo == 0 || lo == 1) && (up == 0 || up == 1)
}

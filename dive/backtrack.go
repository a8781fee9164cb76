// SPDX-License-Identifier: MIT
// Package dive - backtracking after a bound tightening.
//
// Every tightening of the selected column starts a small state machine that
// is advanced once per resolve:
//
//	            infeasible, pins held           infeasible
//	Tentative ─────────────────────────▶ RolledBack ───────────▶ DirectionFlipped
//	    │  infeasible, no pins held                                   │
//	    └──────────────────────────────────────────────────────────▶ │
//	                                                                  │ infeasible
//	  any non-terminal state ── feasible ──▶ Settled                  ▼
//	                                                              Abandoned
//
// Settled and Abandoned are terminal. Each state is entered at most once per
// tightening, so a tightening costs at most three resolves.

package dive

// State is a node of the backtracking state machine.
type State int

const (
	// StateTentative: the selected column has just been tightened.
	StateTentative State = iota
	// StateRolledBack: this pass's pins were undone after an infeasible resolve.
	StateRolledBack
	// StateDirectionFlipped: the tightening was moved to the opposite side.
	StateDirectionFlipped
	// StateAbandoned: nothing left to try; the dive stops. Terminal.
	StateAbandoned
	// StateSettled: the last resolve was optimal. Terminal.
	StateSettled
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateTentative:
		return "tentative"
	case StateRolledBack:
		return "rolled-back"
	case StateDirectionFlipped:
		return "direction-flipped"
	case StateAbandoned:
		return "abandoned"
	case StateSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s == StateAbandoned || s == StateSettled }

// Step is the action the controller performs after a transition.
type Step int

const (
	// StepAccept: keep the resolved relaxation and continue diving.
	StepAccept Step = iota
	// StepUndoPins: restore the bounds pinned in this pass, then resolve again.
	StepUndoPins
	// StepFlip: tighten the opposite side of the selected column, then resolve again.
	StepFlip
	// StepAbandon: stop the dive without a candidate.
	StepAbandon
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepAccept:
		return "accept"
	case StepUndoPins:
		return "undo-pins"
	case StepFlip:
		return "flip"
	default:
		return "abandon"
	}
}

// Advance returns the successor of s after a resolve with the given outcome.
// pinsHeld tells whether bounds pinned in the current pass are still applied.
// Terminal states map onto themselves.
func Advance(s State, feasible, pinsHeld bool) (State, Step) {
	switch s {
	case StateSettled:
		return StateSettled, StepAccept
	case StateAbandoned:
		return StateAbandoned, StepAbandon
	}
	if feasible {
		return StateSettled, StepAccept
	}
	switch {
	case pinsHeld && s == StateTentative:
		return StateRolledBack, StepUndoPins
	case s == StateTentative || s == StateRolledBack:
		return StateDirectionFlipped, StepFlip
	default:
		return StateAbandoned, StepAbandon
	}
}

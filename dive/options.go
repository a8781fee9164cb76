// SPDX-License-Identifier: MIT
// Package dive: functional configuration.
//
// Defaults are the customary diving policy constants; they are tunable but
// carry no further meaning:
//   - FixFraction      0.2   share of integer columns pinnable per pass
//   - MaxIterations    100   outer passes that may tighten and resolve
//   - MaxTime          60s   wall-clock budget per call (0 ⇒ unlimited)
//   - NonBinaryPenalty 1000  score multiplier for general-integer candidates
//
// WithX constructors panic on nonsensical values (programmer error).

package dive

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultFixFraction is the share of integer columns that may be pinned per pass.
	DefaultFixFraction = 0.2

	// DefaultMaxIterations bounds the number of tightening passes per call.
	DefaultMaxIterations = 100

	// DefaultMaxTime bounds the wall-clock time of one call.
	DefaultMaxTime = 60 * time.Second

	// DefaultNonBinaryPenalty biases selection toward 0/1 columns.
	DefaultNonBinaryPenalty = 1000.0
)

// Rule selects the rounding direction of a blocked fractional column.
type Rule int

const (
	// RuleFractional rounds toward the nearer integer (classic fractional diving).
	RuleFractional Rule = iota
	// RuleGuided rounds toward the incumbent's value of the column (guided diving).
	RuleGuided
)

// String implements fmt.Stringer.
func (r Rule) String() string {
	if r == RuleGuided {
		return "guided"
	}

	return "fractional"
}

// Options is the resolved configuration of a Heuristic.
type Options struct {
	FixFraction      float64
	MaxIterations    int
	MaxTime          time.Duration
	NonBinaryPenalty float64
	Rule             Rule
	Logger           *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		FixFraction:      DefaultFixFraction,
		MaxIterations:    DefaultMaxIterations,
		MaxTime:          DefaultMaxTime,
		NonBinaryPenalty: DefaultNonBinaryPenalty,
		Rule:             RuleFractional,
		Logger:           log.New(io.Discard),
	}
}

// WithFixFraction sets the per-pass share of pinnable integer columns.
// Panics unless 0 ≤ f ≤ 1.
func WithFixFraction(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic("dive: WithFixFraction: fraction must lie in [0,1]")
	}

	return func(o *Options) { o.FixFraction = f }
}

// WithMaxIterations bounds the tightening passes. 0 disables resolves entirely,
// leaving only direct rounding of the start point. Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("dive: WithMaxIterations: n must be non-negative")
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithMaxTime bounds the wall-clock time of one call; 0 means unlimited.
// Panics if d < 0.
func WithMaxTime(d time.Duration) Option {
	if d < 0 {
		panic("dive: WithMaxTime: duration must be non-negative")
	}

	return func(o *Options) { o.MaxTime = d }
}

// WithNonBinaryPenalty sets the score multiplier for non-0/1 columns.
// Panics unless p is finite and positive.
func WithNonBinaryPenalty(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		panic("dive: WithNonBinaryPenalty: penalty must be finite, positive")
	}

	return func(o *Options) { o.NonBinaryPenalty = p }
}

// WithRule selects the rounding rule.
func WithRule(r Rule) Option {
	if r != RuleFractional && r != RuleGuided {
		panic("dive: WithRule: unknown rule")
	}

	return func(o *Options) { o.Rule = r }
}

// WithLogger routes debug events to l. Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("dive: WithLogger: nil logger")
	}

	return func(o *Options) { o.Logger = l }
}

// Validate reports whether o satisfies the same constraints the WithX
// constructors enforce. Use it on configurations that did not come from WithX.
func (o Options) Validate() error {
	switch {
	case math.IsNaN(o.FixFraction) || o.FixFraction < 0 || o.FixFraction > 1:
		return diveErrorf("Options.Validate fix fraction", ErrBadOption)
	case o.MaxIterations < 0:
		return diveErrorf("Options.Validate max iterations", ErrBadOption)
	case o.MaxTime < 0:
		return diveErrorf("Options.Validate max time", ErrBadOption)
	case math.IsNaN(o.NonBinaryPenalty) || math.IsInf(o.NonBinaryPenalty, 0) || o.NonBinaryPenalty <= 0:
		return diveErrorf("Options.Validate penalty", ErrBadOption)
	case o.Rule != RuleFractional && o.Rule != RuleGuided:
		return diveErrorf("Options.Validate rule", ErrBadOption)
	}

	return nil
}

// WithOptions replaces the whole configuration, e.g. one loaded from a file.
// A nil Logger keeps the current one. Panics if src fails Validate.
func WithOptions(src Options) Option {
	if err := src.Validate(); err != nil {
		panic(err.Error())
	}

	return func(o *Options) {
		l := o.Logger
		*o = src
		if o.Logger == nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies opts over DefaultOptions in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

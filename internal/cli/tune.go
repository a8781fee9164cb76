package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/mipdive/dive"
)

// ErrUnknownTuningKey is returned when a tuning file sets a key the heuristic
// does not know, which is almost always a typo.
var ErrUnknownTuningKey = errors.New("cli: unknown tuning key")

// tuning mirrors the TOML tuning file. Absent keys keep the defaults.
//
//	fix_fraction       = 0.3
//	max_iterations     = 200
//	max_time           = "5s"
//	non_binary_penalty = 100.0
//	rule               = "guided"
type tuning struct {
	FixFraction      *float64 `toml:"fix_fraction"`
	MaxIterations    *int     `toml:"max_iterations"`
	MaxTime          string   `toml:"max_time"`
	NonBinaryPenalty *float64 `toml:"non_binary_penalty"`
	Rule             string   `toml:"rule"`
}

// loadTuning reads path and overlays it on dive.DefaultOptions.
// The result carries no logger; callers add their own.
func loadTuning(path string) (dive.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dive.Options{}, fmt.Errorf("read tuning file: %w", err)
	}

	return parseTuning(string(data))
}

// parseTuning decodes a tuning document and validates the outcome.
func parseTuning(doc string) (dive.Options, error) {
	var t tuning
	md, err := toml.Decode(doc, &t)
	if err != nil {
		return dive.Options{}, fmt.Errorf("parse tuning file: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return dive.Options{}, fmt.Errorf("%w: %s", ErrUnknownTuningKey, strings.Join(names, ", "))
	}

	opts := dive.DefaultOptions()
	opts.Logger = nil
	if t.FixFraction != nil {
		opts.FixFraction = *t.FixFraction
	}
	if t.MaxIterations != nil {
		opts.MaxIterations = *t.MaxIterations
	}
	if t.MaxTime != "" {
		d, err := time.ParseDuration(t.MaxTime)
		if err != nil {
			return dive.Options{}, fmt.Errorf("parse max_time: %w", err)
		}
		opts.MaxTime = d
	}
	if t.NonBinaryPenalty != nil {
		opts.NonBinaryPenalty = *t.NonBinaryPenalty
	}
	if t.Rule != "" {
		r, err := parseRule(t.Rule)
		if err != nil {
			return dive.Options{}, err
		}
		opts.Rule = r
	}
	if err := opts.Validate(); err != nil {
		return dive.Options{}, err
	}

	return opts, nil
}

// parseRule maps a rule name onto dive.Rule.
func parseRule(s string) (dive.Rule, error) {
	switch strings.ToLower(s) {
	case "fractional":
		return dive.RuleFractional, nil
	case "guided":
		return dive.RuleGuided, nil
	default:
		return 0, fmt.Errorf("unknown rule %q (want fractional or guided)", s)
	}
}

// SPDX-License-Identifier: MIT
// Package gen - functional options.
//
// Option constructors validate and panic on meaningless inputs; generators
// themselves never panic. Seeding follows one policy: seed 0 maps onto
// defaultSeed, any other value is used verbatim.

package gen

import "math/rand"

const (
	// defaultSeed is used when no seed (or seed 0) is given.
	defaultSeed int64 = 1

	// defaultMaxCost bounds drawn costs, values and weights (inclusive).
	defaultMaxCost = 100
)

// Option customizes a generator.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	rng     *rand.Rand
	maxCost int
}

// WithSeed makes the instance reproducible from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithMaxCost bounds every drawn coefficient to [1, limit]. Panics if limit < 1.
func WithMaxCost(limit int) Option {
	if limit < 1 {
		panic("gen: WithMaxCost(max<1)")
	}

	return func(c *config) { c.maxCost = limit }
}

// newConfig applies opts over the defaults (later options win).
func newConfig(opts ...Option) config {
	c := config{maxCost: defaultMaxCost}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// rngFromSeed returns a deterministic source; seed 0 selects defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// draw returns a uniform integer in [1, c.maxCost] as float64.
func (c *config) draw() float64 {
	return float64(1 + c.rng.Intn(c.maxCost))
}

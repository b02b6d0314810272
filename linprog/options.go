// SPDX-License-Identifier: MIT
// Package: opgen/linprog
//
// options.go — functional options for Generate: random-source injection
// only; every numeric knob lives in Params.

package linprog

import "math/rand"

type genConfig struct {
	rng *rand.Rand // nil → time-seeded source resolved in Generate
}

// Option customizes a single Generate call.
type Option func(*genConfig)

// WithSeed makes the call reproducible: a fixed seed yields a fixed Instance.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit source across generator calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("linprog: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

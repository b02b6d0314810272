// SPDX-License-Identifier: MIT
// Package: opgen/sampler
//
// options.go — functional options selecting the random source.
//
// Contract (strict):
//   • Options are functional (type Option func(*Sampler)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     draw methods themselves never panic.
//   • Determinism is explicit: seeding happens via WithSeed or WithRand.

package sampler

import "math/rand"

// Option customizes a Sampler before first use.
type Option func(*Sampler)

// WithSeed installs a fresh source seeded with the given value, making every
// subsequent draw sequence reproducible. Use this in tests and fixtures.
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit source, letting several components share one
// draw sequence. Panics on nil to surface the programmer error early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(s *Sampler) {
		s.rng = r
	}
}

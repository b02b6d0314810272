// SPDX-License-Identifier: MIT
// Package: opgen/transport
//
// options.go — functional options for Generate.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Empty prefixes mean "use defaults", not an error.

package transport

import "math/rand"

// Deterministic defaults (named, no magic literals).
const (
	defaultSupplierPrefix = "A"
	defaultConsumerPrefix = "B"
)

// genConfig aggregates all Generate knobs. Passed by value: immutable to
// callers once options are applied.
type genConfig struct {
	rng            *rand.Rand // nil → time-seeded source resolved in Generate
	supplierPrefix string
	consumerPrefix string
}

// Option customizes a single Generate call.
type Option func(*genConfig)

// WithSeed makes the call reproducible: a fixed seed yields a fixed Instance.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit source across several generator calls (the
// variant assembler threads one source through both task types).
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("transport: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithLabelPrefixes overrides the supplier/consumer label prefixes
// ("A"/"B" by default, yielding A1..An and B1..Bm). Empty strings fall
// back to the defaults.
func WithLabelPrefixes(supplier, consumer string) Option {
	return func(c *genConfig) {
		c.supplierPrefix, c.consumerPrefix = supplier, consumer
	}
}

// newGenConfig applies options in order (last wins) over strict defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		supplierPrefix: defaultSupplierPrefix,
		consumerPrefix: defaultConsumerPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.supplierPrefix == "" {
		cfg.supplierPrefix = defaultSupplierPrefix
	}
	if cfg.consumerPrefix == "" {
		cfg.consumerPrefix = defaultConsumerPrefix
	}
	return cfg
}

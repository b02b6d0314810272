// SPDX-License-Identifier: MIT
// Package: opgen/variants
//
// assembler.go — BuildSet, the variant batch assembler.
//
// Contract:
//   - count ≥ 0 (count == 0 → valid empty Set); count < 0 → ErrInvalidParameter.
//   - Fail-fast: the first generation error aborts the batch; no partial Set
//     is ever returned. Callers decide whether to retry or abort.
//   - One random source is threaded through both generators of every
//     variant in a fixed order (transport, then LP), so WithSeed makes the
//     whole Set reproducible.

package variants

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/sampler"
	"github.com/katalvlaran/opgen/transport"
)

const methodBuildSet = "BuildSet"

// Option customizes a single BuildSet call.
type Option func(*buildConfig)

type buildConfig struct {
	rng *rand.Rand // nil → time-seeded source resolved in BuildSet
}

// WithSeed makes the whole set reproducible for a fixed seed.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand threads an explicit shared source through every generator call.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("variants: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// BuildSet generates count variants, each holding one transportation task
// and one LP task, numbered 1..count.
func BuildSet(count int, tp transport.Params, lp linprog.Params, opts ...Option) (*Set, error) {
	if count < 0 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodBuildSet, count, ErrInvalidParameter)
	}

	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = sampler.New().Rand()
	}

	set := &Set{Variants: make([]Variant, 0, count), Count: count}
	for i := 1; i <= count; i++ {
		ti, err := transport.Generate(tp, transport.WithRand(rng))
		if err != nil {
			return nil, fmt.Errorf("%s: variant %d task %d: %w", methodBuildSet, i, TransportTaskNumber, err)
		}
		li, err := linprog.Generate(lp, linprog.WithRand(rng))
		if err != nil {
			return nil, fmt.Errorf("%s: variant %d task %d: %w", methodBuildSet, i, LPTaskNumber, err)
		}
		set.Variants = append(set.Variants, Variant{
			Number: i,
			Tasks: []Task{
				{Number: TransportTaskNumber, Transport: ti},
				{Number: LPTaskNumber, LP: li},
			},
		})
	}
	return set, nil
}

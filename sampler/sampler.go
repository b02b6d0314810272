// SPDX-License-Identifier: MIT
// Package: opgen/sampler
//
// sampler.go — the Sampler type and its bounded draw methods.
//
// Contract:
//   - All draws advance ONLY the wrapped source; no package-level state.
//   - UniformInt treats bounds as a closed interval [low, high].
//   - UniformFloat treats bounds as a half-open interval [low, high).
//   - low > high returns ErrInvalidRange (wrapped with the offending bounds);
//     low == high returns low without consuming randomness.
//
// Complexity: every method is O(1) time and space.

package sampler

import (
	"fmt"
	"math/rand"
	"time"
)

// Sampler draws bounded uniform values from a single injected source.
// Not safe for concurrent use; construct one per goroutine.
type Sampler struct {
	rng *rand.Rand
}

// New constructs a Sampler and applies options in order (last wins).
// Without options the source is time-seeded: convenient for CLI runs,
// useless for golden tests — those must pass WithSeed.
func New(opts ...Option) *Sampler {
	s := &Sampler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UniformInt returns an integer drawn uniformly from [low, high] inclusive.
// Returns ErrInvalidRange when low > high.
func (s *Sampler) UniformInt(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("UniformInt: low=%d > high=%d: %w", low, high, ErrInvalidRange)
	}
	if low == high {
		return low, nil
	}
	return low + s.rng.Intn(high-low+1), nil
}

// UniformFloat returns a real drawn uniformly from [low, high).
// Returns ErrInvalidRange when low > high.
func (s *Sampler) UniformFloat(low, high float64) (float64, error) {
	if low > high {
		return 0, fmt.Errorf("UniformFloat: low=%g > high=%g: %w", low, high, ErrInvalidRange)
	}
	if low == high {
		return low, nil
	}
	return low + s.rng.Float64()*(high-low), nil
}

// Rand exposes the wrapped source so sibling generators can share one draw
// sequence (variant assembly threads a single source through both tasks).
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

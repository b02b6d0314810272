// SPDX-License-Identifier: MIT

// Package sampler provides bounded uniform sampling with an injectable
// random source, shared by every opgen generator.
//
// The package offers one small surface:
//
//   - Sampler:       wraps a *rand.Rand; all draws advance only that source.
//   - New:           constructs a Sampler; options WithSeed / WithRand pick
//     the source, the default is time-seeded (non-reproducible).
//   - UniformInt:    inclusive integer draw from [low, high].
//   - UniformFloat:  half-open real draw from [low, high).
//
// Guarantees:
//
//   - Determinism: a Sampler built with WithSeed(s) replays the same draw
//     sequence on every run.
//   - No globals: nothing touches math/rand package-level state.
//   - Strict ranges: low > high is a programming/config error and always
//     surfaces as ErrInvalidRange, never a silent swap or clamp.
//
// Concurrency: a Sampler is NOT safe for concurrent use; give each
// goroutine its own instance (seeds may be derived from one parent draw).
package sampler

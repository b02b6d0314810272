// SPDX-License-Identifier: MIT
// Package: opgen/sampler
//
// errors.go — sentinel errors for the sampler package.
//
// Error policy (matches the rest of opgen):
//   • Only package-level sentinels are exposed.
//   • Callers branch with errors.Is(err, ErrX), never on message text.
//   • Implementations attach context via %w wrapping at the call site.

package sampler

import "errors"

// ErrInvalidRange indicates that a draw was requested over an empty range
// (low > high). This is a programming or configuration error: it is always
// surfaced to the caller and never retried.
// Usage: if errors.Is(err, sampler.ErrInvalidRange) { /* fix the bounds */ }.
var ErrInvalidRange = errors.New("sampler: invalid range")

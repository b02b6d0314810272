// SPDX-License-Identifier: MIT
// Package: opgen/transport
//
// errors.go — sentinel errors for the transport package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     call sites attach context with %w.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package transport

import "errors"

// ErrInvalidParameter indicates that a caller supplied out-of-range or
// inconsistent generation parameters (counts < 1, MinSupply > MaxSupply,
// negative costs, ...). Surfaced immediately, never retried.
// Usage: if errors.Is(err, transport.ErrInvalidParameter) { /* fix params */ }.
var ErrInvalidParameter = errors.New("transport: invalid parameter")

// ErrInfeasiblePartition indicates that a positive-integer demand partition
// cannot exist under the given ranges (the total is smaller than the number
// of parts). Generate retries with an internally widened supply minimum up
// to a fixed budget before surfacing this error.
// Usage: if errors.Is(err, transport.ErrInfeasiblePartition) { /* widen ranges */ }.
var ErrInfeasiblePartition = errors.New("transport: infeasible demand partition")

// ErrNeedRandSource indicates that a stochastic operation was invoked with a
// nil *rand.Rand. Supply one via the options or call BalancedPartition with
// an explicit source.
var ErrNeedRandSource = errors.New("transport: rng is required")

// ErrMalformedInstance indicates that a deserialized or hand-built Instance
// violates a structural invariant (unbalanced totals, missing cost cells,
// non-positive quantities). Returned by Instance.Validate.
var ErrMalformedInstance = errors.New("transport: malformed instance")

// SPDX-License-Identifier: MIT
// Package: opgen/linprog
//
// errors.go — sentinel errors for the linprog package.
//
// Same policy as the rest of opgen: bare sentinels, %w context at call
// sites, errors.Is for branching.

package linprog

import "errors"

// ErrInvalidParameter indicates out-of-range or inconsistent generation
// parameters (counts < 1, inverted objective range, degenerate coefficient
// bound). Surfaced immediately, never retried.
var ErrInvalidParameter = errors.New("linprog: invalid parameter")

// ErrMalformedInstance indicates a deserialized or hand-built Instance whose
// shape contradicts its declared counts, or whose witness fails a row.
// Returned by Instance.Validate.
var ErrMalformedInstance = errors.New("linprog: malformed instance")

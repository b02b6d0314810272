// SPDX-License-Identifier: MIT
// Package: opgen/variants
//
// errors.go — sentinel errors for the variants package.

package variants

import "errors"

// ErrInvalidParameter indicates a malformed build request (negative count).
var ErrInvalidParameter = errors.New("variants: invalid parameter")

// ErrMalformedSet indicates a deserialized or hand-built Set that violates
// the document shape: stale count, non-sequential variant numbers, a
// variant without exactly two tasks in (transport, lp) order, or a task
// whose instance fails its own validation. Returned by Set.Validate.
var ErrMalformedSet = errors.New("variants: malformed set")

// ErrUnknownTaskType indicates a serialized task whose "type" discriminator
// names neither of the two known instance kinds.
var ErrUnknownTaskType = errors.New("variants: unknown task type")

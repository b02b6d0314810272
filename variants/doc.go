// SPDX-License-Identifier: MIT

// Package variants assembles exercise variants: each variant pairs one
// transportation task with one linear-programming task in a fixed order.
//
// The package offers the following key components:
//
//   - Task:     a tagged union over the two instance kinds, serialized as
//     {"task_number", "task_data"} with a "type" discriminator inside the
//     data (transport_task / lp_problem).
//   - Variant:  exactly two Tasks — transport first, LP second — plus a
//     1-based variant_number.
//   - Set:      the ordered variant list plus its count.
//   - BuildSet: generates count variants, fail-fast — the first generation
//     error aborts the whole batch, because a partially filled set is not a
//     valid instance of the document shape.
//
// Determinism: BuildSet(WithSeed(s)) threads ONE random source through both
// generators of every variant in a fixed order, so a fixed seed reproduces
// the set byte-for-byte.
//
// Boundary: count == 0 is a valid request and yields an empty Set with
// Count == 0, not an error.
package variants

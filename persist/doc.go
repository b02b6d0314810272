// SPDX-License-Identifier: MIT

// Package persist writes and reads variant sets as indented JSON documents.
//
// The on-disk shape is the compatibility contract: the outer
// {"variants": [...], "count": N} wrapper, transport tasks with suppliers /
// consumers / costs / total_supply / total_demand, LP tasks with c / A / b /
// maximize / num_variables / num_constraints. Consumers must accept exactly
// these fields and tolerate additive future ones.
//
// ReadSet revalidates every invariant after decoding, so downstream
// rendering never defends against malformed shapes.
package persist

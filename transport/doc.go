// SPDX-License-Identifier: MIT

// Package transport generates closed (balanced) transportation problems:
// supplier capacities, consumer demands and a complete bipartite cost table,
// with total supply equal to total demand BY CONSTRUCTION.
//
// The package offers the following key components:
//
//   - Instance:   the generated problem — insertion-ordered supplier and
//     consumer ledgers, a supplier×consumer cost table, and the shared total.
//   - Ledger:     an insertion-ordered label→quantity mapping whose JSON
//     form is a plain object with keys in insertion order.
//   - CostTable:  an insertion-ordered supplier→(consumer→cost) table.
//   - Params:     generation knobs (counts and value ranges) with
//     DefaultParams() mirroring the classroom defaults (3×4, supply 10..100,
//     cost 1..20).
//   - Generate:   samples supplies, DERIVES demands from the supply total,
//     samples costs, and assembles a validated Instance.
//   - BalancedPartition: the named composition algorithm splitting a fixed
//     total into k positive parts that sum exactly to the total.
//
// Guarantees:
//
//   - Closed type: sum(supplies) == sum(demands) holds for every Instance —
//     demands are a partition of the supply total, never sampled on their own.
//   - Complete costs: every supplier row holds a cost for every consumer,
//     each within the configured [MinCost, MaxCost].
//   - Deterministic display order: labels are A1..An and B1..Bm (prefixes
//     configurable) and serialize in exactly that order.
//   - Determinism: a fixed seed reproduces the same Instance byte-for-byte.
//
// Errors are sentinels (ErrInvalidParameter, ErrInfeasiblePartition,
// ErrNeedRandSource, ErrMalformedInstance); branch with errors.Is.
package transport

// SPDX-License-Identifier: MIT
// Package: opgen/transport
//
// partition.go — BalancedPartition, the demand-derivation algorithm.
//
// Canonical model (composition of an integer):
//   - Splitting total into k positive parts that sum exactly to total is
//     equivalent to choosing k-1 DISTINCT cut points over [1, total-1] and
//     taking consecutive differences of the sorted cuts.
//   - Distinctness of cuts is what makes every part strictly positive.
//
// Contract:
//   - parts ≥ 1 (else ErrInvalidParameter).
//   - rng non-nil for parts ≥ 2 (else ErrNeedRandSource).
//   - total ≥ parts (else ErrInfeasiblePartition: k positive integers cannot
//     sum to less than k).
//   - Result has len == parts, every entry ≥ 1, entries sum exactly to total.
//
// Determinism:
//   - Fixed seed ⇒ fixed cuts ⇒ fixed partition. Cut sampling order is
//     stable; the sort is over distinct ints, so no tie ambiguity exists.
//
// Complexity:
//   - Sparse path: O(parts·log parts) expected. Dense fallback: O(total).

package transport

import (
	"fmt"
	"math/rand"
	"sort"
)

const (
	minPartitionParts = 1
	// cutAttemptFactor bounds rejection sampling of distinct cut points;
	// past the budget we fall back to a permutation draw, which cannot fail.
	cutAttemptFactor = 32
	// densePartitionRatio switches to the permutation draw outright when the
	// cut domain is not comfortably larger than the number of cuts.
	densePartitionRatio = 4
)

// BalancedPartition splits total into parts strictly positive integers that
// sum exactly to total, uniformly over compositions.
func BalancedPartition(rng *rand.Rand, total, parts int) ([]int, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if parts < minPartitionParts {
		return nil, fmt.Errorf("BalancedPartition: parts=%d < min=%d: %w",
			parts, minPartitionParts, ErrInvalidParameter)
	}
	if total < parts {
		return nil, fmt.Errorf("BalancedPartition: total=%d cannot cover %d positive parts: %w",
			total, parts, ErrInfeasiblePartition)
	}
	if parts == 1 {
		// Trivial composition; no randomness consumed.
		return []int{total}, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("BalancedPartition: %w", ErrNeedRandSource)
	}

	// 2) Draw parts-1 distinct cut points from the domain [1, total-1].
	cuts := drawDistinctCuts(rng, total-1, parts-1)

	// 3) Sort cuts ascending and take consecutive differences.
	sort.Ints(cuts)
	out := make([]int, parts)
	prev := 0
	for i, cut := range cuts {
		out[i] = cut - prev
		prev = cut
	}
	out[parts-1] = total - prev

	return out, nil
}

// drawDistinctCuts picks n distinct values from [1, domain]. A budgeted
// rejection loop handles the common sparse case without materializing the
// domain; the dense case (or an exhausted budget) uses a permutation draw.
func drawDistinctCuts(rng *rand.Rand, domain, n int) []int {
	if domain < densePartitionRatio*n {
		return permCuts(rng, domain, n)
	}

	seen := make(map[int]struct{}, n)
	cuts := make([]int, 0, n)
	for attempts := 0; attempts < cutAttemptFactor*n; attempts++ {
		cut := 1 + rng.Intn(domain)
		if _, dup := seen[cut]; dup {
			continue
		}
		seen[cut] = struct{}{}
		cuts = append(cuts, cut)
		if len(cuts) == n {
			return cuts
		}
	}
	// Budget exhausted (astronomically unlikely at this density); the
	// permutation draw always succeeds.
	return permCuts(rng, domain, n)
}

// permCuts takes the first n entries of a permutation of [1, domain].
func permCuts(rng *rand.Rand, domain, n int) []int {
	perm := rng.Perm(domain)
	cuts := make([]int, n)
	for i := 0; i < n; i++ {
		cuts[i] = perm[i] + 1
	}
	return cuts
}

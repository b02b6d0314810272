// Package transport contains unit tests for BalancedPartition: positivity,
// exact totals, boundary compositions and sentinel classification.
package transport

import (
	"errors"
	"math/rand"
	"testing"
)

// TestBalancedPartitionProperties verifies the composition invariants over a
// spread of totals and part counts.
func TestBalancedPartitionProperties(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		total int
		parts int
	}{
		{"trivial single part", 17, 1},
		{"tight total equals parts", 5, 5},
		{"typical classroom shape", 150, 4},
		{"many small parts", 64, 32},
		{"wide total few parts", 100_000, 3},
		{"dense domain", 9, 7},
	}

	rng := rand.New(rand.NewSource(11))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BalancedPartition(rng, tc.total, tc.parts)
			if err != nil {
				t.Fatalf("BalancedPartition(%d,%d): unexpected error %v", tc.total, tc.parts, err)
			}
			if len(got) != tc.parts {
				t.Fatalf("expected %d parts, got %d", tc.parts, len(got))
			}
			sum := 0
			for i, part := range got {
				if part < 1 {
					t.Errorf("part %d = %d, want ≥ 1", i, part)
				}
				sum += part
			}
			if sum != tc.total {
				t.Errorf("parts sum to %d, want %d", sum, tc.total)
			}
		})
	}
}

// TestBalancedPartitionErrors verifies sentinel classification.
func TestBalancedPartitionErrors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	// parts < 1 is a parameter error, not an infeasibility.
	if _, err := BalancedPartition(rng, 10, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("parts=0: expected ErrInvalidParameter, got %v", err)
	}
	// total < parts: k positive integers cannot sum below k.
	if _, err := BalancedPartition(rng, 3, 4); !errors.Is(err, ErrInfeasiblePartition) {
		t.Errorf("total<parts: expected ErrInfeasiblePartition, got %v", err)
	}
	// nil RNG only matters for stochastic compositions (parts ≥ 2).
	if _, err := BalancedPartition(nil, 10, 2); !errors.Is(err, ErrNeedRandSource) {
		t.Errorf("nil rng: expected ErrNeedRandSource, got %v", err)
	}
	if got, err := BalancedPartition(nil, 10, 1); err != nil || got[0] != 10 {
		t.Errorf("parts=1 without rng: expected ([10],nil), got (%v,%v)", got, err)
	}
}

// TestBalancedPartitionDeterminism verifies fixed-seed reproducibility.
func TestBalancedPartitionDeterminism(t *testing.T) {
	t.Parallel()

	a, err := BalancedPartition(rand.New(rand.NewSource(99)), 500, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BalancedPartition(rand.New(rand.NewSource(99)), 500, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("partition diverged at %d: %v vs %v", i, a, b)
		}
	}
}

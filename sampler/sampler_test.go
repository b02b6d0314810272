// Package sampler contains unit tests for the Sampler draw methods:
// range strictness, bound inclusivity, and seed reproducibility.
package sampler

import (
	"errors"
	"math/rand"
	"testing"
)

// TestUniformIntBounds verifies that every draw stays inside the closed
// interval and that degenerate ranges short-circuit.
func TestUniformIntBounds(t *testing.T) {
	t.Parallel()

	s := New(WithSeed(1))
	const low, high = -3, 7
	for i := 0; i < 1000; i++ {
		v, err := s.UniformInt(low, high)
		if err != nil {
			t.Fatalf("UniformInt(%d,%d): unexpected error %v", low, high, err)
		}
		if v < low || v > high {
			t.Fatalf("UniformInt(%d,%d): value %d out of range", low, high, v)
		}
	}

	// low == high must return low and not fail.
	if v, err := s.UniformInt(4, 4); err != nil || v != 4 {
		t.Errorf("UniformInt(4,4): expected (4,nil), got (%d,%v)", v, err)
	}
}

// TestUniformIntInvalidRange verifies the ErrInvalidRange sentinel.
func TestUniformIntInvalidRange(t *testing.T) {
	t.Parallel()

	s := New(WithSeed(1))
	if _, err := s.UniformInt(5, 2); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("UniformInt(5,2): expected ErrInvalidRange, got %v", err)
	}
	if _, err := s.UniformFloat(1.5, 0.5); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("UniformFloat(1.5,0.5): expected ErrInvalidRange, got %v", err)
	}
}

// TestUniformFloatBounds verifies the half-open interval contract.
func TestUniformFloatBounds(t *testing.T) {
	t.Parallel()

	s := New(WithSeed(2))
	const low, high = 0.25, 9.75
	for i := 0; i < 1000; i++ {
		v, err := s.UniformFloat(low, high)
		if err != nil {
			t.Fatalf("UniformFloat(%g,%g): unexpected error %v", low, high, err)
		}
		if v < low || v >= high {
			t.Fatalf("UniformFloat(%g,%g): value %g out of range", low, high, v)
		}
	}
}

// TestSeedReproducibility verifies that equal seeds replay equal sequences
// and that WithRand shares an explicit source.
func TestSeedReproducibility(t *testing.T) {
	t.Parallel()

	a := New(WithSeed(42))
	b := New(WithSeed(42))
	for i := 0; i < 100; i++ {
		va, _ := a.UniformInt(0, 1_000_000)
		vb, _ := b.UniformInt(0, 1_000_000)
		if va != vb {
			t.Fatalf("draw %d diverged: %d vs %d", i, va, vb)
		}
	}

	shared := rand.New(rand.NewSource(7))
	s := New(WithRand(shared))
	if s.Rand() != shared {
		t.Error("WithRand: expected the explicit source to be installed")
	}
}

// TestWithRandNilPanics verifies the fail-fast option contract.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil): expected panic")
		}
	}()
	WithRand(nil)
}

// SPDX-License-Identifier: MIT
// Package: opgen/linprog
//
// types.go — the Instance record, its JSON shape and invariant checks.

package linprog

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// TypeName is the tagged-union discriminator carried by serialized LP tasks.
const TypeName = "lp_problem"

// Instance is one generated linear program:
//
//	max (or min) c·x  subject to  A x ≤ b,  x ≥ 0.
//
// Instances are value records created in one Generate pass and never
// mutated. Witness is the construction-time feasible point; it is not part
// of the document contract and stays out of the JSON form.
type Instance struct {
	Type           string      `json:"type"`
	C              []float64   `json:"c"`
	A              [][]float64 `json:"A"`
	B              []float64   `json:"b"`
	Maximize       bool        `json:"maximize"`
	NumVariables   int         `json:"num_variables"`
	NumConstraints int         `json:"num_constraints"`

	Witness []float64 `json:"-"`
}

// UnmarshalJSON reads the document shape, rejecting foreign discriminators.
func (in *Instance) UnmarshalJSON(data []byte) error {
	type plain Instance
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Type != "" && p.Type != TypeName {
		return fmt.Errorf("linprog: unexpected type %q: %w", p.Type, ErrMalformedInstance)
	}
	*in = Instance(p)
	return nil
}

// SatisfiedBy reports whether x is feasible: x ≥ 0 and A_i·x ≤ b_i for all i.
func (in *Instance) SatisfiedBy(x []float64) bool {
	if len(x) != in.NumVariables {
		return false
	}
	for _, v := range x {
		if v < 0 {
			return false
		}
	}
	for i, row := range in.A {
		if i >= len(in.B) || len(row) != len(x) {
			return false
		}
		if floats.Dot(row, x) > in.B[i] {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants: declared counts match every
// slice length, all entries are finite, no row is all-zero, every variable
// is constrained by a strictly positive coefficient somewhere, and the
// retained witness (when present) satisfies every row.
func (in *Instance) Validate() error {
	if in.NumVariables < 1 || in.NumConstraints < 1 {
		return fmt.Errorf("declared shape %dx%d: %w", in.NumConstraints, in.NumVariables, ErrMalformedInstance)
	}
	if len(in.C) != in.NumVariables {
		return fmt.Errorf("len(c)=%d, want %d: %w", len(in.C), in.NumVariables, ErrMalformedInstance)
	}
	if len(in.A) != in.NumConstraints {
		return fmt.Errorf("len(A)=%d, want %d: %w", len(in.A), in.NumConstraints, ErrMalformedInstance)
	}
	if len(in.B) != in.NumConstraints {
		return fmt.Errorf("len(b)=%d, want %d: %w", len(in.B), in.NumConstraints, ErrMalformedInstance)
	}

	bounded := make([]bool, in.NumVariables)
	for i, row := range in.A {
		if len(row) != in.NumVariables {
			return fmt.Errorf("len(A[%d])=%d, want %d: %w", i, len(row), in.NumVariables, ErrMalformedInstance)
		}
		rowHasPositive := false
		for j, a := range row {
			if math.IsNaN(a) || math.IsInf(a, 0) || a < 0 {
				return fmt.Errorf("A[%d][%d]=%g: %w", i, j, a, ErrMalformedInstance)
			}
			if a > 0 {
				rowHasPositive = true
				bounded[j] = true
			}
		}
		if !rowHasPositive {
			return fmt.Errorf("row %d is all-zero: %w", i, ErrMalformedInstance)
		}
	}
	for j, ok := range bounded {
		if !ok {
			return fmt.Errorf("variable x%d unconstrained: %w", j+1, ErrMalformedInstance)
		}
	}
	for i, v := range in.B {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("b[%d]=%g: %w", i, v, ErrMalformedInstance)
		}
	}
	for j, v := range in.C {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("c[%d]=%g: %w", j, v, ErrMalformedInstance)
		}
	}
	if in.Witness != nil && !in.SatisfiedBy(in.Witness) {
		return fmt.Errorf("witness violates a constraint: %w", ErrMalformedInstance)
	}
	return nil
}

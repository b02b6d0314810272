// SPDX-License-Identifier: MIT
// Package: opgen/linprog
//
// generator.go — Generate, the bounded-and-feasible LP sampler.
//
// Contract:
//   - NumVariables ≥ 1, NumConstraints ≥ 1, ObjMin ≤ ObjMax, CoefMax ≥ 1,
//     SlackMax ≥ 0, WitnessMax ≥ 1 (else ErrInvalidParameter).
//   - The returned Instance always passes Validate(): exact shape, no
//     all-zero row, every column positively constrained, witness feasible.
//   - Boundedness and feasibility are STRUCTURAL (steps 2-3 below), not
//     verified by solving.
//
// Determinism:
//   - Stable draw order: c (j asc), A (row-major), column fixes (j asc),
//     row fixes (i asc), witness (j asc), slacks (i asc).

package linprog

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/opgen/sampler"
)

const (
	methodGenerate = "Generate"
	minShape       = 1
	// minPositiveCoef is the smallest value a forced-positive coefficient
	// may take; it keeps integer mode meaningful and float mode well away
	// from zero.
	minPositiveCoef = 1.0
	minSlack        = 0.0
	coefFloor       = 0.0
)

// Params carries the generation knobs for one LP instance.
type Params struct {
	NumVariables   int // decision variables, ≥ 1
	NumConstraints int // inequality rows, ≥ 1
	// IntegerCoefficients governs every numeric field: c, A, b and the
	// witness are all integral when set.
	IntegerCoefficients bool
	Maximize            bool // objective direction (configuration, not a coin flip)

	ObjMin     float64 // inclusive lower objective-coefficient bound
	ObjMax     float64 // upper objective-coefficient bound
	CoefMax    float64 // upper constraint-coefficient bound, ≥ 1 (rows are non-negative)
	SlackMax   float64 // upper per-row slack bound, ≥ 0
	WitnessMax float64 // upper witness-coordinate bound, ≥ 1
}

// DefaultParams mirrors the classroom defaults: 2 variables, 3 constraints,
// integer coefficients, maximization, objective in [-10,10].
func DefaultParams() Params {
	return Params{
		NumVariables:        2,
		NumConstraints:      3,
		IntegerCoefficients: true,
		Maximize:            true,
		ObjMin:              -10,
		ObjMax:              10,
		CoefMax:             10,
		SlackMax:            20,
		WitnessMax:          5,
	}
}

func (p Params) validate() error {
	switch {
	case p.NumVariables < minShape:
		return fmt.Errorf("%s: num variables %d < %d: %w",
			methodGenerate, p.NumVariables, minShape, ErrInvalidParameter)
	case p.NumConstraints < minShape:
		return fmt.Errorf("%s: num constraints %d < %d: %w",
			methodGenerate, p.NumConstraints, minShape, ErrInvalidParameter)
	case p.ObjMin > p.ObjMax:
		return fmt.Errorf("%s: objective range [%g,%g] inverted: %w",
			methodGenerate, p.ObjMin, p.ObjMax, ErrInvalidParameter)
	case p.CoefMax < minPositiveCoef:
		return fmt.Errorf("%s: coefficient bound %g < %g: %w",
			methodGenerate, p.CoefMax, minPositiveCoef, ErrInvalidParameter)
	case p.SlackMax < minSlack:
		return fmt.Errorf("%s: slack bound %g < %g: %w",
			methodGenerate, p.SlackMax, minSlack, ErrInvalidParameter)
	case p.WitnessMax < minPositiveCoef:
		return fmt.Errorf("%s: witness bound %g < %g: %w",
			methodGenerate, p.WitnessMax, minPositiveCoef, ErrInvalidParameter)
	}
	return nil
}

// Generate samples one linear program that is feasible and bounded by
// construction.
func Generate(p Params, opts ...Option) (*Instance, error) {
	// 1) Validate parameters early.
	if err := p.validate(); err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts...)
	smp := newCallSampler(cfg)
	d := draws{smp: smp, integer: p.IntegerCoefficients}
	n, m := p.NumVariables, p.NumConstraints

	// 2) Objective coefficients: signed uniform draws.
	c := make([]float64, n)
	for j := range c {
		v, err := d.value(p.ObjMin, p.ObjMax)
		if err != nil {
			return nil, fmt.Errorf("%s: c[%d]: %w", methodGenerate, j, err)
		}
		c[j] = v
	}

	// 3) Constraint matrix: non-negative entries in row-major order.
	a := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, err := d.value(coefFloor, p.CoefMax)
			if err != nil {
				return nil, fmt.Errorf("%s: A[%d][%d]: %w", methodGenerate, i, j, err)
			}
			a.Set(i, j, v)
		}
	}

	// 3a) Column guarantee: every variable gets at least one strictly
	//     positive coefficient, so x ≥ 0 plus these rows bound every
	//     coordinate direction.
	for j := 0; j < n; j++ {
		if columnHasPositive(a, m, j) {
			continue
		}
		i, err := smp.UniformInt(0, m-1)
		if err != nil {
			return nil, fmt.Errorf("%s: column fix %d: %w", methodGenerate, j, err)
		}
		v, err := d.value(minPositiveCoef, p.CoefMax)
		if err != nil {
			return nil, fmt.Errorf("%s: column fix %d: %w", methodGenerate, j, err)
		}
		a.Set(i, j, v)
	}

	// 3b) Row guarantee: an all-zero row admits any x and wastes the
	//     constraint; force one positive entry. Only adds positives, so the
	//     column guarantee is preserved.
	for i := 0; i < m; i++ {
		if rowHasPositive(a, n, i) {
			continue
		}
		j, err := smp.UniformInt(0, n-1)
		if err != nil {
			return nil, fmt.Errorf("%s: row fix %d: %w", methodGenerate, i, err)
		}
		v, err := d.value(minPositiveCoef, p.CoefMax)
		if err != nil {
			return nil, fmt.Errorf("%s: row fix %d: %w", methodGenerate, i, err)
		}
		a.Set(i, j, v)
	}

	// 4) Witness: a small strictly positive point.
	x := make([]float64, n)
	for j := range x {
		v, err := d.value(minPositiveCoef, p.WitnessMax)
		if err != nil {
			return nil, fmt.Errorf("%s: witness[%d]: %w", methodGenerate, j, err)
		}
		x[j] = v
	}
	xVec := mat.NewVecDense(n, x)

	// 5) Right-hand sides: b_i = A_i·x + slack_i keeps the witness feasible
	//    for every row, so the region is non-empty.
	b := make([]float64, m)
	for i := 0; i < m; i++ {
		slack, err := d.value(minSlack, p.SlackMax)
		if err != nil {
			return nil, fmt.Errorf("%s: slack[%d]: %w", methodGenerate, i, err)
		}
		b[i] = mat.Dot(a.RowView(i), xVec) + slack
	}

	// 6) Export rows as plain slices (the document contract shape).
	rows := make([][]float64, m)
	for i := 0; i < m; i++ {
		rows[i] = append([]float64(nil), a.RawRowView(i)...)
	}

	return &Instance{
		Type:           TypeName,
		C:              c,
		A:              rows,
		B:              b,
		Maximize:       p.Maximize,
		NumVariables:   n,
		NumConstraints: m,
		Witness:        x,
	}, nil
}

// draws dispatches a bounded uniform draw to the integer or real sampler.
type draws struct {
	smp     *sampler.Sampler
	integer bool
}

func (d draws) value(low, high float64) (float64, error) {
	if d.integer {
		v, err := d.smp.UniformInt(int(low), int(high))
		return float64(v), err
	}
	return d.smp.UniformFloat(low, high)
}

func columnHasPositive(a *mat.Dense, m, j int) bool {
	for i := 0; i < m; i++ {
		if a.At(i, j) > 0 {
			return true
		}
	}
	return false
}

func rowHasPositive(a *mat.Dense, n, i int) bool {
	for j := 0; j < n; j++ {
		if a.At(i, j) > 0 {
			return true
		}
	}
	return false
}

func newCallSampler(cfg genConfig) *sampler.Sampler {
	if cfg.rng != nil {
		return sampler.New(sampler.WithRand(cfg.rng))
	}
	return sampler.New()
}

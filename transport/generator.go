// SPDX-License-Identifier: MIT
// Package: opgen/transport
//
// generator.go — Generate, the balanced transportation problem sampler.
//
// Contract:
//   - Counts ≥ 1; 0 < MinSupply ≤ MaxSupply; 0 ≤ MinCost ≤ MaxCost
//     (else ErrInvalidParameter).
//   - Supplies are sampled independently in [MinSupply, MaxSupply]; demands
//     are DERIVED from the supply total via BalancedPartition, never sampled
//     on their own — the balance invariant holds by construction.
//   - When the supply total cannot cover one unit per consumer, the sampler
//     retries with an internally widened minimum up to maxGenerateAttempts,
//     then surfaces ErrInfeasiblePartition. The impossible configuration
//     (SupplierCount·MaxSupply < ConsumerCount) fails without sampling.
//   - Cost cells are independent uniform draws over [MinCost, MaxCost] in
//     stable supplier-major order.
//
// Determinism:
//   - Stable label order: A1..An, then B1..Bm.
//   - Stable draw order: supplies asc, demands (cut points), costs row-major.
//     Fixed seed/options ⇒ identical Instance.

package transport

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/opgen/sampler"
)

// File-local constants (stable method tag and domains).
const (
	methodGenerate      = "Generate"
	minCount            = 1
	minSupplyFloor      = 1
	minCostFloor        = 0
	maxGenerateAttempts = 8
)

// Params carries the generation knobs for one transportation instance.
type Params struct {
	SupplierCount int // number of suppliers, ≥ 1
	ConsumerCount int // number of consumers, ≥ 1
	MinSupply     int // inclusive lower supply bound, ≥ 1
	MaxSupply     int // inclusive upper supply bound, ≥ MinSupply
	MinCost       int // inclusive lower cost bound, ≥ 0
	MaxCost       int // inclusive upper cost bound, ≥ MinCost
}

// DefaultParams mirrors the classroom defaults: 3 suppliers, 4 consumers,
// supplies in [10,100], costs in [1,20].
func DefaultParams() Params {
	return Params{
		SupplierCount: 3,
		ConsumerCount: 4,
		MinSupply:     10,
		MaxSupply:     100,
		MinCost:       1,
		MaxCost:       20,
	}
}

// validate reports the first parameter violation, wrapped for errors.Is.
func (p Params) validate() error {
	switch {
	case p.SupplierCount < minCount:
		return fmt.Errorf("%s: supplier count %d < %d: %w",
			methodGenerate, p.SupplierCount, minCount, ErrInvalidParameter)
	case p.ConsumerCount < minCount:
		return fmt.Errorf("%s: consumer count %d < %d: %w",
			methodGenerate, p.ConsumerCount, minCount, ErrInvalidParameter)
	case p.MinSupply < minSupplyFloor:
		return fmt.Errorf("%s: min supply %d < %d: %w",
			methodGenerate, p.MinSupply, minSupplyFloor, ErrInvalidParameter)
	case p.MinSupply > p.MaxSupply:
		return fmt.Errorf("%s: supply range [%d,%d] inverted: %w",
			methodGenerate, p.MinSupply, p.MaxSupply, ErrInvalidParameter)
	case p.MinCost < minCostFloor:
		return fmt.Errorf("%s: min cost %d < %d: %w",
			methodGenerate, p.MinCost, minCostFloor, ErrInvalidParameter)
	case p.MinCost > p.MaxCost:
		return fmt.Errorf("%s: cost range [%d,%d] inverted: %w",
			methodGenerate, p.MinCost, p.MaxCost, ErrInvalidParameter)
	}
	return nil
}

// Generate samples one closed-type transportation instance.
func Generate(p Params, opts ...Option) (*Instance, error) {
	// 1) Validate parameters early.
	if err := p.validate(); err != nil {
		return nil, err
	}
	cfg := newGenConfig(opts...)
	smp := newCallSampler(cfg)

	// 2) Reject the impossible configuration without consuming randomness:
	//    even maximal supplies cannot give every consumer one unit.
	if p.SupplierCount*p.MaxSupply < p.ConsumerCount {
		return nil, fmt.Errorf("%s: max total supply %d < %d consumers: %w",
			methodGenerate, p.SupplierCount*p.MaxSupply, p.ConsumerCount, ErrInfeasiblePartition)
	}

	// 3) Sample supplies; widen the effective minimum on retry until the
	//    total can cover one unit per consumer.
	supplies, total, err := sampleSupplies(smp, p)
	if err != nil {
		return nil, err
	}

	// 4) Derive demands from the supply total (the balance invariant).
	demands, err := BalancedPartition(smp.Rand(), total, p.ConsumerCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	// 5) Assemble ledgers with 1-based labels in stable order.
	suppliers := NewLedger()
	for i, supply := range supplies {
		suppliers.Set(cfg.supplierPrefix+strconv.Itoa(i+1), supply)
	}
	consumers := NewLedger()
	for j, demand := range demands {
		consumers.Set(cfg.consumerPrefix+strconv.Itoa(j+1), demand)
	}

	// 6) Sample the complete cost table in supplier-major order.
	costs := NewCostTable()
	for _, supplier := range suppliers.Labels() {
		for _, consumer := range consumers.Labels() {
			cost, err := smp.UniformInt(p.MinCost, p.MaxCost)
			if err != nil {
				return nil, fmt.Errorf("%s: cost %s→%s: %w", methodGenerate, supplier, consumer, err)
			}
			costs.Set(supplier, consumer, cost)
		}
	}

	return &Instance{
		Suppliers:   suppliers,
		Consumers:   consumers,
		Costs:       costs,
		TotalSupply: total,
		TotalDemand: total,
	}, nil
}

// sampleSupplies draws SupplierCount values in [effMin, MaxSupply], raising
// effMin to ceil(ConsumerCount/SupplierCount) after a short total when
// possible. The caller's precheck guarantees the widened range is valid, so
// the budget is defensive, not load-bearing.
func sampleSupplies(smp *sampler.Sampler, p Params) ([]int, int, error) {
	effMin := p.MinSupply
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		supplies := make([]int, p.SupplierCount)
		total := 0
		for i := range supplies {
			v, err := smp.UniformInt(effMin, p.MaxSupply)
			if err != nil {
				return nil, 0, fmt.Errorf("%s: supply %d: %w", methodGenerate, i+1, err)
			}
			supplies[i] = v
			total += v
		}
		if total >= p.ConsumerCount {
			return supplies, total, nil
		}
		// Widen: force each supply to carry its share of one-unit demands.
		need := (p.ConsumerCount + p.SupplierCount - 1) / p.SupplierCount
		if need > effMin {
			effMin = need
		}
		if effMin > p.MaxSupply {
			effMin = p.MaxSupply
		}
	}
	return nil, 0, fmt.Errorf("%s: supply total below %d consumers after %d attempts: %w",
		methodGenerate, p.ConsumerCount, maxGenerateAttempts, ErrInfeasiblePartition)
}

// newCallSampler resolves the per-call sampler from the config RNG.
func newCallSampler(cfg genConfig) *sampler.Sampler {
	if cfg.rng != nil {
		return sampler.New(sampler.WithRand(cfg.rng))
	}
	return sampler.New()
}

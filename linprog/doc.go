// SPDX-License-Identifier: MIT

// Package linprog generates linear programs (objective, constraint matrix,
// right-hand side) that are guaranteed FEASIBLE and BOUNDED by construction
// — no solver runs, no post-hoc detection.
//
// The package offers the following key components:
//
//   - Instance:  c, A, b, the direction flag and the declared shape, plus a
//     non-serialized feasibility witness retained from construction.
//   - Params:    generation knobs with DefaultParams() (2 variables,
//     3 constraints, integer coefficients, maximization).
//   - Generate:  the three-step construction below.
//   - SatisfiedBy / Validate: the witness check and structural invariants.
//
// Construction (the structural guarantees):
//
//  1. Objective coefficients are signed uniform draws.
//  2. Constraint rows are non-negative, no row is all-zero, and every
//     VARIABLE carries a strictly positive coefficient in at least one row —
//     with x ≥ 0 this bounds the feasible region in every coordinate
//     direction, hence in the objective direction.
//  3. Each b_i is derived from a small positive witness point:
//     b_i = A_i·x_ref + slack_i with slack_i ≥ 0, so x_ref satisfies every
//     row and the region is provably non-empty.
//
// IntegerCoefficients governs ALL numeric fields (c, A, b and the witness);
// see DESIGN.md for the recorded decision.
//
// Determinism: a fixed seed reproduces the same Instance; the draw order
// (c, A row-major, column fixes, row fixes, witness, slacks) is stable.
package linprog

// Package opgen generates randomized, internally-consistent exercise
// variants for two classic operations-research problem types — and keeps
// every hard numeric invariant true by construction, never by rejection.
//
// 🚀 What is opgen?
//
//	A small, deterministic-by-seed generator toolkit that brings together:
//		• sampler/   — bounded uniform sampling with injectable seeds
//		• transport/ — closed (balanced) transportation problems: supplies,
//		  derived demands, complete cost tables
//		• linprog/   — linear programs guaranteed feasible AND bounded,
//		  with an explicit feasibility witness
//		• variants/  — N-variant assembly: one transport task + one LP task
//		  per variant, fail-fast on the first generation error
//		• persist/   — the JSON document contract (ordered ledgers included)
//		• render/    — plain-text problem statements
//		• document/  — per-variant PDF assembly
//		• cmd/opgen  — the command-line front end
//
// ✨ Why choose opgen?
//
//   - Invariants by construction – total supply equals total demand because
//     demands are a partition of the supply total; LP feasibility is carried
//     by a witness point, boundedness by constraint-matrix shape
//   - Reproducible – one seed, one byte-identical variant set
//   - No solving – opgen writes exercises, it never answers them
//
// Quick example:
//
//	set, err := variants.BuildSet(5,
//		transport.DefaultParams(),
//		linprog.DefaultParams(),
//		variants.WithSeed(42))
//
// Dive into the per-package doc.go files for contracts, sentinel errors
// and edge-case behavior.
//
//	go get github.com/katalvlaran/opgen
package opgen

// SPDX-License-Identifier: MIT
// Package problem carries the private least-squares data each simulated
// agent owns: a local coefficient matrix A_i and observation vector b_i.
// The shared unknown dimension (column count) is fixed across all nodes for
// a run; per-node row counts may vary.
//
// The package provides:
//
//   - Instance — the immutable collection of per-node data, with fail-fast
//     shape validation (performed once, before any round executes);
//   - Reference — the centralized stacked least-squares solution
//     (Σ A_iᵀA_i)·x = Σ A_iᵀb_i, used by the engine only to measure
//     per-round error, never fed back into the updates;
//   - RandomInstance — a seeded generator producing Gaussian features with
//     the first column pinned to 1 (intercept), observations
//     b_i = A_i·x* + noise, and the ground-truth x* for inspection.
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrNoNodes        – instance without any node data.
//	ErrNilData        – node with a nil coefficient matrix.
//	ErrRowMismatch    – len(b_i) differs from A_i's row count.
//	ErrColumnMismatch – a node's column count differs from the run's.
//	ErrTooFewColumns  – generator asked for cols < 1.
//	ErrBadRowRange    – generator row-count range empty or non-positive.
//	ErrNegativeNoise  – generator noise level below zero.
//	ErrNilRand        – generator called without an RNG.
package problem

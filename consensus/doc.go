// SPDX-License-Identifier: MIT
// Package consensus implements the synchronous round engine for distributed
// least-squares: N agents on a fixed undirected graph repeatedly solve a
// regularized local subproblem and exchange dual/auxiliary state with their
// neighbors until a round budget is exhausted or the run diverges.
//
// Every round executes, strictly in order:
//
//  1. primal phase — each node i solves
//     (A_iᵀA_i + ρ·deg(i)·I)·x_i = A_iᵀb_i + d_i
//     against a Cholesky factor cached before round 1 (the left-hand side
//     never changes); the dual input d_i comes from the previous round;
//  2. exchange phase — the active variant recomputes edge and node state
//     from the fresh primals;
//  3. monitor phase — the maximum per-node Euclidean distance to the
//     reference solution is appended to the error trace; a non-finite value
//     marks the run diverged, and the first value at or below the threshold
//     records the convergence round exactly once.
//
// Three interchangeable update rules drive the exchange phase:
//
//   - VariantRelaxed    — full digraph; every arc relaxes toward the
//     negated previous value of its reciprocal arc plus 2ρ times the fresh
//     primal of its head node; a node's dual input is the sum over its
//     outgoing arcs.
//   - VariantDifference — half digraph; each shared edge variable
//     accumulates w·(x_to − x_from), and a per-node dual λ with forgetting
//     factor γ folds in the penalty, a w*-weighted neighbor disagreement,
//     and the signed incident edge sums.
//   - VariantTracking   — no edge array; per-node (λ, θ, ξ) vectors and a
//     static curvature weight matrix W[i,j] = min(σ_i,σ_j)/(deg i + deg j),
//     σ being the smallest eigenvalue of the node's Gram matrix.
//
// Concurrency: the round is a two-phase barrier. Primal solves are mutually
// independent and run on Options.Workers goroutines writing disjoint slots;
// the exchange and monitor phases run on the caller's goroutine. Results
// are bit-identical for any worker count.
//
// Divergence is an outcome, not an error: Run returns the partial trace,
// the effective round count and the divergence round; callers choose how to
// treat it. Configuration and shape problems, in contrast, fail fast before
// any round executes.
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrNilGraph       – nil *topology.Graph.
//	ErrNilInstance    – nil *problem.Instance.
//	ErrNodeCount      – graph size and instance size disagree.
//	ErrBadReference   – reference vector of wrong length or non-finite.
//	ErrBadOptions     – option validation failed (wraps every violation).
//	ErrUnknownVariant – variant outside the three known update rules.
//	ErrSingularSystem – a node's regularized normal equations cannot be
//	                    factored (possible only with zero penalty weight).
//
// Example:
//
//	g, _ := topology.Path(4)
//	inst, _, _ := problem.RandomInstance(4, 3, 6, 10, 0.05, rng)
//	ref, _ := problem.Reference(inst)
//	opts := consensus.DefaultOptions()
//	opts.Variant = consensus.VariantDifference
//	res, err := consensus.Run(g, inst, ref, &opts)
package consensus

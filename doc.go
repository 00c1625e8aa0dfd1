// SPDX-License-Identifier: MIT
// Package distopt is a simulator for distributed least-squares consensus:
// agents on a fixed undirected graph each hold a private slice of a shared
// regression problem and cooperate, by exchanging state only with their
// neighbors in synchronous rounds, to reach the centralized solution.
//
// The module is split by concern:
//
//   - matrix    — dense kernels: Gram products, Cholesky factorization,
//     a symmetric Jacobi eigensolver and small vector helpers.
//   - topology  — the undirected Graph, the indexed directed Digraph
//     derived from it (half or full mode) and a seeded random generator.
//   - problem   — per-node data, the seeded instance generator and the
//     centralized reference solution used as the convergence yardstick.
//   - consensus — the round engine: three exchange rules (relaxed,
//     difference, tracking), the convergence monitor and the driver.
//
// The cmd/distopt command wires the pieces into a runnable simulation.
//
// Everything is deterministic under a fixed seed: graph sampling, data
// generation, iteration order and the parallel primal phase all reproduce
// bit-identical results.
package distopt

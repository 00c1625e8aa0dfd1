// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels used by the
// distributed least-squares simulator: a row-major Dense matrix over a flat
// float64 slice, Gram products (AᵀA + ridge·I, Aᵀv), matrix-vector
// multiplication, a Cholesky factorization with SPD solve, and a Jacobi
// eigensolver for symmetric matrices (smallest-eigenvalue extraction).
//
// Design rules, shared by every kernel in this package:
//   - Fail-fast validation: every public entry point validates shapes first
//     and returns a package sentinel (see errors.go); kernels never panic on
//     user input.
//   - Determinism: all loops run in a fixed order independent of the data,
//     so identical inputs produce bit-identical outputs across runs.
//   - No hidden aliasing: kernels allocate fresh outputs and never mutate
//     their operands, except where a method documents an explicit view
//     (Dense.Row).
//
// Complexity summary:
//
//	Gram      — O(r·c²) time, O(c²) space
//	MatVec    — O(r·c)  time, O(r) space
//	Cholesky  — O(c³)   factor, O(c²) per solve
//	MinEigSym — O(iter·c³) time, O(c²) space
package matrix

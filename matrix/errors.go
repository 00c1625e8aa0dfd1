// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with operation
// context via fmt.Errorf("...: %w", err)); tests and callers match them with
// errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or
	// columns not strictly positive).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Row) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MatVec where len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotSPD is returned by the Cholesky factorization when a
	// non-positive pivot is encountered, i.e. the input is not symmetric
	// positive-definite within floating-point arithmetic.
	ErrNotSPD = errors.New("matrix: matrix is not positive-definite")

	// ErrEigenFailed indicates that the Jacobi sweep did not reduce the
	// off-diagonal mass below tolerance within the iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are
	// required (ingestion via NewDenseFromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// SPDX-License-Identifier: MIT
// Package problem: sentinel error set.

package problem

import "errors"

var (
	// ErrNoNodes indicates an instance with an empty node list.
	ErrNoNodes = errors.New("problem: instance has no nodes")

	// ErrNilData indicates a node whose coefficient matrix is nil.
	ErrNilData = errors.New("problem: node data is nil")

	// ErrRowMismatch indicates a node whose observation vector length does
	// not equal its coefficient matrix row count.
	ErrRowMismatch = errors.New("problem: rows of A and length of b disagree")

	// ErrColumnMismatch indicates a node whose column count differs from
	// the shared unknown dimension of the run.
	ErrColumnMismatch = errors.New("problem: column count differs across nodes")

	// ErrTooFewColumns indicates a generator request with cols < 1.
	ErrTooFewColumns = errors.New("problem: need at least one column")

	// ErrBadRowRange indicates an empty or non-positive per-node row range.
	ErrBadRowRange = errors.New("problem: invalid row-count range")

	// ErrNegativeNoise indicates a negative observation noise level.
	ErrNegativeNoise = errors.New("problem: noise level must be non-negative")

	// ErrNilRand indicates a generator call without a random source.
	ErrNilRand = errors.New("problem: rand source is nil")
)

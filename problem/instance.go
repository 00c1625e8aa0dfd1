// SPDX-License-Identifier: MIT
// Package problem: instance types and validation.
// An Instance is immutable once handed to the engine; validation happens
// exactly once, before round 1, so the hot loop never re-checks shapes.

package problem

import (
	"fmt"

	"github.com/katalvlaran/distopt/matrix"
)

// NodeData is the private subproblem of one agent: minimize ‖A·x − b‖².
// A is r×c with r local observations over the shared c unknowns; b has
// length r. Both are owned exclusively by the node and never mutated.
type NodeData struct {
	A *matrix.Dense
	B []float64
}

// Instance bundles the per-node data of a run.
type Instance struct {
	Nodes []NodeData
}

// N returns the number of nodes. Complexity: O(1).
func (in *Instance) N() int { return len(in.Nodes) }

// Cols returns the shared unknown dimension, or 0 for an empty or
// nil-headed instance (Validate reports those as errors).
func (in *Instance) Cols() int {
	if len(in.Nodes) == 0 || in.Nodes[0].A == nil {
		return 0
	}

	return in.Nodes[0].A.Cols()
}

// Validate checks every node's shapes against the run's contract:
// at least one node, non-nil matrices, len(b_i) == rows(A_i), and a single
// column count across all nodes.
// Complexity: O(N).
func (in *Instance) Validate() error {
	if len(in.Nodes) == 0 {
		return fmt.Errorf("Instance.Validate: %w", ErrNoNodes)
	}

	cols := 0
	for i, nd := range in.Nodes {
		if nd.A == nil {
			return fmt.Errorf("Instance.Validate: node %d: %w", i, ErrNilData)
		}
		if len(nd.B) != nd.A.Rows() {
			return fmt.Errorf("Instance.Validate: node %d: rows=%d len(b)=%d: %w",
				i, nd.A.Rows(), len(nd.B), ErrRowMismatch)
		}
		if i == 0 {
			cols = nd.A.Cols()
			continue
		}
		if nd.A.Cols() != cols {
			return fmt.Errorf("Instance.Validate: node %d: cols=%d want %d: %w",
				i, nd.A.Cols(), cols, ErrColumnMismatch)
		}
	}

	return nil
}

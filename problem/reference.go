// SPDX-License-Identifier: MIT
// Package problem: centralized reference solution.
// Reference solves the global stacked least-squares problem through its
// normal equations: (Σ A_iᵀA_i)·x = Σ A_iᵀb_i. The engine consumes the
// returned vector purely as a yardstick for the per-round error trace.

package problem

import (
	"fmt"

	"github.com/katalvlaran/distopt/matrix"
)

// Reference computes the centralized least-squares solution over the union
// of all nodes' data.
// Stage 1 (Validate): full Instance.Validate.
// Stage 2 (Accumulate): sum per-node Gram matrices and projected
// observations in node order (deterministic accumulation).
// Stage 3 (Solve): Cholesky on the summed Gram matrix; a rank-deficient
// union surfaces as matrix.ErrNotSPD.
// Complexity: O(Σ r_i·c²) accumulation + O(c³) solve.
func Reference(in *Instance) ([]float64, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("Reference: %w", err)
	}

	cols := in.Cols()
	sum, err := matrix.NewDense(cols, cols)
	if err != nil {
		return nil, fmt.Errorf("Reference: %w", err)
	}
	rhs := make([]float64, cols)

	for i, nd := range in.Nodes {
		gram, err := matrix.Gram(nd.A, 0)
		if err != nil {
			return nil, fmt.Errorf("Reference: node %d: %w", i, err)
		}
		for r := 0; r < cols; r++ {
			srow, _ := sum.Row(r)
			grow, _ := gram.Row(r)
			if _, err = matrix.AxPy(srow, 1, grow); err != nil {
				return nil, fmt.Errorf("Reference: node %d: %w", i, err)
			}
		}

		proj, err := matrix.GramVec(nd.A, nd.B)
		if err != nil {
			return nil, fmt.Errorf("Reference: node %d: %w", i, err)
		}
		if _, err = matrix.AxPy(rhs, 1, proj); err != nil {
			return nil, fmt.Errorf("Reference: node %d: %w", i, err)
		}
	}

	chol, err := matrix.NewCholesky(sum)
	if err != nil {
		return nil, fmt.Errorf("Reference: stacked system: %w", err)
	}
	x, err := chol.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("Reference: %w", err)
	}

	return x, nil
}

// SPDX-License-Identifier: MIT
// Package problem: seeded random instance generator.
//
// Canonical model:
//   - per node, a row count drawn uniformly from [minRows, maxRows];
//   - features are standard Gaussians with the first column pinned to 1
//     (intercept term), so every node regresses against the same model;
//   - a single ground-truth vector x* is drawn once, and each node observes
//     b_i = A_i·x* + ε with ε ~ N(0, noise²).
//
// Generation order is fixed (x*, then nodes in id order, rows outer /
// columns inner), so a given (seed, shape) pair always reproduces the same
// instance.

package problem

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/distopt/matrix"
)

// interceptValue is written into the first feature column of every row.
const interceptValue = 1.0

// RandomInstance samples an n-node instance with the given shared column
// count and per-node row range, returning the instance together with the
// ground-truth coefficient vector x*.
// Complexity: O(Σ r_i·c) time and space.
func RandomInstance(n, cols, minRows, maxRows int, noise float64, rng *rand.Rand) (*Instance, []float64, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("RandomInstance: n=%d: %w", n, ErrNoNodes)
	}
	if cols < 1 {
		return nil, nil, fmt.Errorf("RandomInstance: cols=%d: %w", cols, ErrTooFewColumns)
	}
	if minRows < 1 || maxRows < minRows {
		return nil, nil, fmt.Errorf("RandomInstance: rows=[%d,%d]: %w", minRows, maxRows, ErrBadRowRange)
	}
	if noise < 0 {
		return nil, nil, fmt.Errorf("RandomInstance: noise=%v: %w", noise, ErrNegativeNoise)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("RandomInstance: %w", ErrNilRand)
	}

	// Ground truth first, so x* depends only on (seed, cols).
	truth := make([]float64, cols)
	for j := 0; j < cols; j++ {
		truth[j] = rng.NormFloat64()
	}

	inst := &Instance{Nodes: make([]NodeData, n)}
	var i, r, j, rows int
	for i = 0; i < n; i++ {
		rows = minRows + rng.Intn(maxRows-minRows+1)

		a, err := matrix.NewDense(rows, cols)
		if err != nil {
			return nil, nil, fmt.Errorf("RandomInstance: node %d: %w", i, err)
		}
		b := make([]float64, rows)
		for r = 0; r < rows; r++ {
			row, _ := a.Row(r)
			row[0] = interceptValue
			for j = 1; j < cols; j++ {
				row[j] = rng.NormFloat64()
			}
			// Observation under the shared model plus iid Gaussian noise.
			acc := 0.0
			for j = 0; j < cols; j++ {
				acc += row[j] * truth[j]
			}
			b[r] = acc + noise*rng.NormFloat64()
		}
		inst.Nodes[i] = NodeData{A: a, B: b}
	}

	return inst, truth, nil
}

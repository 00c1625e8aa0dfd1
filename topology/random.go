// SPDX-License-Identifier: MIT
// Package topology: seeded Erdős–Rényi-style graph sampling.
//
// Canonical model:
//   - include each unordered pair {u,v}, u<v, independently with
//     probability p;
//   - the trial order is fixed (u ascending, then v ascending), so a given
//     (n, p, seed) triple always produces the same graph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices);
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability);
//   - rng must be non-nil whenever 0 < p < 1 (else ErrNilRand); the
//     degenerate p ∈ {0, 1} cases are fully deterministic and accept nil.

package topology

import (
	"fmt"
	"math/rand"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// Random samples an undirected Erdős–Rényi-style graph over n vertices with
// independent edge probability p.
// Complexity: O(n²) Bernoulli trials, O(n + E) space.
func Random(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("Random: p=%v: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("Random: %w", ErrNilRand)
	}

	g, err := NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Random: %w", err)
	}
	if p == probMin {
		return g, nil // empty graph, no trials needed
	}

	var u, v int
	for u = 0; u < n; u++ { // stable outer loop: u ascending
		for v = u + 1; v < n; v++ { // inner loop: v ascending
			if p < probMax && rng.Float64() >= p {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Random: AddEdge(%d,%d): %w", u, v, err)
			}
		}
	}

	return g, nil
}

// Path returns the path graph 0—1—…—n-1; handy for tests and examples.
// Complexity: O(n).
func Path(n int) (*Graph, error) {
	g, err := NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for u := 0; u+1 < n; u++ {
		if err = g.AddEdge(u, u+1); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", u, u+1, err)
		}
	}

	return g, nil
}

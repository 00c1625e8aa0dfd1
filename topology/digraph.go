// SPDX-License-Identifier: MIT
// Package topology: derived directed message structure.
// Build turns the undirected Graph into an indexed arc list exactly once;
// the engine then addresses all per-arc state by the contiguous arc index,
// never by (from, to) hashing. In full mode the two orientations of an edge
// receive consecutive indices, but callers must rely only on Recip, not on
// adjacency of the pair.

package topology

import "fmt"

// Mode selects how many arcs an undirected edge contributes.
type Mode int

const (
	// ModeHalf emits one arc per edge, oriented min(u,v)→max(u,v).
	ModeHalf Mode = iota

	// ModeFull emits both orientations of every edge.
	ModeFull
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeHalf:
		return "half"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Arc is a directed message channel between two adjacent nodes.
type Arc struct {
	From, To int
}

// Digraph is the indexed directed structure built from a Graph.
// Arc indices are contiguous from 0 in edge-enumeration order; Out and In
// hold incident arc indices per node in that same order.
type Digraph struct {
	mode  Mode
	arcs  []Arc   // dense index → arc map
	out   [][]int // arc indices with From == node
	in    [][]int // arc indices with To == node
	recip []int   // full mode only: index of the reversed arc
}

// Build derives the directed arc structure for g in the given mode.
// Stage 1 (Validate): g non-nil, mode known; every stored edge is
// re-checked for range and self-loops so a malformed graph can never reach
// the engine.
// Stage 2 (Emit): walk edges in enumeration order; half mode emits
// min→max, full mode emits u→v then v→u with mutual reciprocal indices.
// Complexity: O(N + E) time and space (O(2E) arcs in full mode).
func Build(g *Graph, mode Mode) (*Digraph, error) {
	if g == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilGraph)
	}
	if mode != ModeHalf && mode != ModeFull {
		return nil, fmt.Errorf("Build: mode=%d: %w", int(mode), ErrUnknownMode)
	}

	n := g.N()
	d := &Digraph{
		mode: mode,
		out:  make([][]int, n),
		in:   make([][]int, n),
	}
	if mode == ModeFull {
		d.arcs = make([]Arc, 0, 2*g.M())
		d.recip = make([]int, 0, 2*g.M())
	} else {
		d.arcs = make([]Arc, 0, g.M())
	}

	var u, v, idx int
	for _, e := range g.edges {
		u, v = e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("Build: edge {%d,%d}: %w", u, v, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("Build: edge {%d,%d}: %w", u, v, ErrSelfLoop)
		}

		switch mode {
		case ModeHalf:
			if u > v {
				u, v = v, u // canonical low→high orientation
			}
			idx = len(d.arcs)
			d.arcs = append(d.arcs, Arc{From: u, To: v})
			d.out[u] = append(d.out[u], idx)
			d.in[v] = append(d.in[v], idx)

		case ModeFull:
			idx = len(d.arcs)
			d.arcs = append(d.arcs, Arc{From: u, To: v}, Arc{From: v, To: u})
			d.recip = append(d.recip, idx+1, idx)
			d.out[u] = append(d.out[u], idx)
			d.in[v] = append(d.in[v], idx)
			d.out[v] = append(d.out[v], idx+1)
			d.in[u] = append(d.in[u], idx+1)
		}
	}

	return d, nil
}

// Mode returns the derivation mode. Complexity: O(1).
func (d *Digraph) Mode() Mode { return d.mode }

// NumArcs returns the number of directed arcs. Complexity: O(1).
func (d *Digraph) NumArcs() int { return len(d.arcs) }

// Arc returns the arc at the given contiguous index.
func (d *Digraph) Arc(idx int) (Arc, error) {
	if idx < 0 || idx >= len(d.arcs) {
		return Arc{}, fmt.Errorf("Arc(%d): %w", idx, ErrArcNotFound)
	}

	return d.arcs[idx], nil
}

// Out returns the indices of arcs leaving node u, in emission order.
// The returned slice is a read-only view; callers must not mutate it.
func (d *Digraph) Out(u int) ([]int, error) {
	if u < 0 || u >= len(d.out) {
		return nil, fmt.Errorf("Out(%d): %w", u, ErrVertexOutOfRange)
	}

	return d.out[u], nil
}

// In returns the indices of arcs entering node u, in emission order.
// The returned slice is a read-only view; callers must not mutate it.
func (d *Digraph) In(u int) ([]int, error) {
	if u < 0 || u >= len(d.in) {
		return nil, fmt.Errorf("In(%d): %w", u, ErrVertexOutOfRange)
	}

	return d.in[u], nil
}

// Recip returns the index of the reversed arc in full mode.
// Half mode carries no reciprocal pairs and always errors.
func (d *Digraph) Recip(idx int) (int, error) {
	if d.mode != ModeFull {
		return 0, fmt.Errorf("Recip(%d): mode=%s: %w", idx, d.mode, ErrUnknownMode)
	}
	if idx < 0 || idx >= len(d.recip) {
		return 0, fmt.Errorf("Recip(%d): %w", idx, ErrArcNotFound)
	}

	return d.recip[idx], nil
}

// ArcIndex returns the contiguous index of the arc from→to.
// Complexity: O(degree(from)) scan of the Out list; the engine never calls
// this in the hot loop, it addresses arcs by index directly.
func (d *Digraph) ArcIndex(from, to int) (int, error) {
	if from < 0 || from >= len(d.out) {
		return 0, fmt.Errorf("ArcIndex(%d,%d): %w", from, to, ErrVertexOutOfRange)
	}
	for _, idx := range d.out[from] {
		if d.arcs[idx].To == to {
			return idx, nil
		}
	}

	return 0, fmt.Errorf("ArcIndex(%d,%d): %w", from, to, ErrArcNotFound)
}

// SPDX-License-Identifier: MIT
// Package topology: the undirected Graph type.
// Graph is append-only: edges are added before the run starts and never
// removed, so the derived Digraph and all per-arc state stay valid for the
// whole simulation.

package topology

import "fmt"

// Graph is a static undirected graph over node ids 0..N-1.
// Edge enumeration order is insertion order; that order also fixes arc
// indices in the derived Digraph.
type Graph struct {
	n     int                 // number of vertices
	edges [][2]int            // undirected edge list in insertion order
	adj   [][]int             // neighbor lists, insertion order per node
	seen  map[uint64]struct{} // normalized {min,max} keys for duplicate checks
}

// NewGraph creates an empty undirected graph over n vertices.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrTooFewVertices)
	}

	return &Graph{
		n:    n,
		adj:  make([][]int, n),
		seen: make(map[uint64]struct{}),
	}, nil
}

// edgeKey normalizes {u,v} into a single comparable key.
func (g *Graph) edgeKey(u, v int) uint64 {
	if u > v {
		u, v = v, u
	}

	return uint64(u)*uint64(g.n) + uint64(v)
}

// AddEdge inserts the undirected edge {u,v}.
// Stage 1 (Validate): endpoints in range, u != v, edge not already present.
// Stage 2 (Insert): append to the edge list and both adjacency lists.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	key := g.edgeKey(u, v)
	if _, dup := g.seen[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.seen[key] = struct{}{}
	g.edges = append(g.edges, [2]int{u, v})
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// N returns the number of vertices. Complexity: O(1).
func (g *Graph) N() int { return g.n }

// M returns the number of undirected edges. Complexity: O(1).
func (g *Graph) M() int { return len(g.edges) }

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degree returns the degree of vertex u.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.n {
		return 0, fmt.Errorf("Degree(%d): %w", u, ErrVertexOutOfRange)
	}

	return len(g.adj[u]), nil
}

// Degrees returns a copy of all vertex degrees, indexed by vertex id.
// Complexity: O(N).
func (g *Graph) Degrees() []int {
	deg := make([]int, g.n)
	for i := range g.adj {
		deg[i] = len(g.adj[i])
	}

	return deg
}

// Neighbors returns a copy of u's neighbor list in insertion order.
// Complexity: O(degree(u)).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrVertexOutOfRange)
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}
	_, ok := g.seen[g.edgeKey(u, v)]

	return ok
}

// SPDX-License-Identifier: MIT
// Package topology: sentinel error set.

package topology

import "errors"

var (
	// ErrTooFewVertices indicates a graph was requested with fewer than one vertex.
	ErrTooFewVertices = errors.New("topology: graph needs at least one vertex")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..N-1.
	ErrVertexOutOfRange = errors.New("topology: vertex id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide; the simulated
	// exchange rules have no meaning for self-messages.
	ErrSelfLoop = errors.New("topology: self-loop not allowed")

	// ErrDuplicateEdge indicates the undirected edge {u,v} is already present.
	ErrDuplicateEdge = errors.New("topology: duplicate edge")

	// ErrNilGraph indicates a nil *Graph argument.
	ErrNilGraph = errors.New("topology: graph is nil")

	// ErrUnknownMode indicates a Digraph mode other than ModeHalf or ModeFull.
	ErrUnknownMode = errors.New("topology: unknown digraph mode")

	// ErrArcNotFound indicates an ArcIndex lookup for an ordered pair that
	// carries no arc in the built digraph.
	ErrArcNotFound = errors.New("topology: arc not found")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("topology: probability must be in [0,1]")

	// ErrNilRand indicates that a random generator was required but nil.
	ErrNilRand = errors.New("topology: rand source is nil")
)

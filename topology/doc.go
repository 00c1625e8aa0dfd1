// SPDX-License-Identifier: MIT
// Package topology models the communication structure of the simulator:
// a static undirected Graph over integer node ids 0..N-1, and the directed
// message-passing Digraph derived from it once before the first round.
//
// Two derivation modes exist:
//
//   - ModeHalf — one arc per undirected edge, oriented min(u,v)→max(u,v).
//     Used when both endpoints share a single edge variable.
//   - ModeFull — two arcs per undirected edge, one per orientation, with a
//     reciprocal-index table pairing each arc with its reverse.
//     Used when each direction carries an independent edge variable.
//
// Arc indices are assigned in edge-enumeration order, contiguously from 0,
// and the (from, to) → index mapping is exact and injective; per-node Out/In
// lists give O(degree) access to incident arcs without hashing in the hot
// loop.
//
// The package also provides Random, a seeded Erdős–Rényi-style generator
// that samples each admissible pair {u,v}, u<v, independently with a fixed
// trial order, so a given seed always yields the same graph.
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrTooFewVertices     – graph requested with n < 1.
//	ErrVertexOutOfRange   – edge endpoint outside 0..N-1.
//	ErrSelfLoop           – edge with identical endpoints.
//	ErrDuplicateEdge      – edge {u,v} already present.
//	ErrNilGraph           – nil *Graph passed to Build.
//	ErrUnknownMode        – mode other than ModeHalf/ModeFull.
//	ErrArcNotFound        – ArcIndex lookup for a non-existent arc.
//	ErrInvalidProbability – Random called with p outside [0,1].
//	ErrNilRand            – Random needs an RNG for 0 < p < 1.
package topology

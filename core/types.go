// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeOrder indicates a negative vertex count was requested.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..N-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
//
// Graph methods always return edges in canonical form (From < To). Edges
// produced by traversal algorithms (e.g. the percolated tree) keep their
// discovery orientation From→To; use Canonical to compare them.
type Edge struct {
	// From is the vertex the edge was discovered from.
	From int

	// To is the other endpoint.
	To int
}

// Canonical returns e with endpoints ordered so that From <= To.
func (e Edge) Canonical() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// Graph is the immutable undirected simple graph over vertex IDs 0..N-1.
//
// adj[v] holds the sorted neighbor IDs of v; edges holds each edge once in
// canonical form, sorted by (From, To). Nothing mutates either slice after
// construction, so a *Graph is safe for any number of concurrent readers.
type Graph struct {
	adj   [][]int
	edges []Edge
}

// Builder accumulates vertices and edges for a Graph.
//
// A Builder is NOT safe for concurrent use; it is meant for generators that
// grow a topology step by step and then freeze it with Build.
type Builder struct {
	adj   []map[int]struct{}
	edges []Edge
}

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction and the read-only query surface.
// Policy:
//   - Validation happens once, in NewGraph; queries never fail on valid input.
//   - Returned slices from Degrees/Edges are copies; Neighbors is a shared view.

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds an immutable graph with n vertices (0..n-1) and the given edges.
//
// Edge orientation is irrelevant: {u,v} and {v,u} denote the same edge, so
// supplying both is rejected as a duplicate.
//
// Errors:
//   - ErrNegativeOrder if n < 0.
//   - ErrVertexNotFound if an endpoint lies outside 0..n-1.
//   - ErrLoopNotAllowed for u == v.
//   - ErrMultiEdgeNotAllowed for a repeated pair.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeOrder)
	}

	b := newBuilderWithOrder(n)
	for i, e := range edges {
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("NewGraph: edge #%d (%d,%d): %w", i, e.From, e.To, err)
		}
	}

	return b.Build(), nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex ID.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// HasEdge reports whether the undirected edge {u,v} exists.
// Out-of-range IDs simply report false.
// Complexity: O(log d) where d = min degree of the endpoints' lists searched.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	// search the shorter list
	if len(g.adj[u]) > len(g.adj[v]) {
		u, v = v, u
	}
	nb := g.adj[u]
	i := sort.SearchInts(nb, v)
	return i < len(nb) && nb[i] == v
}

// Neighbors returns the sorted neighbor IDs of v, or nil when v is not a vertex.
//
// The returned slice is a read-only view into the graph; callers must not
// modify its elements. Its capacity is clipped, so appending to it never
// touches graph storage.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	nb := g.adj[v]
	return nb[:len(nb):len(nb)]
}

// Degree returns the number of edges incident to v (0 for unknown vertices).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}
	return len(g.adj[v])
}

// Degrees returns a fresh slice holding Degree(v) for every v in 0..N-1.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	out := make([]int, len(g.adj))
	for v, nb := range g.adj {
		out[v] = len(nb)
	}
	return out
}

// Edges returns a copy of all edges in canonical form, sorted by (From, To).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Subgraph returns a new Graph on the same vertex set containing only the
// given edges, each of which must exist in g.
//
// This is how the percolated component set is exposed as a graph: same IDs,
// surviving edges only.
//
// Errors:
//   - ErrEdgeNotFound if an edge is absent from g.
//   - ErrMultiEdgeNotAllowed if an edge is listed twice.
//
// Complexity: O(V + E' log d).
func (g *Graph) Subgraph(edges []Edge) (*Graph, error) {
	b := newBuilderWithOrder(g.Order())
	for i, e := range edges {
		if !g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("Subgraph: edge #%d (%d,%d): %w", i, e.From, e.To, ErrEdgeNotFound)
		}
		if err := b.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("Subgraph: edge #%d (%d,%d): %w", i, e.From, e.To, err)
		}
	}

	return b.Build(), nil
}

// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func newBuilderWithOrder(n int) *Builder {
	b := &Builder{adj: make([]map[int]struct{}, 0, n)}
	b.AddVertices(n)
	return b
}

// AddVertex appends one vertex and returns its ID.
// Complexity: O(1) amortized.
func (b *Builder) AddVertex() int {
	b.adj = append(b.adj, make(map[int]struct{}))
	return len(b.adj) - 1
}

// AddVertices appends k vertices and returns the ID of the first one.
// For k <= 0 nothing is added and the returned ID equals Order().
// Complexity: O(k).
func (b *Builder) AddVertices(k int) int {
	first := len(b.adj)
	for i := 0; i < k; i++ {
		b.AddVertex()
	}
	return first
}

// Order returns the number of vertices added so far.
func (b *Builder) Order() int { return len(b.adj) }

// Size returns the number of edges added so far.
func (b *Builder) Size() int { return len(b.edges) }

// Degree returns the current degree of v (0 for unknown vertices).
func (b *Builder) Degree(v int) int {
	if v < 0 || v >= len(b.adj) {
		return 0
	}
	return len(b.adj[v])
}

// HasEdge reports whether {u,v} has already been added.
func (b *Builder) HasEdge(u, v int) bool {
	if u < 0 || u >= len(b.adj) || v < 0 || v >= len(b.adj) {
		return false
	}
	_, ok := b.adj[u][v]
	return ok
}

// AddEdge inserts the undirected edge {u,v}.
//
// Errors:
//   - ErrVertexNotFound if u or v has not been added.
//   - ErrLoopNotAllowed if u == v.
//   - ErrMultiEdgeNotAllowed if {u,v} already exists.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v int) error {
	n := len(b.adj)
	if u < 0 || u >= n {
		return fmt.Errorf("AddEdge: u=%d not in [0,%d): %w", u, n, ErrVertexNotFound)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("AddEdge: v=%d not in [0,%d): %w", v, n, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge: %d: %w", u, ErrLoopNotAllowed)
	}
	if _, dup := b.adj[u][v]; dup {
		return fmt.Errorf("AddEdge: {%d,%d}: %w", u, v, ErrMultiEdgeNotAllowed)
	}

	b.adj[u][v] = struct{}{}
	b.adj[v][u] = struct{}{}
	b.edges = append(b.edges, Edge{From: u, To: v}.Canonical())

	return nil
}

// Build freezes the accumulated topology into an immutable Graph.
// The Builder stays usable; later additions do not affect the returned Graph.
// Complexity: O(V + E log E).
func (b *Builder) Build() *Graph {
	g := &Graph{
		adj:   make([][]int, len(b.adj)),
		edges: make([]Edge, len(b.edges)),
	}

	for v, set := range b.adj {
		nb := make([]int, 0, len(set))
		for u := range set {
			nb = append(nb, u)
		}
		sort.Ints(nb)
		g.adj[v] = nb
	}

	copy(g.edges, b.edges)
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].From != g.edges[j].From {
			return g.edges[i].From < g.edges[j].From
		}
		return g.edges[i].To < g.edges[j].To
	})

	return g
}

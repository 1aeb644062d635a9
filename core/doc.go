// SPDX-License-Identifier: MIT

// Package core provides the immutable backbone graph that every stochastic
// process in rdsim reads but never mutates.
//
// The Graph G = (V,E) is undirected and simple:
//
//   - Vertex IDs are the dense integers 0..N-1.
//   - No self-loops, no parallel edges.
//   - Neighbor lists are sorted ascending and fixed after construction,
//     so Neighbors(v) and Degree(v) are O(1) lookups.
//
// Why immutable?
//
//	A single backbone is shared by many independent simulation trials, often
//	from several goroutines at once. Freezing the topology at construction time
//	removes every lock from the hot path: concurrent readers need no
//	synchronisation at all.
//
// Construction:
//
//	// Direct, from an edge list (validated)
//	g, err := core.NewGraph(5, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}})
//
//	// Incremental, for generators (single goroutine only)
//	b := core.NewBuilder()
//	first := b.AddVertices(3)
//	_ = b.AddEdge(first, first+1)
//	g := b.Build()
//
// Core Methods:
//
//	Order() int                          // O(1) number of vertices
//	Size() int                           // O(1) number of edges
//	HasVertex(v int) bool                // O(1)
//	HasEdge(u, v int) bool               // O(log d)
//	Neighbors(v int) []int               // O(1), read-only sorted view
//	Degree(v int) int                    // O(1)
//	Degrees() []int                      // O(V) copy
//	Edges() []Edge                       // O(E) copy, canonical From<To, sorted
//	Subgraph(edges []Edge) (*Graph, error) // O(V+E')
//	ConnectedComponents() [][]int        // O(V+E)
//	ComponentOf(seeds []int) []int       // O(V+E)
//
// Errors:
//
//	ErrNegativeOrder       – negative vertex count
//	ErrVertexNotFound      – endpoint or query vertex outside 0..N-1
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – duplicate edge
//	ErrEdgeNotFound        – Subgraph edge absent from the parent graph
package core

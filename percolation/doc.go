// SPDX-License-Identifier: MIT

// Package percolation simulates peer-referral survey spread over a backbone graph.
//
// What:
//
//	Percolate grows a randomized reachable subgraph from a set of seed vertices.
//	Each candidate edge is tested exactly once with a survival coin flip; a
//	surviving edge to an unvisited vertex recruits that vertex and exposes its
//	own edges. The result is the participant set plus the edges used to reach it.
//
// Algorithm (Prim-style expansion, not shortest path):
//
//  1. visited = seeds; push every seed-incident edge into a min-heap of
//     (priority, from, to).
//  2. Pop the minimum entry, draw u ~ U[0,1).
//     - u >= p             → edge washes out.
//     - to already visited → no-op.
//     - otherwise          → visit to, record (from,to), push to's edges
//     towards unvisited neighbours.
//  3. Stop when the frontier is empty or every vertex is visited.
//
// The coin is flipped before the visited check, so every popped edge consumes
// exactly one draw. This fixes how the RNG stream maps to outcomes.
//
// Priorities:
//
//	Priority carries no meaning for unweighted percolation; it only imposes a
//	fixed exploration order. The default is a constant 1.0, which makes the
//	heap order lexicographic on (from, to). WithPriority installs any other
//	deterministic key; ties are still broken by (from, to).
//
// Multiple seeds:
//
//	All seeds share one frontier and one visited set. A vertex reachable from
//	two seeds is recruited once, by whichever seed's chain reaches it first.
//
// Edge cases:
//
//	p = 0  → Participants == Seeds.
//	p = 1  → Participants == union of the seeds' connected components.
//	A seed with no edges contributes only itself.
//
// Errors:
//
//	ErrGraphNil, ErrInvalidProbability, ErrNoSeeds, ErrSeedNotFound, ErrNilRand
//	are precondition violations, rejected before any draw. ErrBudgetExhausted
//	is returned when a WithMaxSteps budget runs out; context errors are
//	returned as-is when WithContext is cancelled.
//
// Complexity:
//
//	Time O(E log E), memory O(V + E): each edge enters the heap at most twice.
//
// Concurrency:
//
//	Percolate is safe to call concurrently on the same *core.Graph as long as
//	each call owns its *rand.Rand.
package percolation

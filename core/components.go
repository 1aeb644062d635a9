// SPDX-License-Identifier: MIT

package core

import "sort"

// ConnectedComponents labels every vertex with its connected component.
// Returns the components ordered by their smallest vertex; each component
// lists its vertices in ascending order. Isolated vertices form singleton
// components.
//
// Time:   O(V + E).
// Memory: O(V) for the seen flags and BFS queue.
func (g *Graph) ConnectedComponents() [][]int {
	n := g.Order()
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		comp := g.collect(s, seen)
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}

// ComponentOf returns the sorted union of the connected components containing
// the given seeds. Seeds outside 0..N-1 are ignored.
//
// Time: O(V + E) in the worst case.
func (g *Graph) ComponentOf(seeds []int) []int {
	seen := make([]bool, g.Order())
	var out []int
	for _, s := range seeds {
		if !g.HasVertex(s) || seen[s] {
			continue
		}
		out = append(out, g.collect(s, seen)...)
	}
	sort.Ints(out)
	return out
}

// collect runs a BFS from s over unseen vertices, marking them in seen.
func (g *Graph) collect(s int, seen []bool) []int {
	queue := []int{s}
	seen[s] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.adj[queue[qi]] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

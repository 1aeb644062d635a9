// SPDX-License-Identifier: MIT

package percolation

import "container/heap"

// candidate is one frontier entry awaiting its survival coin flip.
type candidate struct {
	priority float64
	from, to int
}

// frontier implements heap.Interface as a min-heap of candidates ordered by
// (priority, from, to).
type frontier []candidate

// Len returns the number of pending candidates.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then from, then to.
func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.from != b.from {
		return a.from < b.from
	}
	return a.to < b.to
}

// Swap exchanges two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a candidate. Called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(candidate)) }

// Pop removes the last element. Called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	c := old[n-1]
	*f = old[:n-1]
	return c
}

// push adds the edge from→to with its priority.
func (f *frontier) push(prio PriorityFunc, from, to int) {
	heap.Push(f, candidate{priority: prio(from, to), from: from, to: to})
}

// pop removes the minimum candidate.
func (f *frontier) pop() candidate {
	return heap.Pop(f).(candidate)
}

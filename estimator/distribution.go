// SPDX-License-Identifier: MIT

package estimator

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Distribution maps a category to its estimated proportion.
type Distribution map[string]float64

// Categories returns the keys of d, sorted.
func (d Distribution) Categories() []string {
	out := make([]string, 0, len(d))
	for c := range d {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Get returns the proportion for c, or 0 when c is absent.
func (d Distribution) Get(c string) float64 { return d[c] }

// Sum returns the total mass, accumulated in sorted category order.
func (d Distribution) Sum() float64 {
	return floats.Sum(d.Vector(d.Categories()))
}

// Vector returns the proportions for categories in the given order; missing
// categories read as 0.
func (d Distribution) Vector(categories []string) []float64 {
	out := make([]float64, len(categories))
	for i, c := range categories {
		out[i] = d[c]
	}
	return out
}

// union returns the sorted union of category keys across ds.
func union(ds ...Distribution) []string {
	seen := make(map[string]struct{})
	for _, d := range ds {
		for c := range d {
			seen[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SPDX-License-Identifier: MIT

package percolation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/rdsim/core"
)

const methodPercolate = "Percolate"

func constantPriority(int, int) float64 { return DefaultPriority }

// Percolate runs one percolation from seeds over g with edge survival
// probability p, drawing every coin flip from r.
//
// Steps:
//  1. Validate g, p, r and seeds; collapse duplicate seeds.
//  2. Mark seeds visited, push all seed-incident edges.
//  3. Pop, flip, recruit, expand until the frontier drains or all
//     vertices are visited.
//  4. Return sorted participants and the recruiting edges.
//
// The same (g, seeds, p, r-state, options) always produce the same Result.
// Complexity: O(E log E) time, O(V + E) memory.
func Percolate(g *core.Graph, seeds []int, p float64, r *rand.Rand, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodPercolate, ErrGraphNil)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%v: %w", methodPercolate, p, ErrInvalidProbability)
	}
	if r == nil {
		return nil, fmt.Errorf("%s: %w", methodPercolate, ErrNilRand)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%s: %w", methodPercolate, ErrNoSeeds)
	}
	for _, s := range seeds {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%s: seed %d (order %d): %w", methodPercolate, s, g.Order(), ErrSeedNotFound)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	prio := o.Priority
	if prio == nil {
		prio = constantPriority
	}

	n := g.Order()
	visited := make([]bool, n)
	count := 0
	distinct := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if visited[s] {
			continue
		}
		visited[s] = true
		count++
		distinct = append(distinct, s)
	}

	fr := &frontier{}
	for _, s := range distinct {
		for _, nb := range g.Neighbors(s) {
			fr.push(prio, s, nb)
		}
	}

	res := &Result{g: g}
	for count < n && fr.Len() > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPercolate, err)
		}
		if o.MaxSteps > 0 && res.Steps >= o.MaxSteps {
			return nil, fmt.Errorf("%s: after %d steps: %w", methodPercolate, res.Steps, ErrBudgetExhausted)
		}

		c := fr.pop()
		res.Steps++
		// survive iff u < p: exact for p=0 and p=1 since u ∈ [0,1)
		if r.Float64() >= p {
			continue
		}
		if visited[c.to] {
			continue
		}

		visited[c.to] = true
		count++
		res.Edges = append(res.Edges, core.Edge{From: c.from, To: c.to})
		if o.OnVisit != nil {
			o.OnVisit(c.from, c.to)
		}
		for _, nb := range g.Neighbors(c.to) {
			if !visited[nb] {
				fr.push(prio, c.to, nb)
			}
		}
	}

	res.Participants = make([]int, 0, count)
	for v, ok := range visited {
		if ok {
			res.Participants = append(res.Participants, v)
		}
	}
	sort.Ints(distinct)
	res.Seeds = distinct

	return res, nil
}

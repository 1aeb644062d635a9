// SPDX-License-Identifier: MIT

// Package degree provides degree statistics used to reason about
// friendship-paradox sampling bias: distributions, CCDFs, degree-biased
// sampling and first/second moment summaries.
package degree

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/rdsim/core"
)

// Sentinel errors for degree statistics.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("degree: graph is nil")

	// ErrEmptySequence indicates a CCDF over zero values.
	ErrEmptySequence = errors.New("degree: empty sequence")

	// ErrNegativeValue indicates a negative entry in a degree sequence.
	ErrNegativeValue = errors.New("degree: negative value")

	// ErrNoEdges indicates degree-biased sampling over an edgeless graph.
	ErrNoEdges = errors.New("degree: graph has no edges")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("degree: nil random source")
)

// Point is one CCDF sample: P is the fraction of values strictly above X.
type Point struct {
	X int
	P float64
}

// Distribution returns p_k, the fraction of vertices with degree k, for
// k = 0..maxDegree. An empty graph yields an empty slice.
// Complexity: O(V).
func Distribution(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if n == 0 {
		return []float64{}, nil
	}

	deg := g.Degrees()
	p := make([]float64, slices.Max(deg)+1)
	for _, d := range deg {
		p[d]++
	}
	floats.Scale(1/float64(n), p)
	return p, nil
}

// CCDFFromDistribution returns c[k] = P(X > k) = 1 - Σ_{j≤k} p[j].
// Values are clamped at 0 against rounding.
func CCDFFromDistribution(p []float64) []float64 {
	c := make([]float64, len(p))
	floats.CumSum(c, p)
	for i := range c {
		c[i] = max(0, 1-c[i])
	}
	return c
}

// CCDF evaluates P(X > x) on x = 0 and on every distinct value of seq,
// ascending. The curve is strictly decreasing and ends at 0.
//
// Errors: ErrEmptySequence, ErrNegativeValue.
// Complexity: O(n log n).
func CCDF(seq []int) ([]Point, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	sorted := make([]int, len(seq))
	copy(sorted, seq)
	sort.Ints(sorted)
	if sorted[0] < 0 {
		return nil, fmt.Errorf("CCDF: value %d: %w", sorted[0], ErrNegativeValue)
	}

	n := float64(len(sorted))
	var out []Point
	if sorted[0] > 0 {
		out = append(out, Point{X: 0, P: 1})
	}
	for i := 0; i < len(sorted); {
		x := sorted[i]
		j := i
		for j < len(sorted) && sorted[j] == x {
			j++
		}
		out = append(out, Point{X: x, P: float64(len(sorted)-j) / n})
		i = j
	}
	return out, nil
}

// BiasedSample draws n vertices with replacement, each with probability
// degree(v)/2E: the endpoint distribution of a uniformly random edge.
// Isolated vertices are never drawn.
//
// Errors: ErrGraphNil, ErrNilRand, ErrNoEdges.
// Complexity: O(V + n log V).
func BiasedSample(g *core.Graph, n int, r *rand.Rand) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if r == nil {
		return nil, ErrNilRand
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("BiasedSample: %w", ErrNoEdges)
	}

	w := toFloat(g.Degrees())
	sampler := sampleuv.NewWeighted(w, r)

	out := make([]int, 0, max(n, 0))
	for len(out) < n {
		v, ok := sampler.Take()
		if !ok {
			return nil, fmt.Errorf("BiasedSample: %w", ErrNoEdges)
		}
		// put the weight back: sampling is with replacement
		sampler.Reweight(v, w[v])
		out = append(out, v)
	}
	return out, nil
}

// MeanDegree returns the average vertex degree, 0 for an empty graph.
func MeanDegree(g *core.Graph) float64 {
	if g == nil || g.Order() == 0 {
		return 0
	}
	return stat.Mean(toFloat(g.Degrees()), nil)
}

// MeanNeighborDegree returns the expected degree of a random edge endpoint,
// <k²>/<k>. By the friendship paradox it is never below MeanDegree.
// Returns 0 for an edgeless graph.
func MeanNeighborDegree(g *core.Graph) float64 {
	if g == nil || g.Size() == 0 {
		return 0
	}
	deg := toFloat(g.Degrees())
	return stat.Mean(deg, deg)
}

func toFloat(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

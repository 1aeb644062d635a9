// SPDX-License-Identifier: MIT

// Package preference assigns one category to every vertex of a graph.
//
// Model reproduces a degree-biased platform preference: hubs lean strongly
// toward "popular" categories, low-degree vertices choose almost uniformly.
// This correlation between degree and category is what makes a
// peer-referral survey biased.
//
// For each run:
//
//	order    = shuffle(Categories)
//	bias_j   = U_j^BiasExponent / max_k U_k^BiasExponent
//	logit_vj = (deg(v)/maxDeg) · bias_j / Alpha
//	cat(v)   = order[argmax_j(logit_vj + G_vj)],  G ~ Gumbel(0,1)
//
// The Gumbel-max draw is equivalent to sampling from softmax(logit_v·).
package preference

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/rdsim/core"
)

// Sentinel errors for category assignment.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("preference: graph is nil")

	// ErrNilRand indicates a missing random source for a stochastic assigner.
	ErrNilRand = errors.New("preference: nil random source")

	// ErrInvalidModel indicates unusable model parameters.
	ErrInvalidModel = errors.New("preference: invalid model")
)

// Assigner produces a fixed vertex → category mapping for one run.
// The returned slice has length g.Order().
type Assigner interface {
	Assign(g *core.Graph, r *rand.Rand) ([]string, error)
}

// DefaultCategories are the social platforms of the classroom RDS exercise.
var DefaultCategories = []string{"Facebook", "Instagram", "LinkedIn", "TikTok", "X", "YouTube"}

// Model is the degree-biased softmax preference model.
type Model struct {
	// Categories to choose from; at least one, no blanks or duplicates.
	Categories []string

	// Alpha is the softmax temperature; lower means stronger hub bias.
	Alpha float64

	// BiasExponent skews the per-category popularity draw.
	BiasExponent float64
}

// DefaultModel returns DefaultCategories with Alpha 1e-2 and BiasExponent 2.
func DefaultModel() Model {
	cats := make([]string, len(DefaultCategories))
	copy(cats, DefaultCategories)
	return Model{Categories: cats, Alpha: 1e-2, BiasExponent: 2}
}

// Validate checks the model parameters.
func (m Model) Validate() error {
	if len(m.Categories) == 0 {
		return fmt.Errorf("Model: no categories: %w", ErrInvalidModel)
	}
	seen := make(map[string]struct{}, len(m.Categories))
	for _, c := range m.Categories {
		if c == "" {
			return fmt.Errorf("Model: blank category: %w", ErrInvalidModel)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("Model: duplicate category %q: %w", c, ErrInvalidModel)
		}
		seen[c] = struct{}{}
	}
	if !(m.Alpha > 0) || math.IsInf(m.Alpha, 0) {
		return fmt.Errorf("Model: alpha=%v: %w", m.Alpha, ErrInvalidModel)
	}
	if !(m.BiasExponent >= 0) || math.IsInf(m.BiasExponent, 0) {
		return fmt.Errorf("Model: bias exponent=%v: %w", m.BiasExponent, ErrInvalidModel)
	}
	return nil
}

// Assign draws one category per vertex.
//
// Errors: ErrGraphNil, ErrNilRand, ErrInvalidModel.
// Complexity: O(V·C).
func (m Model) Assign(g *core.Graph, r *rand.Rand) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if r == nil {
		return nil, ErrNilRand
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	order := make([]string, len(m.Categories))
	copy(order, m.Categories)
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	bias := make([]float64, len(order))
	for j := range bias {
		bias[j] = math.Pow(r.Float64(), m.BiasExponent)
	}
	if top := floats.Max(bias); top > 0 {
		floats.Scale(1/top, bias)
	}

	deg := g.Degrees()
	maxDeg := 0
	for _, d := range deg {
		maxDeg = max(maxDeg, d)
	}

	gumbel := distuv.GumbelRight{Mu: 0, Beta: 1, Src: r}
	out := make([]string, len(deg))
	scores := make([]float64, len(order))
	for v, d := range deg {
		norm := 0.0
		if maxDeg > 0 {
			norm = float64(d) / float64(maxDeg)
		}
		for j, b := range bias {
			scores[j] = norm*b/m.Alpha + gumbel.Rand()
		}
		out[v] = order[floats.MaxIdx(scores)]
	}

	return out, nil
}

// Threshold labels vertices by a degree cut: degree >= Cut gets High, the
// rest get Low. It ignores the random source.
type Threshold struct {
	Cut  int
	High string
	Low  string
}

// Assign applies the cut to every vertex.
func (t Threshold) Assign(g *core.Graph, _ *rand.Rand) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if t.High == "" || t.Low == "" {
		return nil, fmt.Errorf("Threshold: blank label: %w", ErrInvalidModel)
	}
	out := make([]string, g.Order())
	for v := range out {
		if g.Degree(v) >= t.Cut {
			out[v] = t.High
		} else {
			out[v] = t.Low
		}
	}
	return out, nil
}

// Fixed is a caller-supplied assignment, returned as a copy on every run.
type Fixed []string

// Assign returns a copy of f after checking it covers g.
func (f Fixed) Assign(g *core.Graph, _ *rand.Rand) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(f) != g.Order() {
		return nil, fmt.Errorf("Fixed: %d labels for %d vertices: %w", len(f), g.Order(), ErrInvalidModel)
	}
	out := make([]string, len(f))
	copy(out, f)
	return out, nil
}

// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rdsim/builder"
	"github.com/katalvlaran/rdsim/core"
)

// Backbone generators accepted in graph.kind. An empty kind means
// KindBarabasiAlbert.
const (
	KindBarabasiAlbert = "barabasi-albert"
	KindRandomSparse   = "random-sparse"
	KindStar           = "star"
	KindPath           = "path"
	KindCycle          = "cycle"
	KindComplete       = "complete"
)

// maxCompleteNodes caps complete graphs, whose edge count is quadratic.
const maxCompleteNodes = 2000

func (g Graph) kind() string {
	if g.Kind == "" {
		return KindBarabasiAlbert
	}
	return g.Kind
}

func (g Graph) validate() error {
	minNodes := 2
	if g.kind() == KindCycle {
		minNodes = 3
	}
	if g.Nodes < minNodes {
		return fmt.Errorf("graph.nodes=%d for %s: %w", g.Nodes, g.kind(), ErrInvalidConfig)
	}

	switch g.kind() {
	case KindBarabasiAlbert:
		if g.Attach < 1 {
			return fmt.Errorf("graph.attach=%d: %w", g.Attach, ErrInvalidConfig)
		}
	case KindRandomSparse:
		p := g.EdgeProbability
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("graph.edge_probability=%v: %w", p, ErrInvalidConfig)
		}
	case KindComplete:
		if g.Nodes > maxCompleteNodes {
			return fmt.Errorf("graph.nodes=%d exceeds %d for complete: %w", g.Nodes, maxCompleteNodes, ErrInvalidConfig)
		}
	case KindStar, KindPath, KindCycle:
	default:
		return fmt.Errorf("graph.kind=%q: %w", g.Kind, ErrInvalidConfig)
	}
	return nil
}

// constructor maps the graph section onto a builder constructor.
func (g Graph) constructor() (builder.Constructor, error) {
	switch g.kind() {
	case KindBarabasiAlbert:
		return builder.BarabasiAlbert(g.Nodes, g.Attach), nil
	case KindRandomSparse:
		return builder.RandomSparse(g.Nodes, g.EdgeProbability), nil
	case KindStar:
		return builder.Star(g.Nodes), nil
	case KindPath:
		return builder.Path(g.Nodes), nil
	case KindCycle:
		return builder.Cycle(g.Nodes), nil
	case KindComplete:
		return builder.Complete(g.Nodes), nil
	}
	return nil, fmt.Errorf("graph.kind=%q: %w", g.Kind, ErrInvalidConfig)
}

// Backbone builds the graph described by the graph section, seeded with
// graph.seed.
func (c Config) Backbone() (*core.Graph, error) {
	ctor, err := c.Graph.constructor()
	if err != nil {
		return nil, err
	}
	return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(c.Graph.Seed)}, ctor)
}

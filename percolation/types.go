// SPDX-License-Identifier: MIT

package percolation

import (
	"context"
	"errors"

	"github.com/katalvlaran/rdsim/core"
)

// Sentinel errors returned by Percolate.
var (
	// ErrGraphNil indicates a nil backbone graph.
	ErrGraphNil = errors.New("percolation: graph is nil")

	// ErrInvalidProbability indicates p outside [0,1] or NaN.
	ErrInvalidProbability = errors.New("percolation: probability must be in [0,1]")

	// ErrNoSeeds indicates an empty seed set.
	ErrNoSeeds = errors.New("percolation: no seeds")

	// ErrSeedNotFound indicates a seed outside 0..N-1.
	ErrSeedNotFound = errors.New("percolation: seed not found")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("percolation: nil random source")

	// ErrBudgetExhausted indicates the WithMaxSteps budget ran out before the
	// frontier drained.
	ErrBudgetExhausted = errors.New("percolation: step budget exhausted")
)

// DefaultPriority is the constant frontier key used when no PriorityFunc is set.
const DefaultPriority = 1.0

// PriorityFunc returns the frontier key for the candidate edge from→to.
// It must be deterministic; lower keys are explored first.
type PriorityFunc func(from, to int) float64

// VisitFunc observes each recruitment: to was reached through from.
type VisitFunc func(from, to int)

// Result is the outcome of one percolation run.
type Result struct {
	// Participants holds every visited vertex, sorted ascending. Seeds included.
	Participants []int

	// Edges holds the percolated tree edges in discovery order, oriented
	// recruiter → recruit.
	Edges []core.Edge

	// Seeds holds the distinct seeds, sorted ascending.
	Seeds []int

	// Steps counts frontier pops, i.e. coin flips drawn.
	Steps int

	g *core.Graph
}

// Subgraph returns the percolated subgraph: the backbone's vertex set with
// only the recruiting edges.
func (r *Result) Subgraph() (*core.Graph, error) {
	if r == nil || r.g == nil {
		return nil, ErrGraphNil
	}
	return r.g.Subgraph(r.Edges)
}

// Options holds the resolved settings for one Percolate call.
type Options struct {
	// Ctx is checked once per frontier pop. Defaults to context.Background().
	Ctx context.Context

	// MaxSteps bounds the number of pops; 0 means unbounded.
	MaxSteps int

	// Priority keys frontier entries; nil means DefaultPriority.
	Priority PriorityFunc

	// OnVisit is called for every newly recruited vertex; may be nil.
	OnVisit VisitFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unbounded, uncancellable options with constant priority.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the run stop with ctx.Err() once ctx is done.
// Panics on nil ctx.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("percolation: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxSteps bounds the number of frontier pops. n <= 0 disables the bound.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}

// WithPriority sets the frontier key function. Panics on nil fn.
func WithPriority(fn PriorityFunc) Option {
	if fn == nil {
		panic("percolation: WithPriority(nil)")
	}
	return func(o *Options) { o.Priority = fn }
}

// WithOnVisit registers a recruitment hook. Panics on nil fn.
func WithOnVisit(fn VisitFunc) Option {
	if fn == nil {
		panic("percolation: WithOnVisit(nil)")
	}
	return func(o *Options) { o.OnVisit = fn }
}

// SPDX-License-Identifier: MIT
// Package: rdsim/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdsim/core"
)

// Constructor applies a deterministic topology mutation to b using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters before adding anything.
//   - Add their own vertices (IDs continue from b.Order()).
//   - Return sentinel errors, never panic.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the frozen graph.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(V + E log E) freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

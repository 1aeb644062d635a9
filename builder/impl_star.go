// SPDX-License-Identifier: MIT
// Package: rdsim/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the block, leaves follow in order.
//   - Spokes are emitted hub → leaf[i] for increasing i.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdsim/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n vertices: one hub and
// n-1 leaves. In a fresh graph the hub is vertex 0.
func Star(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		hub := b.AddVertices(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := b.AddEdge(hub, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}

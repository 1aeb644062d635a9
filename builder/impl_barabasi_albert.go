// SPDX-License-Identifier: MIT
// Package: rdsim/builder
//
// impl_barabasi_albert.go - implementation of BarabasiAlbert(n, m) constructor.
//
// Canonical model:
//   - Start from a single vertex. Each subsequent vertex v attaches to
//     min(m, v) distinct earlier vertices, choosing u with probability
//     proportional to degree(u)+1 (linear preferential attachment with unit
//     zero-appeal, so the first arrivals are reachable).
//   - No self-loops, no multi-edges.
//
// Contract:
//   - n ≥ 1, m ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil when n > m+1 (else ErrNeedRandSource); smaller
//     graphs are forced to K_n and need no randomness.
//
// Complexity:
//   - Time: O(n·m) expected (rejection of repeated targets is rare once the
//     pool is larger than m).
//   - Space: O(n·m) for the attachment pool.
//
// Determinism:
//   - Vertices arrive in ascending ID order; targets are emitted in draw order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdsim/core"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minBAVertices        = 1
	minBAAttach          = 1
)

// BarabasiAlbert returns a Constructor that grows a preferential-attachment
// graph of n vertices, each newcomer adding up to m edges.
func BarabasiAlbert(n, m int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if err := validateMin(methodBarabasiAlbert, "n", n, minBAVertices); err != nil {
			return err
		}
		if err := validateMin(methodBarabasiAlbert, "m", m, minBAAttach); err != nil {
			return err
		}
		if cfg.rng == nil && n > m+1 {
			return fmt.Errorf("%s: rng is required: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}

		first := b.AddVertices(n)

		// pool holds each vertex (deg+1) times; a uniform draw from it is a
		// degree+1 proportional draw over vertices.
		pool := make([]int, 0, n*(2*m+1))
		pool = append(pool, first)

		chosen := make(map[int]struct{}, m)
		targets := make([]int, 0, m)

		for v := first + 1; v < first+n; v++ {
			k := min(m, v-first)
			clear(chosen)
			targets = targets[:0]

			for len(targets) < k {
				var u int
				if k == v-first {
					// every earlier vertex is taken: no randomness needed
					u = first + len(targets)
				} else {
					u = pool[cfg.rng.IntN(len(pool))]
				}
				if _, dup := chosen[u]; dup {
					continue
				}
				chosen[u] = struct{}{}
				targets = append(targets, u)
			}

			pool = append(pool, v)
			for _, u := range targets {
				if err := b.AddEdge(v, u); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBarabasiAlbert, v, u, err)
				}
				pool = append(pool, u, v)
			}
		}

		return nil
	}
}

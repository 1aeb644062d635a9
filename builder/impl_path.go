// SPDX-License-Identifier: MIT
// Package: rdsim/builder
//
// impl_path.go - implementation of Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, edges i—i+1 in ascending order.
//   - Cycle: n ≥ 3, Path edges plus the closing edge (n-1)—0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rdsim/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		_, err := addChain(b, methodPath, n)
		return err
	}
}

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		first, err := addChain(b, methodCycle, n)
		if err != nil {
			return err
		}
		last := first + n - 1
		if err = b.AddEdge(last, first); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, last, first, err)
		}
		return nil
	}
}

// addChain appends n vertices linked in sequence and returns the first ID.
func addChain(b *core.Builder, method string, n int) (int, error) {
	first := b.AddVertices(n)
	for v := first; v < first+n-1; v++ {
		if err := b.AddEdge(v, v+1); err != nil {
			return first, fmt.Errorf("%s: AddEdge(%d,%d): %w", method, v, v+1, err)
		}
	}
	return first, nil
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

// Probability bounds accepted by stochastic constructors, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures that got ≥ min.
// Returns "<method>: <name>=<got> < min=<min>: ErrTooFewVertices" otherwise.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN is rejected.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}

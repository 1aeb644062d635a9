// SPDX-License-Identifier: MIT

package estimator

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rdsim/survey"
)

// ErrEmptySurvey indicates an estimate was requested from zero rows.
var ErrEmptySurvey = errors.New("estimator: empty survey")

// Naive returns category frequency / row count.
//
// Errors: ErrEmptySurvey, survey.ErrNegativeDegree, survey.ErrEmptyCategory.
// Complexity: O(R + C log C).
func Naive(t survey.Table) (Distribution, error) {
	if err := check("Naive", t); err != nil {
		return nil, err
	}
	return weigh(t, func(survey.Record) float64 { return 1 }), nil
}

// Corrected returns the inverse-degree weighted category distribution.
//
// Errors: ErrEmptySurvey, survey.ErrNegativeDegree, survey.ErrEmptyCategory.
// Complexity: O(R + C log C).
func Corrected(t survey.Table) (Distribution, error) {
	if err := check("Corrected", t); err != nil {
		return nil, err
	}
	return weigh(t, inverseDegree), nil
}

// Population returns the true distribution of a full category assignment.
//
// Errors: ErrEmptySurvey for an empty assignment, survey.ErrEmptyCategory.
func Population(categories []string) (Distribution, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("Population: %w", ErrEmptySurvey)
	}
	counts := make(map[string]float64)
	for v, c := range categories {
		if c == "" {
			return nil, fmt.Errorf("Population: vertex %d: %w", v, survey.ErrEmptyCategory)
		}
		counts[c]++
	}
	return normalize(counts), nil
}

// SquaredError returns the per-category squared differences between est and
// truth over categories. A nil categories slice means the sorted union of
// both key sets; a category missing from a distribution reads 0.
func SquaredError(est, truth Distribution, categories []string) []float64 {
	if categories == nil {
		categories = union(est, truth)
	}
	diff := est.Vector(categories)
	floats.Sub(diff, truth.Vector(categories))
	floats.Mul(diff, diff)
	return diff
}

// MSE is the mean of SquaredError, 0 when there is nothing to compare.
func MSE(est, truth Distribution, categories []string) float64 {
	se := SquaredError(est, truth, categories)
	if len(se) == 0 {
		return 0
	}
	return stat.Mean(se, nil)
}

// inverseDegree floors degree at 1 so isolated respondents keep full weight.
func inverseDegree(r survey.Record) float64 {
	return 1 / float64(max(r.Degree, 1))
}

func check(method string, t survey.Table) error {
	if len(t) == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptySurvey)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// weigh sums weight(r) per category. Row order affects only the per-category
// accumulation, which is fixed for a given table.
func weigh(t survey.Table, weight func(survey.Record) float64) Distribution {
	sums := make(map[string]float64)
	for _, r := range t {
		sums[r.Category] += weight(r)
	}
	return normalize(sums)
}

// normalize divides every entry by the total, summed in sorted key order.
func normalize(sums map[string]float64) Distribution {
	d := Distribution(sums)
	total := d.Sum()
	for _, c := range d.Categories() {
		d[c] /= total
	}
	return d
}

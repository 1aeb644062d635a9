// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/rdsim/core"
	"github.com/katalvlaran/rdsim/estimator"
	"github.com/katalvlaran/rdsim/percolation"
	"github.com/katalvlaran/rdsim/preference"
	"github.com/katalvlaran/rdsim/rng"
	"github.com/katalvlaran/rdsim/survey"
)

// TrialResult is the outcome of one trial.
type TrialResult struct {
	// Index is the trial's position in its batch (0 for standalone trials).
	Index int `json:"index"`

	// Attempts counts percolation runs, including the accepted one.
	Attempts int `json:"attempts"`

	// Seeds are the initial participants of the accepted run.
	Seeds []int `json:"seeds"`

	// Steps counts coin flips of the accepted run.
	Steps int `json:"steps"`

	// Survey holds one record per participant.
	Survey survey.Table `json:"survey"`

	Truth     estimator.Distribution `json:"truth"`
	Naive     estimator.Distribution `json:"naive"`
	Corrected estimator.Distribution `json:"corrected"`

	NaiveMSE     float64 `json:"naive_mse"`
	CorrectedMSE float64 `json:"corrected_mse"`
}

// Improved reports whether the corrected estimate beat the naive one.
func (t *TrialResult) Improved() bool { return t.CorrectedMSE < t.NaiveMSE }

// Trial runs one experiment on g, drawing everything from r.
//
// Errors: ErrGraphNil, ErrNilAssigner, ErrNilRand, ErrInvalidParams,
// ErrSurveyTooSmall, plus any assigner, percolation or context error.
func Trial(ctx context.Context, g *core.Graph, a preference.Assigner, p Params, r *rand.Rand) (res *TrialResult, err error) {
	if g == nil {
		return nil, fmt.Errorf("Trial: %w", ErrGraphNil)
	}
	if a == nil {
		return nil, fmt.Errorf("Trial: %w", ErrNilAssigner)
	}
	if r == nil {
		return nil, fmt.Errorf("Trial: %w", ErrNilRand)
	}
	if err := p.Validate(g.Order()); err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}

	ctx, span := getTracer().Start(ctx, "simulation.Trial",
		trace.WithAttributes(
			attribute.Int("vertices", g.Order()),
			attribute.Int("seeds", p.Seeds),
			attribute.Float64("probability", p.Probability),
		),
	)
	defer func() { endSpan(span, err, "trial done") }()

	categories, err := a.Assign(g, r)
	if err != nil {
		return nil, fmt.Errorf("Trial: assign: %w", err)
	}
	truth, err := estimator.Population(categories)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}

	var run *percolation.Result
	attempts := 0
	for p.MaxAttempts == 0 || attempts < p.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Trial: after %d attempts: %w", attempts, err)
		}
		attempts++
		seeds, err := rng.SampleWithoutReplacement(r, g.Order(), p.Seeds)
		if err != nil {
			return nil, fmt.Errorf("Trial: seeds: %w", err)
		}
		run, err = percolation.Percolate(g, seeds, p.Probability, r,
			percolation.WithContext(ctx),
			percolation.WithMaxSteps(p.MaxSteps),
		)
		if err != nil {
			return nil, fmt.Errorf("Trial: attempt %d: %w", attempts, err)
		}
		if len(run.Participants) >= p.MinSurveySize {
			break
		}
		run = nil
	}
	span.SetAttributes(attribute.Int("attempts", attempts))
	if run == nil {
		return nil, fmt.Errorf("Trial: %d attempts below %d participants: %w", attempts, p.MinSurveySize, ErrSurveyTooSmall)
	}

	tbl, err := survey.Build(g, run.Participants, categories)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}
	naive, err := estimator.Naive(tbl)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}
	corrected, err := estimator.Corrected(tbl)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}

	cats := truth.Categories()
	res = &TrialResult{
		Attempts:     attempts,
		Seeds:        run.Seeds,
		Steps:        run.Steps,
		Survey:       tbl,
		Truth:        truth,
		Naive:        naive,
		Corrected:    corrected,
		NaiveMSE:     estimator.MSE(naive, truth, cats),
		CorrectedMSE: estimator.MSE(corrected, truth, cats),
	}
	span.SetAttributes(
		attribute.Int("survey_size", len(tbl)),
		attribute.Float64("naive_mse", res.NaiveMSE),
		attribute.Float64("corrected_mse", res.CorrectedMSE),
	)
	return res, nil
}

// isCancel reports whether err stems from context cancellation or deadline.
func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

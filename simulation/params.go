// SPDX-License-Identifier: MIT

package simulation

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the trial harness.
var (
	// ErrGraphNil indicates a nil backbone graph.
	ErrGraphNil = errors.New("simulation: graph is nil")

	// ErrNilAssigner indicates a missing category assigner.
	ErrNilAssigner = errors.New("simulation: nil assigner")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("simulation: nil random source")

	// ErrInvalidParams indicates unusable trial or batch parameters.
	ErrInvalidParams = errors.New("simulation: invalid parameters")

	// ErrSurveyTooSmall indicates every attempt produced fewer than
	// MinSurveySize participants.
	ErrSurveyTooSmall = errors.New("simulation: survey too small")
)

// Defaults of the classroom RDS exercise.
const (
	DefaultSeeds         = 5
	DefaultProbability   = 0.15
	DefaultMinSurveySize = 200
	DefaultMaxAttempts   = 2000
	DefaultTrials        = 10
)

// Params configures a single trial.
type Params struct {
	// Seeds is the number of initial participants, drawn without replacement.
	Seeds int `json:"seeds"`

	// Probability is the per-edge survival probability.
	Probability float64 `json:"probability"`

	// MinSurveySize is the smallest acceptable survey, inclusive: a run with
	// exactly MinSurveySize participants is kept. 0 or 1 accepts any run.
	// The category assignment is drawn once per trial and kept across
	// retries; only seeds and percolation are redrawn.
	MinSurveySize int `json:"min_survey_size"`

	// MaxAttempts bounds how many percolations a trial may run; 0 retries
	// until the survey is large enough or ctx is done.
	MaxAttempts int `json:"max_attempts"`

	// MaxSteps bounds frontier pops per percolation; 0 means unbounded.
	MaxSteps int `json:"max_steps"`
}

// DefaultParams returns the exercise defaults.
func DefaultParams() Params {
	return Params{
		Seeds:         DefaultSeeds,
		Probability:   DefaultProbability,
		MinSurveySize: DefaultMinSurveySize,
		MaxAttempts:   DefaultMaxAttempts,
	}
}

// Validate checks p against a backbone of n vertices.
func (p Params) Validate(n int) error {
	switch {
	case p.Seeds < 1:
		return fmt.Errorf("Params: seeds=%d: %w", p.Seeds, ErrInvalidParams)
	case p.Seeds > n:
		return fmt.Errorf("Params: seeds=%d exceeds %d vertices: %w", p.Seeds, n, ErrInvalidParams)
	case math.IsNaN(p.Probability) || p.Probability < 0 || p.Probability > 1:
		return fmt.Errorf("Params: probability=%v: %w", p.Probability, ErrInvalidParams)
	case p.MinSurveySize < 0 || p.MinSurveySize > n:
		return fmt.Errorf("Params: min survey size=%d for %d vertices: %w", p.MinSurveySize, n, ErrInvalidParams)
	case p.MaxAttempts < 0:
		return fmt.Errorf("Params: max attempts=%d: %w", p.MaxAttempts, ErrInvalidParams)
	case p.MaxSteps < 0:
		return fmt.Errorf("Params: max steps=%d: %w", p.MaxSteps, ErrInvalidParams)
	}
	return nil
}

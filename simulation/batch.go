// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rdsim/core"
	"github.com/katalvlaran/rdsim/preference"
	"github.com/katalvlaran/rdsim/rng"
)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	// Trials is the number of independent trials; must be positive.
	Trials int

	// Workers bounds concurrency; <= 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Seed is the batch seed; trial i draws from rng.Derive(Seed, i).
	Seed uint64

	// Logger receives progress; nil discards.
	Logger *log.Logger

	// Metrics records outcomes; nil disables.
	Metrics *Metrics
}

// Report is the outcome of a batch.
type Report struct {
	RunID     string        `json:"run_id"`
	Seed      uint64        `json:"seed"`
	Params    Params        `json:"params"`
	Vertices  int           `json:"vertices"`
	Edges     int           `json:"edges"`
	Workers   int           `json:"workers"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
	Trials    []TrialResult `json:"trials"`
	Summary   Summary       `json:"summary"`
}

// RunBatch runs opts.Trials independent trials concurrently.
//
// The assigner is shared by all workers and must be safe for concurrent
// use; the assigners in package preference are. The first failing trial
// cancels the rest and its error is returned.
//
// Errors: ErrGraphNil, ErrNilAssigner, ErrInvalidParams, or the first trial error.
func RunBatch(ctx context.Context, g *core.Graph, a preference.Assigner, p Params, opts BatchOptions) (rep *Report, err error) {
	if g == nil {
		return nil, fmt.Errorf("RunBatch: %w", ErrGraphNil)
	}
	if a == nil {
		return nil, fmt.Errorf("RunBatch: %w", ErrNilAssigner)
	}
	if opts.Trials < 1 {
		return nil, fmt.Errorf("RunBatch: trials=%d: %w", opts.Trials, ErrInvalidParams)
	}
	if err := p.Validate(g.Order()); err != nil {
		return nil, fmt.Errorf("RunBatch: %w", err)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Trials)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rep = &Report{
		RunID:     uuid.New().String(),
		Seed:      opts.Seed,
		Params:    p,
		Vertices:  g.Order(),
		Edges:     g.Size(),
		Workers:   workers,
		StartedAt: time.Now().UTC(),
		Trials:    make([]TrialResult, opts.Trials),
	}
	logger = logger.With("run", rep.RunID)

	ctx, span := getTracer().Start(ctx, "simulation.RunBatch",
		trace.WithAttributes(
			attribute.String("run_id", rep.RunID),
			attribute.Int("trials", opts.Trials),
			attribute.Int("workers", workers),
		),
	)
	defer func() { endSpan(span, err, "batch done") }()

	logger.Info("starting batch", "trials", opts.Trials, "workers", workers, "seed", opts.Seed)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < opts.Trials; i++ {
		eg.Go(func() error {
			res, err := Trial(egCtx, g, a, p, rng.Derive(opts.Seed, uint64(i)))
			opts.Metrics.observe(res, err)
			if err != nil {
				if !isCancel(err) {
					logger.Error("trial failed", "trial", i, "err", err)
				}
				return fmt.Errorf("trial %d: %w", i, err)
			}
			res.Index = i
			rep.Trials[i] = *res
			logger.Debug("trial done",
				"trial", i,
				"participants", len(res.Survey),
				"attempts", res.Attempts,
				"naive_mse", res.NaiveMSE,
				"corrected_mse", res.CorrectedMSE,
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("RunBatch: %w", err)
	}

	rep.Elapsed = time.Since(rep.StartedAt)
	rep.Summary = Summarize(rep.Trials)
	span.SetAttributes(attribute.Float64("success_rate", rep.Summary.SuccessRate))
	logger.Info("batch done",
		"success_rate", rep.Summary.SuccessRate,
		"improvement", rep.Summary.ImprovementFactor,
		"elapsed", rep.Elapsed.Round(time.Millisecond),
	)
	return rep, nil
}

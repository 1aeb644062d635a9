// SPDX-License-Identifier: MIT

// Package simulation runs repeated respondent-driven-sampling experiments.
//
// One trial:
//
//  1. Assign a category to every vertex (preference.Assigner).
//  2. Draw Params.Seeds distinct seeds uniformly at random.
//  3. Percolate with Params.Probability; redraw seeds and percolate again
//     while the survey is smaller than Params.MinSurveySize, at most
//     Params.MaxAttempts times (0 means until ctx is done).
//  4. Build the survey, run the naive and corrected estimators and score
//     both against the population distribution by MSE.
//
// Every draw of a trial comes from the single *rand.Rand it is given, so a
// trial is a pure function of (graph, assigner, params, stream state).
//
// A batch runs trials concurrently on an errgroup with a worker limit.
// Trial i always uses rng.Derive(seed, i) and writes only its own result
// slot, so a batch is bit-identical for any number of workers.
//
// Observability is optional: a charmbracelet/log logger, Prometheus metrics
// registered on a caller-supplied registerer, and OpenTelemetry spans from
// the global tracer provider (a no-op unless the host configures one).
package simulation

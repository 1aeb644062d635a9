// SPDX-License-Identifier: MIT

// Package rdsim simulates respondent-driven sampling (RDS) on synthetic
// social networks and measures how well a degree-corrected estimator
// recovers the true category distribution.
//
// RDS recruits participants through their contacts, so well-connected
// people are over-represented in every survey. rdsim reproduces that bias
// and its standard remedy:
//
//	core/        immutable undirected graph over vertex IDs 0..N-1
//	builder/     graph constructors (Barabási–Albert, star, path, ...)
//	rng/         deterministic, per-trial random streams
//	percolation/ bond percolation from seeds: the recruitment process
//	survey/      participant tables (ID, category, degree) and CSV I/O
//	estimator/   naive and inverse-degree corrected distributions, MSE
//	degree/      degree distribution, CCDF and degree-biased sampling
//	preference/  degree-biased category assignment (Gumbel-max)
//	simulation/  trials, concurrent batches, summaries and metrics
//
// The rdsim command (cmd/rdsim) runs batches, scores survey CSVs and
// serves the same operations over HTTP.
//
// Quick start:
//
//	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)},
//		builder.BarabasiAlbert(3000, 2))
//	rep, _ := simulation.RunBatch(ctx, g, preference.DefaultModel(),
//		simulation.DefaultParams(), simulation.BatchOptions{Trials: 10, Seed: 1})
//	fmt.Println(rep.Summary.SuccessRate)
package rdsim

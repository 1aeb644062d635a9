// SPDX-License-Identifier: MIT

// Package builder generates backbone populations for rdsim simulations.
//
// It provides functional-options building blocks around core.Builder:
//
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – builderConfig: holds the RNG stream shared by stochastic constructors.
//   - Constructors (Constructor closures, composed by BuildGraph):
//     – Star(n):             center first, then n-1 leaves.
//     – Path(n), Cycle(n):   simple chains and rings.
//     – Complete(n):         K_n.
//     – RandomSparse(n, p):  Erdős–Rényi G(n,p).
//     – BarabasiAlbert(n, m): preferential attachment, the usual social backbone.
//   - Validation helpers: validateMin, validateProbability.
//
// Composition:
//
//	Constructors run in order against one core.Builder and each appends its own
//	block of vertices, so BuildGraph(nil, Star(5), Path(3)) yields a graph with
//	two components: the star on 0..4 and the path on 5..7.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability, ...)
//     wrapped with the constructor name for errors.Is branching.
//   - Documented complexity per constructor.
package builder

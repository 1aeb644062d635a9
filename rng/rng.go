// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random streams for rdsim.
//
// Goals:
//   - Determinism: same seed ⇒ identical streams across platforms.
//   - Encapsulation: a single RNG factory; no time-based or global sources.
//   - Independence: Derive splits one base seed into per-trial streams, so a
//     batch gives identical results no matter how many workers run it.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Never share one across goroutines;
//     derive one stream per worker or per trial instead.
package rng

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrSampleSize indicates k is outside [0, n] for sampling without replacement.
var ErrSampleSize = errors.New("rng: sample size out of range")

// pcgIncrement is the fixed second PCG word; the seed alone selects the stream.
const pcgIncrement uint64 = 0xda3e39cb94b95bdb

// New returns a deterministic PCG-backed *rand.Rand for seed.
// Complexity: O(1).
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgIncrement))
}

// Derive returns an independent deterministic stream identified by
// (seed, stream). Trial i of a batch uses Derive(batchSeed, i).
// Complexity: O(1).
func Derive(seed, stream uint64) *rand.Rand {
	return New(mix(seed, stream))
}

// mix is a SplitMix64 finalizer over the parent seed and stream id; small
// input changes give well-spread, uncorrelated outputs.
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// SampleWithoutReplacement draws k distinct values from 0..n-1 using a
// partial Fisher–Yates shuffle. The result is in draw order.
//
// Errors: ErrSampleSize if k < 0, n < 0 or k > n.
// Complexity: O(n) time and space.
func SampleWithoutReplacement(r *rand.Rand, n, k int) ([]int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, fmt.Errorf("SampleWithoutReplacement: n=%d k=%d: %w", n, k, ErrSampleSize)
	}

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k], nil
}

// SPDX-License-Identifier: MIT

// Package estimator turns a degree-biased survey into category proportions.
//
// Naive counts category frequencies among survey rows. It is intentionally
// biased: peer-referral recruits high-degree individuals with probability
// roughly proportional to their degree (the friendship paradox).
//
// Corrected applies inverse-degree weighting, w_i = 1/max(degree_i, 1), sums
// weights per category and normalizes (a Hansen–Hurwitz style correction).
// Zero-degree rows are floored to weight 1 rather than rejected.
//
// Both are pure functions: the same Table yields bit-identical results, since
// categories are always accumulated in sorted order. An empty Table is
// reported as ErrEmptySurvey; no all-zero or NaN distribution is returned.
package estimator

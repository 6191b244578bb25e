// SPDX-License-Identifier: MIT

// Package statserr defines the closed error taxonomy of lvstats.
//
// Exactly two kinds exist:
//
//	EmptyCollection — the aggregate is undefined for zero elements
//	                  (mean, variance, std-dev, min, max, range).
//	CouldNotConvert — a conversion between the counting type, float64 and the
//	                  element type has no accepted result; From/To name the pair.
//
// Propagation policy:
//   - numconv and the NonZero* operations originate errors.
//   - Mean, Variance, StdDev and friends return them unchanged, never wrapped,
//     so callers compare with == or errors.Is without unwrapping.
//   - Panicking forms (Mean, Min, Max, Range, Must*) panic with the StatsError
//     value itself; recover() yields a comparable error.
//
// Usage:
//
//	v, err := stats.New(xs).Variance()
//	switch {
//	case err == statserr.ErrEmptyCollection:
//		// nothing to aggregate
//	case errors.Is(err, statserr.ErrCouldNotConvert):
//		// count does not fit the element type
//	}
package statserr

// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Hold every aggregate algorithm exactly once, as a generic function over
//     a re-iterable iter.Seq[E]. Stats[E] methods and the freq package build on these.
//
// Exposed API:
//   - Count, NonZeroCount, NonZeroCountIntoItem
//   - Sum
//   - MeanErr (shared algorithm), Mean (panicking), CheckedMean (ok flag)
//   - Variance, StdDev, MustVariance, MustStdDev
//   - Min, Max, Range (panicking) and CheckedMin, CheckedMax, CheckedRange
//   - Summarize
//
// Determinism:
//   - Single forward traversal per pass, in iteration order; no randomness.

package stats

import (
	"iter"
	"math"

	"github.com/katalvlaran/lvstats/numconv"
	"github.com/katalvlaran/lvstats/statserr"
	"github.com/katalvlaran/lvstats/types"
)

// Count returns the number of elements yielded by seq. It never fails.
func Count[E types.Number](seq iter.Seq[E]) types.Count {
	var n types.Count
	for range seq {
		n++
	}

	return n
}

// NonZeroCount is Count, failing with ErrEmptyCollection when seq is empty.
func NonZeroCount[E types.Number](seq iter.Seq[E]) (types.Count, error) {
	n := Count(seq)
	if n == 0 {
		return 0, statserr.ErrEmptyCollection
	}

	return n, nil
}

// NonZeroCountIntoItem is NonZeroCount converted into E.
//
// Errors:
//   - ErrEmptyCollection for an empty seq.
//   - CouldNotConvert{DataCount, DataItem} when the count is not exact in E
//     (e.g. 128 elements of int8).
func NonZeroCountIntoItem[E types.Number](seq iter.Seq[E]) (E, error) {
	n, err := NonZeroCount(seq)
	if err != nil {
		return 0, err
	}

	return numconv.FromCount[E](n)
}

// Sum returns the total of seq; an empty seq sums to 0.
func Sum[E types.Number](seq iter.Seq[E]) E {
	var total E
	for v := range seq {
		total += v
	}

	return total
}

// MeanErr computes Sum(seq) / NonZeroCountIntoItem(seq).
// Implementation:
//   - Stage 1: count (and convert) first, so empty input fails before summing.
//   - Stage 2: sum, then divide in E (integer division for integer E).
//
// Errors:
//   - ErrEmptyCollection, CouldNotConvert{DataCount, DataItem}; returned unchanged.
//
// Complexity:
//   - Time O(n) over two passes, Space O(1).
func MeanErr[E types.Number](seq iter.Seq[E]) (E, error) {
	n, err := NonZeroCountIntoItem(seq)
	if err != nil {
		return 0, err
	}

	return Sum(seq) / n, nil
}

// Mean is MeanErr for callers that treat empty input as a contract violation.
// It panics with the StatsError when the collection is empty or its count
// cannot be represented in E.
func Mean[E types.Number](seq iter.Seq[E]) E {
	m, err := MeanErr(seq)
	if err != nil {
		panic(err)
	}

	return m
}

// CheckedMean is the non-panicking Mean: ok is false exactly when Mean would panic.
func CheckedMean[E types.Number](seq iter.Seq[E]) (mean E, ok bool) {
	m, err := MeanErr(seq)
	if err != nil {
		return 0, false
	}

	return m, true
}

// Variance computes the population variance Σ(x − mean)² / n.
// Implementation:
//   - Stage 1: n and mean via the MeanErr path (errors propagate unchanged).
//   - Stage 2: accumulate squared deviations in E, then divide by n.
//
// Behavior highlights:
//   - Unsigned E: x − mean may wrap, but (x − mean)² is congruent to the true
//     square modulo 2^w, so the result is exact whenever it fits in E.
//   - Integer E truncates at both divisions.
//
// Errors:
//   - ErrEmptyCollection, CouldNotConvert{DataCount, DataItem}.
//
// Complexity:
//   - Time O(n) over three passes, Space O(1).
func Variance[E types.Number](seq iter.Seq[E]) (E, error) {
	n, err := NonZeroCountIntoItem(seq)
	if err != nil {
		return 0, err
	}
	mean := Sum(seq) / n

	var acc E
	for v := range seq {
		d := v - mean
		acc += d * d
	}

	return acc / n, nil
}

// StdDev is the square root of Variance, taken in float64.
//
// Errors:
//   - Everything Variance returns.
//   - CouldNotConvert{DataFloat64, DataItem} when the root does not fit E.
func StdDev[E types.Number](seq iter.Seq[E]) (E, error) {
	v, err := Variance(seq)
	if err != nil {
		return 0, err
	}

	return numconv.FromFloat64[E](math.Sqrt(numconv.ToFloat64(v)))
}

// MustVariance is Variance that panics with the StatsError on failure.
func MustVariance[E types.Number](seq iter.Seq[E]) E {
	return must[E](Variance(seq))
}

// MustStdDev is StdDev that panics with the StatsError on failure.
func MustStdDev[E types.Number](seq iter.Seq[E]) E {
	return must[E](StdDev(seq))
}

// CheckedMin returns the smallest element, or ErrEmptyCollection.
// Ties keep the first element encountered; NaN loses against any number.
func CheckedMin[E types.Number](seq iter.Seq[E]) (E, error) {
	return extremum(seq, func(v, cur E) bool { return v < cur })
}

// CheckedMax returns the largest element, or ErrEmptyCollection.
// Ties keep the first element encountered; NaN loses against any number.
func CheckedMax[E types.Number](seq iter.Seq[E]) (E, error) {
	return extremum(seq, func(v, cur E) bool { return v > cur })
}

// CheckedRange returns Max − Min, or ErrEmptyCollection.
func CheckedRange[E types.Number](seq iter.Seq[E]) (E, error) {
	lo, err := CheckedMin(seq)
	if err != nil {
		return 0, err
	}
	hi, err := CheckedMax(seq)
	if err != nil {
		return 0, err
	}

	return hi - lo, nil
}

// Min returns the smallest element. It panics on an empty collection.
func Min[E types.Number](seq iter.Seq[E]) E {
	return must[E](CheckedMin(seq))
}

// Max returns the largest element. It panics on an empty collection.
func Max[E types.Number](seq iter.Seq[E]) E {
	return must[E](CheckedMax(seq))
}

// Range returns Max − Min. It panics on an empty collection.
func Range[E types.Number](seq iter.Seq[E]) E {
	return must[E](CheckedRange(seq))
}

// Summarize computes every aggregate of seq.
// On failure it returns the Summary filled so far (Count and Sum are always
// set) together with the first error, unchanged.
func Summarize[E types.Number](seq iter.Seq[E]) (Summary[E], error) {
	s := Summary[E]{Count: Count(seq), Sum: Sum(seq)}

	var err error
	if s.Mean, err = MeanErr(seq); err != nil {
		return s, err
	}
	if s.Variance, err = Variance(seq); err != nil {
		return s, err
	}
	if s.StdDev, err = StdDev(seq); err != nil {
		return s, err
	}
	if s.Min, err = CheckedMin(seq); err != nil {
		return s, err
	}
	if s.Max, err = CheckedMax(seq); err != nil {
		return s, err
	}
	s.Range = s.Max - s.Min

	return s, nil
}

// extremum keeps the first element for which no later element is better.
// A NaN current value is replaced by the next non-NaN element.
func extremum[E types.Number](seq iter.Seq[E], better func(v, cur E) bool) (E, error) {
	var cur E
	seen := false
	for v := range seq {
		switch {
		case !seen:
			cur, seen = v, true
		case better(v, cur), isNaN(cur) && !isNaN(v):
			cur = v
		}
	}
	if !seen {
		return 0, statserr.ErrEmptyCollection
	}

	return cur, nil
}

// isNaN is false for every integer value.
func isNaN[E types.Number](v E) bool {
	return v != v
}

func must[E types.Number](v E, err error) E {
	if err != nil {
		panic(err)
	}

	return v
}

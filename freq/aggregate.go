// SPDX-License-Identifier: MIT
// Package: freq
//
// Purpose:
//   - Weighted aggregates over a re-iterable iter.Seq of frequency buckets,
//     written once as generic functions; FrequencyStats[T] delegates to them.
//   - Value-only extremes reuse the stats package over a projected value sequence.

package freq

import (
	"iter"
	"math"

	"github.com/katalvlaran/lvstats/numconv"
	"github.com/katalvlaran/lvstats/stats"
	"github.com/katalvlaran/lvstats/statserr"
	"github.com/katalvlaran/lvstats/types"
)

// errTotalOverflow reports a total item count that exceeds types.Count.
var errTotalOverflow = statserr.NewCouldNotConvert(statserr.DataCount, statserr.DataCount)

// Count returns the number of buckets.
func Count[T types.Number](seq iter.Seq[types.Frequency[T]]) types.Count {
	var n types.Count
	for range seq {
		n++
	}

	return n
}

// NonZeroCount is Count, failing with ErrEmptyCollection when there are no buckets.
func NonZeroCount[T types.Number](seq iter.Seq[types.Frequency[T]]) (types.Count, error) {
	n := Count(seq)
	if n == 0 {
		return 0, statserr.ErrEmptyCollection
	}

	return n, nil
}

// TotalCount returns Σ countᵢ, the number of items the table stands for.
//
// Errors:
//   - CouldNotConvert{DataCount, DataCount} when the total overflows types.Count.
func TotalCount[T types.Number](seq iter.Seq[types.Frequency[T]]) (types.Count, error) {
	var total types.Count
	for b := range seq {
		next := total + b.Count
		if next < total {
			return 0, errTotalOverflow
		}
		total = next
	}

	return total, nil
}

// NonZeroTotalCountIntoItem returns Σ countᵢ converted into T.
//
// Errors:
//   - ErrEmptyCollection when the total is 0 (no buckets, or only zero counts).
//   - CouldNotConvert{DataCount, DataCount} on overflow of the total.
//   - CouldNotConvert{DataCount, DataItem} when the total is not exact in T.
func NonZeroTotalCountIntoItem[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	total, err := TotalCount(seq)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, statserr.ErrEmptyCollection
	}

	return numconv.FromCount[T](total)
}

// CheckedSum returns Σ valueᵢ·countᵢ; an empty table sums to 0.
//
// Errors:
//   - CouldNotConvert{DataCount, DataItem} when a bucket count is not exact in T.
func CheckedSum[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	var total T
	for b := range seq {
		w, err := numconv.FromCount[T](b.Count)
		if err != nil {
			return 0, err
		}
		total += b.Value * w
	}

	return total, nil
}

// Sum is CheckedSum that panics with the StatsError on a failed weight conversion.
func Sum[T types.Number](seq iter.Seq[types.Frequency[T]]) T {
	s, err := CheckedSum(seq)
	if err != nil {
		panic(err)
	}

	return s
}

// MeanErr computes the weighted mean Σ(valueᵢ·countᵢ) / Σcountᵢ.
// Implementation:
//   - Stage 1: reconstruct and convert the item count (empty fails first).
//   - Stage 2: weighted sum, then divide in T.
//
// Errors:
//   - Everything NonZeroTotalCountIntoItem and CheckedSum return, unchanged.
func MeanErr[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	n, err := NonZeroTotalCountIntoItem(seq)
	if err != nil {
		return 0, err
	}
	sum, err := CheckedSum(seq)
	if err != nil {
		return 0, err
	}

	return sum / n, nil
}

// Mean is MeanErr that panics with the StatsError on failure.
func Mean[T types.Number](seq iter.Seq[types.Frequency[T]]) T {
	m, err := MeanErr(seq)
	if err != nil {
		panic(err)
	}

	return m
}

// CheckedMean is the non-panicking Mean: ok is false exactly when Mean would panic.
func CheckedMean[T types.Number](seq iter.Seq[types.Frequency[T]]) (mean T, ok bool) {
	m, err := MeanErr(seq)
	if err != nil {
		return 0, false
	}

	return m, true
}

// Variance computes the weighted population variance Σcountᵢ·(valueᵢ − mean)² / Σcountᵢ.
//
// Errors:
//   - Everything MeanErr returns, unchanged.
//
// Complexity:
//   - Time O(b) over three passes for b buckets, independent of Σcountᵢ.
func Variance[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	n, err := NonZeroTotalCountIntoItem(seq)
	if err != nil {
		return 0, err
	}
	sum, err := CheckedSum(seq)
	if err != nil {
		return 0, err
	}
	mean := sum / n

	var acc T
	for b := range seq {
		// CheckedSum already converted every weight successfully.
		w, _ := numconv.FromCount[T](b.Count)
		d := b.Value - mean
		acc += d * d * w
	}

	return acc / n, nil
}

// StdDev is the square root of the weighted Variance, taken in float64.
func StdDev[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	v, err := Variance(seq)
	if err != nil {
		return 0, err
	}

	return numconv.FromFloat64[T](math.Sqrt(numconv.ToFloat64(v)))
}

// CheckedMin returns the smallest Value (weights ignored) or ErrEmptyCollection.
func CheckedMin[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	return stats.CheckedMin(values(seq))
}

// CheckedMax returns the largest Value (weights ignored) or ErrEmptyCollection.
func CheckedMax[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	return stats.CheckedMax(values(seq))
}

// CheckedRange returns Max − Min over Values or ErrEmptyCollection.
func CheckedRange[T types.Number](seq iter.Seq[types.Frequency[T]]) (T, error) {
	return stats.CheckedRange(values(seq))
}

// Min returns the smallest Value; it panics when there are no buckets.
func Min[T types.Number](seq iter.Seq[types.Frequency[T]]) T {
	return stats.Min(values(seq))
}

// Max returns the largest Value; it panics when there are no buckets.
func Max[T types.Number](seq iter.Seq[types.Frequency[T]]) T {
	return stats.Max(values(seq))
}

// Range returns Max − Min over Values; it panics when there are no buckets.
func Range[T types.Number](seq iter.Seq[types.Frequency[T]]) T {
	return stats.Range(values(seq))
}

// Summarize computes every weighted aggregate. Summary.Count is the total item
// count Σcountᵢ, so the result matches stats.Summarize on the expanded sequence.
// On failure the partially filled Summary is returned with the first error.
func Summarize[T types.Number](seq iter.Seq[types.Frequency[T]]) (stats.Summary[T], error) {
	var s stats.Summary[T]

	var err error
	if s.Count, err = TotalCount(seq); err != nil {
		return s, err
	}
	if s.Sum, err = CheckedSum(seq); err != nil {
		return s, err
	}
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

// values projects the bucket values, keeping bucket order.
func values[T types.Number](seq iter.Seq[types.Frequency[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for b := range seq {
			if !yield(b.Value) {
				return
			}
		}
	}
}

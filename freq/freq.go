// SPDX-License-Identifier: MIT

package freq

import (
	"iter"

	"github.com/katalvlaran/lvstats/stats"
	"github.com/katalvlaran/lvstats/types"
)

// FrequencyStats grants the weighted aggregate operations to a Collection of
// frequency buckets. The zero value behaves as an empty table.
type FrequencyStats[T types.Number] struct {
	c Collection[T]
}

// New attaches the FrequencyStats capability to c.
func New[T types.Number](c Collection[T]) FrequencyStats[T] {
	return FrequencyStats[T]{c: c}
}

// FromSlice attaches the capability to a slice of buckets (borrowed, not copied).
func FromSlice[T types.Number](buckets []types.Frequency[T]) FrequencyStats[T] {
	return New[T](Table[T](buckets))
}

// All returns a fresh traversal of the buckets.
func (f FrequencyStats[T]) All() iter.Seq[types.Frequency[T]] {
	if f.c == nil {
		return func(func(types.Frequency[T]) bool) {}
	}

	return f.c.All()
}

// Values returns the bucket values as a stats capability (weights dropped).
func (f FrequencyStats[T]) Values() stats.Stats[T] {
	return stats.FromSeq(values(f.All()))
}

// Count returns the number of buckets.
func (f FrequencyStats[T]) Count() types.Count { return Count(f.All()) }

// NonZeroCount returns the number of buckets, or ErrEmptyCollection.
func (f FrequencyStats[T]) NonZeroCount() (types.Count, error) { return NonZeroCount(f.All()) }

// TotalCount returns Σ countᵢ.
func (f FrequencyStats[T]) TotalCount() (types.Count, error) { return TotalCount(f.All()) }

// NonZeroTotalCountIntoItem returns Σ countᵢ as T.
func (f FrequencyStats[T]) NonZeroTotalCountIntoItem() (T, error) {
	return NonZeroTotalCountIntoItem(f.All())
}

// Sum returns Σ valueᵢ·countᵢ; it panics when a count does not fit T.
func (f FrequencyStats[T]) Sum() T { return Sum(f.All()) }

// CheckedSum returns Σ valueᵢ·countᵢ or the conversion error.
func (f FrequencyStats[T]) CheckedSum() (T, error) { return CheckedSum(f.All()) }

// Mean returns the weighted mean; it panics on empty input or failed conversion.
func (f FrequencyStats[T]) Mean() T { return Mean(f.All()) }

// CheckedMean returns the weighted mean and true, or zero and false where Mean panics.
func (f FrequencyStats[T]) CheckedMean() (T, bool) { return CheckedMean(f.All()) }

// MeanErr returns the weighted mean or the StatsError Mean would panic with.
func (f FrequencyStats[T]) MeanErr() (T, error) { return MeanErr(f.All()) }

// Variance returns the weighted population variance.
func (f FrequencyStats[T]) Variance() (T, error) { return Variance(f.All()) }

// StdDev returns the weighted population standard deviation.
func (f FrequencyStats[T]) StdDev() (T, error) { return StdDev(f.All()) }

// Min returns the smallest Value; it panics when there are no buckets.
func (f FrequencyStats[T]) Min() T { return Min(f.All()) }

// Max returns the largest Value; it panics when there are no buckets.
func (f FrequencyStats[T]) Max() T { return Max(f.All()) }

// Range returns Max − Min; it panics when there are no buckets.
func (f FrequencyStats[T]) Range() T { return Range(f.All()) }

// CheckedMin returns the smallest Value or ErrEmptyCollection.
func (f FrequencyStats[T]) CheckedMin() (T, error) { return CheckedMin(f.All()) }

// CheckedMax returns the largest Value or ErrEmptyCollection.
func (f FrequencyStats[T]) CheckedMax() (T, error) { return CheckedMax(f.All()) }

// CheckedRange returns Max − Min or ErrEmptyCollection.
func (f FrequencyStats[T]) CheckedRange() (T, error) { return CheckedRange(f.All()) }

// Summarize returns every weighted aggregate; Summary.Count is Σ countᵢ.
func (f FrequencyStats[T]) Summarize() (stats.Summary[T], error) { return Summarize(f.All()) }

// SPDX-License-Identifier: MIT

package stats

import (
	"iter"

	"github.com/katalvlaran/lvstats/types"
)

// Stats grants the aggregate operations to a Collection.
// The zero value behaves as an empty collection.
type Stats[E types.Number] struct {
	c Collection[E]
}

// New attaches the Stats capability to c.
func New[E types.Number](c Collection[E]) Stats[E] {
	return Stats[E]{c: c}
}

// FromSlice attaches the Stats capability to a slice. The slice is borrowed,
// not copied; mutating it changes later results.
func FromSlice[E types.Number](xs []E) Stats[E] {
	return New[E](Slice[E](xs))
}

// FromSeq attaches the Stats capability to a re-iterable iterator.
func FromSeq[E types.Number](seq iter.Seq[E]) Stats[E] {
	return New[E](Seq[E](seq))
}

// All returns a fresh traversal of the wrapped collection, so Stats is itself
// a Collection.
func (s Stats[E]) All() iter.Seq[E] {
	if s.c == nil {
		return func(func(E) bool) {}
	}

	return s.c.All()
}

// Count returns the number of elements.
func (s Stats[E]) Count() types.Count { return Count(s.All()) }

// NonZeroCount returns the number of elements, or ErrEmptyCollection.
func (s Stats[E]) NonZeroCount() (types.Count, error) { return NonZeroCount(s.All()) }

// NonZeroCountIntoItem returns the number of elements as E.
func (s Stats[E]) NonZeroCountIntoItem() (E, error) { return NonZeroCountIntoItem(s.All()) }

// Sum returns the total of all elements (0 when empty).
func (s Stats[E]) Sum() E { return Sum(s.All()) }

// Mean returns Sum / Count. It panics when the collection is empty or the count
// does not fit E; use CheckedMean or MeanErr to handle those cases.
func (s Stats[E]) Mean() E { return Mean(s.All()) }

// CheckedMean returns the mean and true, or zero and false where Mean panics.
func (s Stats[E]) CheckedMean() (E, bool) { return CheckedMean(s.All()) }

// MeanErr returns the mean or the StatsError Mean would panic with.
func (s Stats[E]) MeanErr() (E, error) { return MeanErr(s.All()) }

// Variance returns the population variance.
func (s Stats[E]) Variance() (E, error) { return Variance(s.All()) }

// StdDev returns the population standard deviation.
func (s Stats[E]) StdDev() (E, error) { return StdDev(s.All()) }

// MustVariance is Variance that panics on failure.
func (s Stats[E]) MustVariance() E { return MustVariance(s.All()) }

// MustStdDev is StdDev that panics on failure.
func (s Stats[E]) MustStdDev() E { return MustStdDev(s.All()) }

// Min returns the smallest element; it panics when empty.
func (s Stats[E]) Min() E { return Min(s.All()) }

// Max returns the largest element; it panics when empty.
func (s Stats[E]) Max() E { return Max(s.All()) }

// Range returns Max − Min; it panics when empty.
func (s Stats[E]) Range() E { return Range(s.All()) }

// CheckedMin returns the smallest element or ErrEmptyCollection.
func (s Stats[E]) CheckedMin() (E, error) { return CheckedMin(s.All()) }

// CheckedMax returns the largest element or ErrEmptyCollection.
func (s Stats[E]) CheckedMax() (E, error) { return CheckedMax(s.All()) }

// CheckedRange returns Max − Min or ErrEmptyCollection.
func (s Stats[E]) CheckedRange() (E, error) { return CheckedRange(s.All()) }

// Summarize returns every aggregate at once.
func (s Stats[E]) Summarize() (Summary[E], error) { return Summarize(s.All()) }

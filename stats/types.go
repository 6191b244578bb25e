// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvstats/types"
)

// Collection is the conformance contract: a finite sequence of E that can be
// traversed any number of times, yielding the same elements in the same order.
type Collection[E types.Number] interface {
	All() iter.Seq[E]
}

// Slice adapts a []E to Collection.
type Slice[E types.Number] []E

// All returns an iterator over the slice elements in index order.
func (s Slice[E]) All() iter.Seq[E] {
	return slices.Values(s)
}

// Seq adapts a re-iterable iter.Seq to Collection.
// Single-use iterators (reading from a channel, a file ...) do not qualify.
type Seq[E types.Number] iter.Seq[E]

// All returns the underlying iterator.
func (s Seq[E]) All() iter.Seq[E] {
	return iter.Seq[E](s)
}

// Summary is a snapshot of every aggregate of a non-empty collection.
type Summary[E types.Number] struct {
	Count    types.Count `json:"count" msgpack:"count"`
	Sum      E           `json:"sum" msgpack:"sum"`
	Mean     E           `json:"mean" msgpack:"mean"`
	Variance E           `json:"variance" msgpack:"variance"`
	StdDev   E           `json:"std_dev" msgpack:"std_dev"`
	Min      E           `json:"min" msgpack:"min"`
	Max      E           `json:"max" msgpack:"max"`
	Range    E           `json:"range" msgpack:"range"`
}

// String renders the summary on one line, e.g.
// "count=3 sum=6 mean=2 variance=0.6666666666666666 std_dev=0.816496580927726 min=1 max=3 range=2".
func (s Summary[E]) String() string {
	return fmt.Sprintf("count=%d sum=%v mean=%v variance=%v std_dev=%v min=%v max=%v range=%v",
		s.Count, s.Sum, s.Mean, s.Variance, s.StdDev, s.Min, s.Max, s.Range)
}

// SPDX-License-Identifier: MIT

package freq

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/lvstats/types"
)

// Collection is any re-iterable sequence of frequency buckets.
type Collection[T types.Number] interface {
	All() iter.Seq[types.Frequency[T]]
}

// Table is a frequency table stored as a slice of buckets. Bucket order is
// significant for Min/Max ties and is preserved by every operation.
type Table[T types.Number] []types.Frequency[T]

// All returns an iterator over the buckets in index order.
func (t Table[T]) All() iter.Seq[types.Frequency[T]] {
	return slices.Values(t)
}

// Expand materializes the flat sequence the table stands for:
// each Value repeated Count times, buckets in order.
func (t Table[T]) Expand() []T {
	var n types.Count
	for _, b := range t {
		n += b.Count
	}

	out := make([]T, 0, n)
	for _, b := range t {
		for i := types.Count(0); i < b.Count; i++ {
			out = append(out, b.Value)
		}
	}

	return out
}

// Tabulate builds a Table from a flat sequence. Buckets appear in first-seen
// order. Each NaN gets its own bucket since NaN never equals itself.
func Tabulate[T types.Number](seq iter.Seq[T]) Table[T] {
	var t Table[T]
	index := make(map[T]int)
	for v := range seq {
		if i, ok := index[v]; ok {
			t[i].Count++
			continue
		}
		index[v] = len(t)
		t = append(t, types.Frequency[T]{Value: v, Count: 1})
	}

	return t
}

// FromMap builds a Table from a value → count map, sorted by ascending value.
func FromMap[T types.Number](m map[T]types.Count) Table[T] {
	t := make(Table[T], 0, len(m))
	for v, c := range m {
		t = append(t, types.Frequency[T]{Value: v, Count: c})
	}
	slices.SortFunc(t, func(a, b types.Frequency[T]) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return t
}

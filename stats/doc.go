// SPDX-License-Identifier: MIT

// Package stats attaches aggregate numeric operations to any re-iterable
// collection of numbers.
//
// 🚀 What does it give you?
//
//	Wrap anything that can hand out a fresh iter.Seq[E] and you get:
//	  • Count, NonZeroCount, NonZeroCountIntoItem
//	  • Sum (total: an empty collection sums to 0)
//	  • Mean (panics on empty) / CheckedMean (reports ok=false) / MeanErr
//	  • Variance, StdDev (population; errors instead of panics)
//	  • Min, Max, Range (panic on empty) and their Checked* forms
//	  • Summarize — every aggregate in one Summary value
//
// ✨ Conformance instead of inheritance:
//
//	Any type with an All() iter.Seq[E] method satisfies Collection[E].
//	stats.New(c) wraps it; the algorithms are written once, as the generic
//	package-level functions (stats.Sum(seq), stats.Variance(seq), ...) that
//	the Stats[E] methods delegate to. Slice[E] and Seq[E] adapt plain slices
//	and iterator functions.
//
// ⚙️ Usage:
//
//	s := stats.FromSlice([]float64{1, 2, 3})
//	s.Mean()            // 2
//	v, err := s.Variance() // 0.666…, nil
//	s.Range()           // 2
//
//	empty := stats.FromSlice([]int{})
//	_, ok := empty.CheckedMean()    // ok == false
//	_, err = empty.Variance()       // statserr.ErrEmptyCollection
//
// Numeric notes:
//   - Integer element types use integer division: Mean of [1 2 3 4] is 2.
//   - The count is converted into E through numconv.FromCount; a count with no
//     exact representation fails with CouldNotConvert{count, item}.
//   - StdDev takes the root in float64 and converts back (integers truncate).
//   - Min/Max keep the first extremal element; NaN is skipped whenever a
//     non-NaN element exists.
//   - Sum follows Go arithmetic: integer overflow wraps.
//
// Every operation is a pure function of the collection. Multi-pass operations
// (Mean, Variance, StdDev) iterate All() several times and rely on each
// traversal yielding the same sequence.
package stats

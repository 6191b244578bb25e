// SPDX-License-Identifier: MIT

// Package freq is the weighted counterpart of package stats. It aggregates
// frequency tables, collections of (Value, Count) pairs where Count is the
// number of occurrences of Value, without materializing the expanded sequence.
//
// Weighted formulas (n = Σ countᵢ, the reconstructed item count):
//
//	Sum      = Σ valueᵢ·countᵢ
//	Mean     = Sum / n
//	Variance = Σ countᵢ·(valueᵢ − Mean)² / n
//	StdDev   = √Variance
//	Min/Max  = extremes of valueᵢ, weights ignored
//
// Count returns the number of buckets, TotalCount the number of items. A table
// whose buckets all have Count 0 is empty for Mean/Variance/StdDev but still
// has a Min and Max. The per-bucket countᵢ → T conversion and the n → T
// conversion go through numconv and fail with CouldNotConvert{count, item}.
//
// Round-trip guarantee: for a table t, freq.New(t).Mean() equals
// stats.FromSlice(t.Expand()).Mean(), and likewise Variance and StdDev (up to
// floating-point association).
//
// Usage:
//
//	t := freq.Table[float64]{{Value: 1, Count: 2}, {Value: 3, Count: 1}} // [1 1 3]
//	f := freq.New(t)
//	f.Mean()            // 5/3
//	f.TotalCount()      // 3, nil
//	f.Count()           // 2 buckets
package freq

// Package lvstats is a generic statistics toolkit: attach aggregate numeric
// operations to any re-iterable collection of numbers, or of (value, count)
// frequency buckets, without re-deriving the algorithms per collection type.
//
// 🚀 What is inside?
//
//	types/    — Count (the counting type), Number constraints, Frequency pair
//	statserr/ — the closed error taxonomy: EmptyCollection, CouldNotConvert{from,to}
//	numconv/  — exact, fallible conversions between count, float64 and element types
//	stats/    — Count, Sum, Mean/CheckedMean, Variance, StdDev, Min, Max, Range
//	freq/     — the weighted counterparts over frequency tables
//	cmd/lvstats — command-line summaries of numbers read from a file or stdin
//
// ✨ Why lvstats?
//
//   - Generic – one algorithm per aggregate for every integer and float type
//   - Honest – a count that does not fit the element type is an error, never
//     a silent truncation
//   - Explicit duals – Mean panics on empty input, CheckedMean reports it
//   - Pure Go – stateless, allocation-light, no goroutines
//
// Quick example:
//
//	s := stats.FromSlice([]float64{1, 2, 3})
//	s.Mean()             // 2
//	v, _ := s.Variance() // 2/3
//
//	f := freq.New(freq.Table[float64]{{Value: 1, Count: 2}, {Value: 3, Count: 1}})
//	f.Mean()             // 5/3, the mean of [1 1 3]
//
//	go get github.com/katalvlaran/lvstats
package lvstats

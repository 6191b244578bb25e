// SPDX-License-Identifier: MIT

// Package types holds the named aliases shared by the stats and freq
// capability sets, so callers can spell out signatures without relying on
// type inference.
//
// What lives here:
//   - Count      — the counting type used for every cardinality (uint).
//   - Number     — the element constraint: any integer or floating type.
//   - Integer, Signed, Unsigned, Float — narrower constraint aliases.
//   - Frequency  — a (Value, Count) pair, the element of a frequency table.
//
// Failure vocabulary:
//
//	Every fallible operation in lvstats returns (T, error) where the error,
//	when non-nil, is a statserr.StatsError value. That pair is the Go
//	rendering of a Result alias fixed to StatsError.
package types

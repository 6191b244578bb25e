// SPDX-License-Identifier: MIT

package types

import "golang.org/x/exp/constraints"

// Count is the counting type: the number of elements in a collection, or
// the number of occurrences recorded by a frequency bucket.
// It is unsigned, so a negative cardinality cannot be expressed.
type Count = uint

// Signed matches every signed integer type, including named ones (~int64 ...).
type Signed = constraints.Signed

// Unsigned matches every unsigned integer type.
type Unsigned = constraints.Unsigned

// Integer matches Signed | Unsigned.
type Integer = constraints.Integer

// Float matches ~float32 | ~float64.
type Float = constraints.Float

// Number is the element constraint for both capability sets.
// It provides ordering (<, >) and arithmetic (+, -, *, /), with integer
// division for integer element types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Frequency is one bucket of a frequency table: Value occurred Count times.
//
// Example:
//
//	// [1, 1, 3] as a table
//	t := []types.Frequency[int]{{Value: 1, Count: 2}, {Value: 3, Count: 1}}
type Frequency[T Number] struct {
	Value T
	Count Count
}

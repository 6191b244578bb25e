// SPDX-License-Identifier: MIT

package numconv

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/katalvlaran/lvstats/statserr"
	"github.com/katalvlaran/lvstats/types"
)

// countLimit is 2^UintSize as float64: the first value types.Count cannot hold.
var countLimit = math.Ldexp(1, bits.UintSize)

var (
	errCountToItem   = statserr.NewCouldNotConvert(statserr.DataCount, statserr.DataItem)
	errItemToCount   = statserr.NewCouldNotConvert(statserr.DataItem, statserr.DataCount)
	errFloat64ToItem = statserr.NewCouldNotConvert(statserr.DataFloat64, statserr.DataItem)
)

// IsFloat reports whether E is a floating-point type.
func IsFloat[E types.Number]() bool {
	var one E = 1

	return one/2 != 0 // integer division truncates to 0
}

// IsSigned reports whether E can hold negative values (signed integers and floats).
func IsSigned[E types.Number]() bool {
	var zero E

	return zero-1 < zero // unsigned wraps to its maximum
}

// BitSize returns the width of E in bits.
func BitSize[E types.Number]() int {
	var zero E

	return int(unsafe.Sizeof(zero)) * 8
}

// FromCount converts a count into E exactly.
//
// Errors:
//   - CouldNotConvert{DataCount, DataItem} when n has no exact representation in E.
//
// Example:
//
//	v, err := numconv.FromCount[float64](3) // 3.0, nil
//	_, err = numconv.FromCount[int8](128)   // CouldNotConvert{count, item}
func FromCount[E types.Number](n types.Count) (E, error) {
	v := E(n)

	if IsFloat[E]() {
		// v is n rounded to E's precision; exact iff it maps back to n.
		f := float64(v)
		if f >= countLimit || types.Count(f) != n {
			return 0, errCountToItem
		}

		return v, nil
	}

	// Integer conversion wraps: a sign flip or lost high bits shows up here.
	if v < 0 || types.Count(v) != n {
		return 0, errCountToItem
	}

	return v, nil
}

// ToCount converts v into the counting type exactly.
//
// Errors:
//   - CouldNotConvert{DataItem, DataCount} for negative, NaN, infinite,
//     fractional or too large values.
func ToCount[E types.Number](v E) (types.Count, error) {
	if v != v || v < 0 { // NaN or negative
		return 0, errItemToCount
	}

	if IsFloat[E]() {
		f := float64(v)
		if f >= countLimit || f != math.Trunc(f) {
			return 0, errItemToCount
		}

		return types.Count(f), nil
	}

	c := types.Count(v)
	if E(c) != v {
		return 0, errItemToCount
	}

	return c, nil
}

// ToFloat64 converts v into the nearest float64. It never fails; integers
// wider than 53 bits may lose low-order precision.
func ToFloat64[E types.Number](v E) float64 {
	return float64(v)
}

// FromFloat64 converts f into E.
//
// Behavior:
//   - Float E: f is rounded to E's precision; NaN and ±Inf pass through.
//   - Integer E: f is truncated toward zero.
//
// Errors:
//   - CouldNotConvert{DataFloat64, DataItem} when a finite f lies outside the
//     finite range of a float E, or for integer E when f is NaN, ±Inf or the
//     truncated value lies outside E's range.
func FromFloat64[E types.Number](f float64) (E, error) {
	if IsFloat[E]() {
		if BitSize[E]() == 32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return 0, errFloat64ToItem
		}

		return E(f), nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errFloat64ToItem
	}

	t := math.Trunc(f)
	lo, hi := intRange[E]()
	if t < lo || t >= hi {
		return 0, errFloat64ToItem
	}

	return E(t), nil
}

// intRange returns the half-open range [lo, hi) of an integer type E as float64.
// Both bounds are powers of two and therefore exact.
func intRange[E types.Number]() (lo, hi float64) {
	n := BitSize[E]()
	if IsSigned[E]() {
		return -math.Ldexp(1, n-1), math.Ldexp(1, n-1)
	}

	return 0, math.Ldexp(1, n)
}

// SPDX-License-Identifier: MIT

// Package numconv is the numeric conversion layer of lvstats: safe, fallible
// conversion between the counting type (types.Count), float64 and any element
// type E satisfying types.Number.
//
// Conversion policy (exact round-trip):
//
//	FromCount   count → E        exact, or CouldNotConvert{count, item}
//	ToCount     E → count        exact, or CouldNotConvert{item, count}
//	ToFloat64   E → float64      total, nearest float
//	FromFloat64 float64 → E      integers truncate toward zero; NaN, ±Inf and
//	                             out-of-range values fail with CouldNotConvert{float64, item}
//
// "Exact" means the destination value converts back to the source value
// unchanged. Small counts into float32/float64 therefore succeed; 2^24+1 into
// float32, 2^53+1 into float64 or 128 into int8 fail. Nothing saturates.
//
// Element-type facts (IsFloat, IsSigned, BitSize) are derived from arithmetic
// on the type parameter, so named types such as `type Celsius float32` are
// classified by their underlying type.
package numconv

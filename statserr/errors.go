// SPDX-License-Identifier: MIT

package statserr

import (
	"errors"
	"fmt"
)

// Kind discriminates the two failure kinds.
type Kind uint8

const (
	// EmptyCollection marks an aggregate that is undefined for zero elements.
	EmptyCollection Kind = iota + 1

	// CouldNotConvert marks a failed numeric conversion.
	CouldNotConvert
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case EmptyCollection:
		return "EmptyCollection"
	case CouldNotConvert:
		return "CouldNotConvert"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// DataType names the types a conversion may run between.
// The zero value means "unspecified" and is used by the ErrCouldNotConvert
// sentinel to match any conversion pair.
type DataType uint8

const (
	// DataCount is the counting type (types.Count).
	DataCount DataType = iota + 1

	// DataFloat64 is float64, the intermediate of the square-root path.
	DataFloat64

	// DataItem is the element type of the collection.
	DataItem
)

// String returns a short lowercase name used in error messages.
func (d DataType) String() string {
	switch d {
	case DataCount:
		return "count"
	case DataFloat64:
		return "float64"
	case DataItem:
		return "item"
	default:
		return "unspecified"
	}
}

// StatsError is the only error type returned by lvstats operations.
// It is comparable; two values are equal iff Kind, From and To are equal.
// From and To are meaningful only for CouldNotConvert.
type StatsError struct {
	Kind Kind
	From DataType
	To   DataType
}

var (
	// ErrEmptyCollection is returned when an aggregate is requested over zero elements.
	ErrEmptyCollection = StatsError{Kind: EmptyCollection}

	// ErrCouldNotConvert matches, via errors.Is, every CouldNotConvert error
	// regardless of its From/To pair. It is never returned directly.
	ErrCouldNotConvert = StatsError{Kind: CouldNotConvert}
)

// NewCouldNotConvert builds the CouldNotConvert error for the from→to pair.
func NewCouldNotConvert(from, to DataType) StatsError {
	return StatsError{Kind: CouldNotConvert, From: from, To: to}
}

// Error implements error. Messages carry the "stats: " prefix.
func (e StatsError) Error() string {
	switch e.Kind {
	case EmptyCollection:
		return "stats: collection is empty"
	case CouldNotConvert:
		return fmt.Sprintf("stats: could not convert from %s to %s", e.From, e.To)
	default:
		return "stats: unknown error"
	}
}

// Is reports whether e matches target. Besides exact equality, a
// CouldNotConvert target with unspecified From/To matches any conversion failure.
func (e StatsError) Is(target error) bool {
	t, ok := target.(StatsError)
	if !ok {
		return false
	}
	if t == e {
		return true
	}

	return t.Kind == CouldNotConvert && e.Kind == CouldNotConvert &&
		t.From == 0 && t.To == 0
}

// As extracts a StatsError from err. It returns false for nil or foreign errors.
func As(err error) (StatsError, bool) {
	var se StatsError
	if errors.As(err, &se) {
		return se, true
	}

	return StatsError{}, false
}

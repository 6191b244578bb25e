// SPDX-License-Identifier: MIT

package statserr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/statserr"
)

// TestStatsError_Equality verifies values compare by Kind/From/To.
func TestStatsError_Equality(t *testing.T) {
	a := statserr.NewCouldNotConvert(statserr.DataCount, statserr.DataItem)
	b := statserr.NewCouldNotConvert(statserr.DataCount, statserr.DataItem)
	c := statserr.NewCouldNotConvert(statserr.DataFloat64, statserr.DataItem)

	assert.Equal(t, a, b)
	assert.True(t, a == b, "same pair must be ==")
	assert.False(t, a == c, "different pair must not be ==")
	assert.NotEqual(t, statserr.ErrEmptyCollection, a)
}

// TestStatsError_Messages checks the human-readable formatting.
func TestStatsError_Messages(t *testing.T) {
	assert.Equal(t, "stats: collection is empty", statserr.ErrEmptyCollection.Error())
	assert.Equal(t, "stats: could not convert from count to item",
		statserr.NewCouldNotConvert(statserr.DataCount, statserr.DataItem).Error())
	assert.Equal(t, "stats: could not convert from float64 to item",
		statserr.NewCouldNotConvert(statserr.DataFloat64, statserr.DataItem).Error())
	assert.Equal(t, "stats: unknown error", statserr.StatsError{}.Error())
}

// TestStatsError_Is covers the wildcard CouldNotConvert sentinel.
func TestStatsError_Is(t *testing.T) {
	conv := statserr.NewCouldNotConvert(statserr.DataItem, statserr.DataCount)

	assert.ErrorIs(t, conv, statserr.ErrCouldNotConvert)
	assert.ErrorIs(t, conv, conv)
	assert.NotErrorIs(t, conv, statserr.ErrEmptyCollection)
	assert.NotErrorIs(t, statserr.ErrEmptyCollection, statserr.ErrCouldNotConvert)
	assert.ErrorIs(t, statserr.ErrEmptyCollection, statserr.ErrEmptyCollection)

	// A specific pair does not match a different specific pair.
	other := statserr.NewCouldNotConvert(statserr.DataCount, statserr.DataItem)
	assert.NotErrorIs(t, conv, other)

	// Wrapping by a caller keeps errors.Is working.
	wrapped := fmt.Errorf("load: %w", conv)
	assert.ErrorIs(t, wrapped, statserr.ErrCouldNotConvert)
	assert.False(t, errors.Is(wrapped, statserr.ErrEmptyCollection))
}

// TestAs recovers the typed value from a wrapped error.
func TestAs(t *testing.T) {
	se, ok := statserr.As(fmt.Errorf("ctx: %w", statserr.ErrEmptyCollection))
	require.True(t, ok)
	assert.Equal(t, statserr.EmptyCollection, se.Kind)

	_, ok = statserr.As(errors.New("foreign"))
	assert.False(t, ok)

	_, ok = statserr.As(nil)
	assert.False(t, ok)
}

func TestKindAndDataTypeStrings(t *testing.T) {
	assert.Equal(t, "EmptyCollection", statserr.EmptyCollection.String())
	assert.Equal(t, "CouldNotConvert", statserr.CouldNotConvert.String())
	assert.Equal(t, "Kind(9)", statserr.Kind(9).String())
	assert.Equal(t, "unspecified", statserr.DataType(0).String())
}

package combinations_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/combinat/combinations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestList_MatchesGenerator cross-checks the eager builder against the lazy
// generator on a mid-sized space: same results, same order.
func TestList_MatchesGenerator(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7}
	const k = 4

	eager, err := combinations.List(src, k)
	require.NoError(t, err)

	gen, err := combinations.New(src, k)
	require.NoError(t, err)

	var lazy [][]int
	for view, ok := gen.Next(); ok; view, ok = gen.Next() {
		lazy = append(lazy, slices.Clone(view))
	}

	assert.Equal(t, lazy, eager, "List and Generator must agree on results and order")
	assert.EqualValues(t, combinations.Count(len(src), k).Int64(), len(eager))
}

// TestList_InvalidSize verifies the same size validation as the generator.
func TestList_InvalidSize(t *testing.T) {
	_, err := combinations.List([]int{1, 2}, 3)
	assert.ErrorIs(t, err, combinations.ErrInvalidSize)

	_, err = combinations.List([]int{1, 2}, -1)
	assert.ErrorIs(t, err, combinations.ErrInvalidSize)
}

// TestList_ZeroK verifies k=0 materializes to an empty result set.
func TestList_ZeroK(t *testing.T) {
	got, err := combinations.List([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestList_ResultSetBeyondInt64 verifies that parameters whose C(n,k)
// overflows int64 — legal sizes, but a result set no slice could hold —
// fail with ErrResultSetTooLarge instead of panicking on a truncated
// capacity. C(68,34) ≈ 2.8e19 > MaxInt64.
func TestList_ResultSetBeyondInt64(t *testing.T) {
	require.NotPanics(t, func() {
		_, err := combinations.List(make([]int, 68), 34)
		assert.ErrorIs(t, err, combinations.ErrResultSetTooLarge)
	})
}

// TestList_RecursionLimit verifies the depth ceiling: k beyond MaxListK
// fails with ErrRecursionLimit rather than recursing.
func TestList_RecursionLimit(t *testing.T) {
	src := make([]int, combinations.MaxListK+2)
	_, err := combinations.List(src, combinations.MaxListK+1)
	assert.ErrorIs(t, err, combinations.ErrRecursionLimit)

	// At the ceiling itself the call is legal (k == n keeps the result
	// set to a single combination, so this stays cheap).
	got, err := combinations.List(src[:combinations.MaxListK], combinations.MaxListK)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

package combinations

import "errors"

var (
	// ErrInvalidSize indicates k is negative or exceeds the source length.
	ErrInvalidSize = errors.New("combinations: subset size must satisfy 0 <= k <= len(src)")
	// ErrRecursionLimit indicates k exceeds MaxListK, the recursion-depth
	// ceiling of the eager List builder. Fatal to that call only.
	ErrRecursionLimit = errors.New("combinations: subset size exceeds MaxListK recursion ceiling")
	// ErrResultSetTooLarge indicates C(n,k) exceeds the addressable slice
	// length, so the eager List builder cannot materialize the result set.
	// The lazy Generator has no such limit.
	ErrResultSetTooLarge = errors.New("combinations: result set exceeds addressable slice length")
)

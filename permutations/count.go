package permutations

import "math/big"

// Count returns n!, the number of full orderings of n elements.
// Negative n yields zero.
func Count(n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}

	return new(big.Int).MulRange(1, int64(n))
}

// KCount returns P(n,k) = n!/(n-k)!, the number of ordered arrangements of
// k elements drawn from n. Out-of-range parameters yield zero.
func KCount(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return big.NewInt(0)
	}

	return new(big.Int).MulRange(int64(n-k+1), int64(n))
}

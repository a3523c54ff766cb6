package bitmask

import "math/bits"

// Indices converts a bitmask into the ascending positions of its set bits.
// Pure utility: allocates a fresh slice on every call, shares no state
// with any cursor.
func Indices(mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		out = append(out, bits.TrailingZeros64(mask))
		mask &= mask - 1 // clear the lowest set bit
	}

	return out
}

// Subset projects a membership mask through src, returning the selected
// elements in source order. Bits at or beyond len(src) are ignored, as are
// positions beyond the uint64 word.
func Subset[T any](src []T, mask uint64) []T {
	out := make([]T, 0, bits.OnesCount64(mask))
	for i, v := range src {
		if i > MaxBits {
			break
		}
		if mask&(1<<uint(i)) != 0 {
			out = append(out, v)
		}
	}

	return out
}

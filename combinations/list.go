package combinations

import "slices"

// MaxListK caps the recursion depth of List. The eager builder recurses
// once per chosen element, so k bounds stack usage directly; requests
// beyond the ceiling fail with ErrRecursionLimit instead of risking
// stack exhaustion.
const MaxListK = 64

// maxListHint caps the capacity pre-allocated for the result slice.
// Larger spaces still enumerate, growing through append; the hint only
// saves reallocations on the common small cases.
const maxListHint = 1 << 20

// List eagerly materializes every k-element subset of src, in the same
// lexicographic order Generator produces. It is the simple recursive
// baseline: prefer Generator for anything but small, throwaway spaces,
// since List allocates all C(n,k) results up front.
//
// Errors: ErrInvalidSize when k < 0 or k > len(src); ErrRecursionLimit
// when k > MaxListK; ErrResultSetTooLarge when C(n,k) does not fit in a
// slice length (int), since such a result set could never be returned.
func List[T any](src []T, k int) ([][]T, error) {
	n := len(src)
	if k < 0 || k > n {
		return nil, ErrInvalidSize
	}
	if k > MaxListK {
		return nil, ErrRecursionLimit
	}
	if k == 0 {
		return nil, nil
	}

	total := Count(n, k)
	if !total.IsInt64() || int64(int(total.Int64())) != total.Int64() {
		return nil, ErrResultSetTooLarge
	}
	hint := int(total.Int64())
	if hint > maxListHint {
		hint = maxListHint
	}

	out := make([][]T, 0, hint)
	buf := make([]T, 0, k)

	// Standard backtracking: pick a start index at each level, recurse
	// over [start, n), rewind the shared buffer on the way out.
	var walk func(start int)
	walk = func(start int) {
		if len(buf) == k {
			out = append(out, slices.Clone(buf))

			return
		}
		for i := start; i <= n-(k-len(buf)); i++ {
			buf = append(buf, src[i])
			walk(i + 1)
			buf = buf[:len(buf)-1]
		}
	}
	walk(0)

	return out, nil
}

package permutations

import "errors"

// ErrInvalidSize indicates k is negative or exceeds the source length
// when constructing a KGenerator.
var ErrInvalidSize = errors.New("permutations: arrangement size must satisfy 0 <= k <= len(src)")

package combinations

import (
	"iter"
	"math/big"
	"slices"
)

// Generator is a lazy cursor over all k-element subsets of a source
// sequence, emitted in lexicographic order of their index tuples.
//
// Algorithm Outline:
//  1. Maintain an index vector idx[0..k) initialized to 0,1,...,k-1.
//  2. The first Next returns the initial state directly.
//  3. Each later Next scans right to left for the first index i with
//     headroom (idx[i] < n-k+i), increments it, and resets the suffix
//     idx[i+1..k) to consecutive values idx[i]+1, idx[i]+2, ...
//  4. If no index has headroom, the space is exhausted.
//
// The generator borrows src read-only for its whole lifetime; src must not
// be mutated while the generator is in use. A single Generator is not safe
// for concurrent Next calls — give each goroutine its own instance.
//
// Complexity:
//
//	Time   = O(k) per step, C(n,k) steps
//	Memory = O(k) (index vector + emission buffer), zero per step
type Generator[T any] struct {
	src  []T   // borrowed source, never mutated
	idx  []int // strictly increasing index vector
	out  []T   // reusable emission buffer, aliased by Next
	n, k int

	started bool
	done    bool
}

// New constructs a Generator over all k-element subsets of src.
// Returns ErrInvalidSize when k < 0 or k > len(src).
//
// k == 0 is permitted and produces a generator that is already exhausted:
// zero results, not an error.
func New[T any](src []T, k int) (*Generator[T], error) {
	n := len(src)
	if k < 0 || k > n {
		return nil, ErrInvalidSize
	}
	g := &Generator[T]{
		src: src,
		idx: make([]int, k),
		out: make([]T, k),
		n:   n,
		k:   k,
	}
	g.Reset()

	return g, nil
}

// Reset rewinds the generator to its initial state without reallocating,
// so the same combinatorial space can be enumerated again.
func (g *Generator[T]) Reset() {
	for i := range g.idx {
		g.idx[i] = i
	}
	g.started = false
	g.done = g.k == 0
}

// Next returns a view of the current combination and advances the cursor.
// The second result is false once the space is exhausted.
//
// The returned slice aliases an internal buffer that the next call
// overwrites; copy it if it must survive the following Next.
func (g *Generator[T]) Next() ([]T, bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true
	} else if !g.advance() {
		g.done = true

		return nil, false
	}
	for i, ix := range g.idx {
		g.out[i] = g.src[ix]
	}

	return g.out, true
}

// advance steps the index vector to its lexicographic successor.
// Reports false when the current state is the final combination.
func (g *Generator[T]) advance() bool {
	i := g.k - 1
	for i >= 0 && g.idx[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		return false
	}
	g.idx[i]++
	for j := i + 1; j < g.k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}

	return true
}

// Indices returns the index tuple backing the most recent Next result.
// Like Next's view, it aliases mutable generator state and is valid only
// until the next advance.
func (g *Generator[T]) Indices() []int {
	return g.idx
}

// All adapts the generator to a range-over-func sequence. Unlike Next,
// every yielded slice is an owned clone, safe to retain.
func (g *Generator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for v, ok := g.Next(); ok; v, ok = g.Next() {
			if !yield(slices.Clone(v)) {
				return
			}
		}
	}
}

// Count returns C(n,k), the number of k-element subsets of n elements.
// Out-of-range parameters (k < 0, k > n, n < 0) yield zero.
func Count(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return big.NewInt(0)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

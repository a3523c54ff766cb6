package permutations

import (
	"iter"
	"slices"
)

// KGenerator is a lazy cursor over all ordered arrangements of k elements
// drawn from an n-element source — P(n,k) = n!/(n-k)! results, each of
// length k with no element repeated.
//
// Algorithm Outline (cycle countdown, as in itertools.permutations):
//  1. Maintain indices[0..n), an index permutation starting at identity,
//     and cycles[0..k) seeded with n, n-1, ..., n-k+1.
//  2. To advance, walk i from k-1 down to 0 and decrement cycles[i]:
//     - if it hits zero, rotate indices[i..] one position left (the freed
//       index moves to the end), reset cycles[i] to n-i, and keep walking
//       leftward;
//     - otherwise swap indices[i] with indices[n-cycles[i]], emit the
//       first k indices, and stop.
//  3. If the walk falls off the left end, the space is exhausted.
//
// The source is borrowed read-only; the emitted view aliases a reused
// buffer. Not safe for concurrent Next calls.
//
// Complexity:
//
//	Time   = O(n) worst case per step, P(n,k) steps
//	Memory = O(n + k), zero allocation per step
type KGenerator[T any] struct {
	src     []T   // borrowed source, never mutated
	indices []int // length-n index permutation
	cycles  []int // length-k cycle countdowns
	out     []T   // reusable emission buffer, aliased by Next
	n, k    int

	started bool
	done    bool
}

// NewK constructs a KGenerator over arrangements of k elements from src.
// Returns ErrInvalidSize when k < 0 or k > len(src). k == 0 yields exactly
// one result, the empty arrangement, matching P(n,0) = 1.
func NewK[T any](src []T, k int) (*KGenerator[T], error) {
	n := len(src)
	if k < 0 || k > n {
		return nil, ErrInvalidSize
	}
	g := &KGenerator[T]{
		src:     src,
		indices: make([]int, n),
		cycles:  make([]int, k),
		out:     make([]T, k),
		n:       n,
		k:       k,
	}
	g.Reset()

	return g, nil
}

// Reset rewinds the cursor to the identity arrangement without
// reallocating.
func (g *KGenerator[T]) Reset() {
	for i := range g.indices {
		g.indices[i] = i
	}
	for i := range g.cycles {
		g.cycles[i] = g.n - i
	}
	g.started = false
	g.done = false
}

// Next returns a view of the current arrangement and advances the cursor.
// The view aliases the internal buffer and is overwritten by the
// following call.
func (g *KGenerator[T]) Next() ([]T, bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true
		g.emit()

		return g.out, true
	}

	for i := g.k - 1; i >= 0; i-- {
		g.cycles[i]--
		if g.cycles[i] == 0 {
			// Rotate the freed index to the tail and rearm the cycle.
			first := g.indices[i]
			copy(g.indices[i:], g.indices[i+1:])
			g.indices[g.n-1] = first
			g.cycles[i] = g.n - i

			continue
		}
		j := g.n - g.cycles[i]
		g.indices[i], g.indices[j] = g.indices[j], g.indices[i]
		g.emit()

		return g.out, true
	}
	g.done = true

	return nil, false
}

// emit projects the first k indices through the source into the emission
// buffer.
func (g *KGenerator[T]) emit() {
	for i := 0; i < g.k; i++ {
		g.out[i] = g.src[g.indices[i]]
	}
}

// All adapts the generator to a range-over-func sequence of owned clones.
func (g *KGenerator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for v, ok := g.Next(); ok; v, ok = g.Next() {
			if !yield(slices.Clone(v)) {
				return
			}
		}
	}
}

package permutations

import (
	"cmp"
	"iter"
	"slices"
)

// Generator is a lazy cursor over all n! orderings of a sequence, emitted
// in lexicographic order.
//
// Algorithm Outline (Knuth, TAOCP 4A, Algorithm L):
//  1. Work on a sorted private copy of the source; the sorted order is the
//     first permutation.
//  2. To advance, find the largest k with a[k] < a[k+1] (scanning right to
//     left). If none exists the sequence was reverse-sorted: exhausted.
//  3. Find the largest l > k with a[k] < a[l]; swap a[k] and a[l].
//  4. Reverse the suffix a[k+1..]. The result is the immediate
//     lexicographic successor.
//
// New copies the source (unlike the other cursors in this module, which
// borrow): the generator permutes its buffer in place, and copying keeps
// the caller's slice untouched and shareable.
//
// Complexity:
//
//	Time   = O(n) worst case per step (amortized far less), n! steps
//	Memory = O(n), zero allocation per step
type Generator[T cmp.Ordered] struct {
	buf     []T // owned working copy, permuted in place and aliased by Next
	started bool
	done    bool
}

// New constructs a Generator over all orderings of src. An empty src
// yields a generator that is already exhausted. There is no error path.
func New[T cmp.Ordered](src []T) *Generator[T] {
	g := &Generator[T]{buf: slices.Clone(src)}
	g.Reset()

	return g
}

// Reset re-sorts the working buffer and rewinds to the first permutation.
func (g *Generator[T]) Reset() {
	slices.Sort(g.buf)
	g.started = false
	g.done = len(g.buf) == 0
}

// Next returns a view of the current permutation and advances the cursor.
// The first call returns the sorted order; the final result is the
// reverse-sorted order. The view aliases the internal buffer and is
// rearranged by the following call.
func (g *Generator[T]) Next() ([]T, bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true

		return g.buf, true
	}

	// Algorithm L, steps 2-4.
	a := g.buf
	k := len(a) - 2
	for k >= 0 && a[k] >= a[k+1] {
		k--
	}
	if k < 0 {
		g.done = true

		return nil, false
	}
	l := len(a) - 1
	for a[l] <= a[k] {
		l--
	}
	a[k], a[l] = a[l], a[k]
	slices.Reverse(a[k+1:])

	return a, true
}

// All adapts the generator to a range-over-func sequence of owned clones.
func (g *Generator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for v, ok := g.Next(); ok; v, ok = g.Next() {
			if !yield(slices.Clone(v)) {
				return
			}
		}
	}
}

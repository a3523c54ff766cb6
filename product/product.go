package product

import "iter"

// Pair is one result of a Cartesian product: an element from each source.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Generator is a row-major cursor over the cross product of two borrowed
// sequences. Either sequence being empty yields a generator that is born
// exhausted. Not safe for concurrent Next calls; the sources are never
// mutated and may be shared freely.
type Generator[A, B any] struct {
	first  []A
	second []B
	i, j   int
	done   bool
}

// New constructs a Generator over first × second. There is no error path.
func New[A, B any](first []A, second []B) *Generator[A, B] {
	return &Generator[A, B]{
		first:  first,
		second: second,
		done:   len(first) == 0 || len(second) == 0,
	}
}

// Next returns the current pair and advances the cursor, j fast, i slow.
// The second result is false once all |first|·|second| pairs are emitted.
func (g *Generator[A, B]) Next() (Pair[A, B], bool) {
	if g.done || g.i >= len(g.first) {
		g.done = true

		return Pair[A, B]{}, false
	}
	p := Pair[A, B]{First: g.first[g.i], Second: g.second[g.j]}
	g.j++
	if g.j == len(g.second) {
		g.j = 0
		g.i++
	}

	return p, true
}

// Reset rewinds the cursor to the first pair.
func (g *Generator[A, B]) Reset() {
	g.i, g.j = 0, 0
	g.done = len(g.first) == 0 || len(g.second) == 0
}

// All adapts the cursor to a range-over-func sequence of pairs.
func (g *Generator[A, B]) All() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		for p, ok := g.Next(); ok; p, ok = g.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

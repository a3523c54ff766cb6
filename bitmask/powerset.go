package bitmask

import "iter"

// PowerSet is a counting cursor over all 2^n subset-membership bitmaps of
// an n-element universe, from 0 (empty set) to 1<<n - 1 (full set).
//
// n > MaxBits yields a generator that is born exhausted rather than an
// error — the same silent overflow guard as Combinations.
type PowerSet struct {
	cur   uint64
	limit uint64
	valid bool
	done  bool
}

// NewPowerSet constructs a cursor over the power set of an n-element
// universe. n = 0 is legal and yields the single empty-set mask.
func NewPowerSet(n int) *PowerSet {
	if n < 0 || n > MaxBits {
		return &PowerSet{done: true}
	}

	return &PowerSet{limit: 1 << uint(n), valid: true}
}

// NewPowerSetOf constructs a cursor sized to src, for callers that hold
// the concrete elements and will project masks through Subset.
func NewPowerSetOf[T any](src []T) *PowerSet {
	return NewPowerSet(len(src))
}

// Valid reports whether the constructor accepted its parameters.
func (p *PowerSet) Valid() bool {
	return p.valid
}

// Next returns the current membership mask and advances. The second result
// is false once all 2^n masks have been emitted.
func (p *PowerSet) Next() (uint64, bool) {
	if p.done || p.cur >= p.limit {
		p.done = true

		return 0, false
	}
	mask := p.cur
	p.cur++

	return mask, true
}

// Reset rewinds a valid cursor to the empty-set mask.
func (p *PowerSet) Reset() {
	if !p.valid {
		return
	}
	p.cur = 0
	p.done = false
}

// All adapts the cursor to a range-over-func sequence of masks.
func (p *PowerSet) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for m, ok := p.Next(); ok; m, ok = p.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

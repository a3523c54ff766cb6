package bitmask

import "iter"

// MaxBits is the widest universe a uint64 cursor can enumerate. One bit of
// headroom below the word size keeps the 1<<n limit representable.
const MaxBits = 63

// Combinations is a constant-time cursor over every n-bit value with
// exactly k bits set, in strictly increasing order.
//
// Algorithm Outline (Gosper's hack):
//  1. Seed the cursor with the k lowest bits set: (1<<k)-1.
//  2. Each step captures the cursor as the result, then computes the next
//     value with the same popcount:
//     c    = x & -x           // lowest set bit
//     r    = x + c            // carry the lowest block up
//     next = ((r^x)>>2)/c | r // refill the low end
//  3. Stop once the cursor reaches 1<<n.
//
// Degenerate parameters (k <= 0, k > n, n > MaxBits) yield a generator
// that is born exhausted — see the package documentation on the silent
// overflow guard.
type Combinations struct {
	cur   uint64
	first uint64 // seed mask, kept for Reset
	limit uint64
	valid bool
	done  bool
}

// NewCombinations constructs a cursor over the C(n,k) bit patterns of
// width n with popcount k. There is no error path; invalid parameters
// produce an exhausted generator (check Valid).
func NewCombinations(n, k int) *Combinations {
	if k <= 0 || k > n || n > MaxBits {
		return &Combinations{done: true}
	}
	first := uint64(1)<<uint(k) - 1

	return &Combinations{
		cur:   first,
		first: first,
		limit: 1 << uint(n),
		valid: true,
	}
}

// Valid reports whether the constructor accepted its parameters. An
// invalid generator behaves exactly like an exhausted one.
func (c *Combinations) Valid() bool {
	return c.valid
}

// Next returns the current bitmask and advances the cursor via Gosper's
// successor. The second result is false once the space is exhausted.
func (c *Combinations) Next() (uint64, bool) {
	if c.done || c.cur >= c.limit {
		c.done = true

		return 0, false
	}
	mask := c.cur

	lsb := c.cur & -c.cur
	r := c.cur + lsb
	c.cur = ((r^mask)>>2)/lsb | r

	return mask, true
}

// Reset rewinds a valid cursor to the smallest k-bit mask. Invalid
// generators stay exhausted.
func (c *Combinations) Reset() {
	if !c.valid {
		return
	}
	c.cur = c.first
	c.done = false
}

// All adapts the cursor to a range-over-func sequence of masks.
func (c *Combinations) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for m, ok := c.Next(); ok; m, ok = c.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

// Package bitmask enumerates combinatorial spaces as raw uint64 bit
// patterns: k-subsets via Gosper's hack and full power sets via mask
// counting.
//
// 🚀 Why bitmasks?
//
//	Encoding a subset of up to 63 elements as one machine word makes
//	membership tests, unions and intersections single instructions, and
//	lets the "next subset" step run in constant time. Typical uses:
//	  • Held–Karp style DP over subsets
//	  • Exhaustive search over small feature/flag spaces
//	  • Seat/slot assignment enumeration
//
// ✨ Two cursors + two utilities:
//   - Combinations — all C(n,k) masks with exactly k bits set, strictly
//     increasing, via Gosper's constant-time successor
//   - PowerSet     — all 2^n masks, by plain counting from 0
//   - Indices      — mask → ascending positions of its set bits
//   - Subset       — mask + source slice → selected elements
//
// ⚠️ Overflow guard (deliberate, silent):
//
//	Parameters that do not fit the word — n > MaxBits, k <= 0, or k > n —
//	do NOT produce an error. The constructor returns a generator that is
//	already exhausted, so every bit shift stays inside the 64-bit word.
//	This is intentionally distinct from the signaled ErrInvalidSize of
//	the element-typed generators; callers who want the distinction
//	observable can check Valid() before iterating.
//
// Performance: O(1) per step, O(1) memory, no allocation anywhere on the
// iteration path. The utilities allocate one fresh slice per call.
package bitmask

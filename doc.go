// Package combinat is your in-memory toolkit for lazily enumerating
// combinatorial spaces — subsets, orderings, bit patterns and cross
// products — without ever materializing them.
//
// 🚀 What is combinat?
//
//	A small library of independent, stateful cursors that pull one result
//	at a time from a combinatorial space:
//		• Combinations: all C(n,k) k-subsets, lexicographic
//		• Permutations: all n! orderings (Knuth's Algorithm L)
//		• k-Permutations: all P(n,k) ordered arrangements
//		• Gosper combinations: k-bit patterns as raw uint64 masks
//		• Power sets: all 2^n membership masks
//		• Cartesian products: row-major pairs from two sequences
//
// ✨ Why choose combinat?
//
//   - Lazy everywhere – O(1)..O(k) memory, no up-front materialization
//   - Zero allocation per step – views into reused buffers on the hot path
//   - Generic – any element type; ordering only where ordering matters
//   - Safe consumption – All() adapters yield owned clones for range-over-func
//
// Everything is organized under independent subpackages — none depends on
// another:
//
//	bitmask/      — Gosper's hack & power-set cursors over uint64 masks
//	combinations/ — lazy k-subset cursor + eager recursive baseline
//	permutations/ — Algorithm L and itertools-style cycle cursors
//	product/      — two-sequence Cartesian product cursor
//
// Every cursor follows the same contract: construct (validating sizes up
// front), pull with Next until the second result is false, Reset to
// replay. Generators only borrow their sources; a single generator must
// not be advanced from multiple goroutines, but independent generators
// over the same source are fine.
//
// A small CLI for shell-side enumeration lives in cmd/combinat.
//
//	go get github.com/katalvlaran/combinat
package combinat

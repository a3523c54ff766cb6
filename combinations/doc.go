// Package combinations enumerates k-element subsets of a finite sequence
// in lexicographic order, lazily and with zero allocation per step.
//
// 🚀 What is a combination?
//
//	An unordered selection of k elements out of n, e.g. choosing 2 of
//	[1,2,3] yields {1,2}, {1,3}, {2,3}.  Combinations show up in:
//	  • Test-case and parameter sweeps
//	  • Subset selection for scoring/ranking
//	  • Committee / tournament pairing problems
//	  • Feature selection in small search spaces
//
// ✨ Key features:
//   - Generator[T] — lazy cursor, O(k) memory, no allocation per Next
//   - List — eager recursive builder (pedagogical baseline, depth-capped)
//   - Count — exact C(n,k) via math/big, no overflow
//   - All() — range-over-func adapter yielding safe, owned copies
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/combinations"
//
//	gen, err := combinations.New([]int{1, 2, 3}, 2)
//	if err != nil {
//	  // handle ErrInvalidSize
//	}
//	for view, ok := gen.Next(); ok; view, ok = gen.Next() {
//	  fmt.Println(view) // view is valid only until the next call
//	}
//
// Performance:
//
//   - Time:   O(k) per step, C(n,k) steps total
//   - Memory: O(k) for the generator, O(C(n,k)·k) only if you use List
//
// The view returned by Next aliases an internal buffer that is overwritten
// on every call, exactly like bufio.Scanner.Bytes. Copy it (or iterate via
// All, which clones) if results must outlive the step that produced them.
package combinations

// Package permutations enumerates orderings of a finite sequence: all n!
// full permutations in lexicographic order, and all P(n,k) = n!/(n-k)!
// k-length arrangements.
//
// 🚀 Two cursors:
//
//   - Generator[T]  — every full ordering, via Knuth's Algorithm L.
//     Starts from the sorted sequence and steps to the immediate
//     lexicographic successor until the reverse-sorted order is reached.
//     Requires ordered elements (cmp.Ordered), since lexicographic
//     succession is meaningless without a total order.
//
//   - KGenerator[T] — every ordered arrangement of k elements drawn from
//     n, via the classic cycle-countdown algorithm (the one behind
//     Python's itertools.permutations). Works for any element type.
//
// ⚙️ Usage:
//
//	gen := permutations.New([]int{3, 1, 2})
//	for view, ok := gen.Next(); ok; view, ok = gen.Next() {
//	  fmt.Println(view) // [1 2 3], [1 3 2], ... [3 2 1]
//	}
//
// Performance:
//
//   - Generator:  O(n) worst-case per step, n! steps, O(n) memory
//   - KGenerator: O(n) worst-case per step, P(n,k) steps, O(n+k) memory
//
// Both cursors return views into a reused buffer (see the package-level
// note in combinations about the bufio.Scanner-style contract); All()
// yields clones. Neither cursor is safe for concurrent Next calls.
package permutations

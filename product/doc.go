// Package product enumerates the Cartesian product of two sequences in
// row-major order: every element of the first paired with every element of
// the second, the second index varying fastest.
//
// ⚙️ Usage:
//
//	gen := product.New([]int{1, 2}, []string{"a", "b", "c"})
//	for pair, ok := gen.Next(); ok; pair, ok = gen.Next() {
//	  fmt.Println(pair.First, pair.Second)
//	}
//
// Iterating is exactly equivalent to the nested loop
//
//	for _, f := range first {
//	  for _, s := range second {
//
// but as a pausable cursor: |first| × |second| pairs, O(1) per step, no
// allocation. Pairs are returned by value, so unlike the slice-emitting
// cursors elsewhere in this module there is no aliasing to worry about.
package product

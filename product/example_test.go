package product_test

import (
	"fmt"

	"github.com/katalvlaran/combinat/product"
)

// ExampleGenerator pairs sizes with colors — six pairs, colors varying
// fastest.
func ExampleGenerator() {
	gen := product.New([]int{1, 2}, []string{"a", "b", "c"})
	for p := range gen.All() {
		fmt.Printf("(%d,%s)\n", p.First, p.Second)
	}
	// Output:
	// (1,a)
	// (1,b)
	// (1,c)
	// (2,a)
	// (2,b)
	// (2,c)
}

package permutations_test

import (
	"testing"

	"github.com/katalvlaran/combinat/permutations"
)

// benchmarkGenerator drains the n! space once per iteration via Reset,
// so Algorithm L's per-step cost dominates.
func benchmarkGenerator(b *testing.B, n int) {
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}
	gen := permutations.New(src)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Reset()
		for _, ok := gen.Next(); ok; _, ok = gen.Next() {
		}
	}
}

// BenchmarkGenerator_8 benchmarks 8! = 40,320 steps per iteration.
func BenchmarkGenerator_8(b *testing.B) {
	benchmarkGenerator(b, 8)
}

// BenchmarkGenerator_10 benchmarks 10! = 3,628,800 steps per iteration.
func BenchmarkGenerator_10(b *testing.B) {
	benchmarkGenerator(b, 10)
}

// benchmarkKGenerator drains P(n,k) once per iteration.
func benchmarkKGenerator(b *testing.B, n, k int) {
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}
	gen, err := permutations.NewK(src, k)
	if err != nil {
		b.Fatalf("NewK failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.Reset()
		for _, ok := gen.Next(); ok; _, ok = gen.Next() {
		}
	}
}

// BenchmarkKGenerator_12P4 benchmarks P(12,4) = 11,880 steps per iteration.
func BenchmarkKGenerator_12P4(b *testing.B) {
	benchmarkKGenerator(b, 12, 4)
}

// BenchmarkKGenerator_12P8 benchmarks P(12,8) ≈ 19.9M steps per iteration.
func BenchmarkKGenerator_12P8(b *testing.B) {
	benchmarkKGenerator(b, 12, 8)
}

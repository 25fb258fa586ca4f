package biquad_test

import (
	"testing"

	"github.com/katalvlaran/branchlab/biquad"
)

var sink biquad.Result

// BenchmarkSolve_Quadratic measures the four-root quadratic branch.
func BenchmarkSolve_Quadratic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = biquad.Solve(1, -5, 4)
	}
}

// BenchmarkSolve_Linear measures the linear branch.
func BenchmarkSolve_Linear(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = biquad.Solve(0, 1, -4)
	}
}

// BenchmarkSolveInto measures the caller-buffer form.
func BenchmarkSolveInto(b *testing.B) {
	out := make([]float64, biquad.MaxRoots)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := biquad.SolveInto(1, -5, 4, out); err != nil {
			b.Fatalf("SolveInto failed: %v", err)
		}
	}
}

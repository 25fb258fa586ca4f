// Package branchlab is a small playground for branch-coverage exercises and
// the reduced biquadratic equation a·x⁴ + b·x² + c = 0.
//
// 🚀 What is inside?
//
//	biquad/       — root solver over y = x² with a tagged Result
//	classify/     — threshold classifiers and a three-way max
//	harness/      — PASS/FAIL printer and the fixed exercise suite
//	cmd/branchlab — CLI: `branchlab run`, `branchlab solve A B C`
//
// ✨ Quick start:
//
//	res := biquad.Solve(1, -5, 4)
//	fmt.Println(res.Count(), res.Roots) // 4 [2 -2 1 -1]
//
//	go run ./cmd/branchlab run
package branchlab

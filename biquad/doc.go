// SPDX-License-Identifier: MIT

// Package biquad solves the reduced biquadratic equation
//
//	a·x⁴ + b·x² + c = 0
//
// by substituting y = x², solving a·y² + b·y + c = 0 for y and expanding
// every non-negative y back into ±√y.
//
// 🚀 What is solved?
//
//	Only the quadratic-in-y family with its linear (a = 0) special case.
//	There are no cubic or odd-degree terms; this is not a general quartic
//	solver.
//
// ✨ Key features:
//   - tagged Result: Roots, NoSolution or Infinite (no overloaded counts)
//   - owned, variable-length root slice in emission order
//   - one tolerance (DefaultEpsilon = 1e-12) for every zero test:
//     coefficients, discriminant sign, y sign, duplicate-y suppression
//   - legacy count contract via Result.Count and SolveInto
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/branchlab/biquad"
//
//	res := biquad.Solve(1, -5, 4)
//	fmt.Println(res.Count(), res.Roots) // 4 [2 -2 1 -1]
//
// Decision tree (first match wins):
//
//	|a|,|b|,|c| < ε  → Infinite           (0 = 0)
//	|a|,|b|     < ε  → NoSolution         (c = 0 with c ≠ 0)
//	|a|         < ε  → linear:    y = −c/b
//	otherwise        → quadratic: Δ = b² − 4ac, y₁,₂ = (−b ± √Δ)/2a
//
// Complexity: O(1) time and space.
package biquad

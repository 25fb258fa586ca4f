// SPDX-License-Identifier: MIT

package biquad

import (
	"fmt"
	"math"
)

// Solve finds the real roots of a·x⁴ + b·x² + c = 0 via y = x².
//
// Algorithm (first match wins, ε = Options.Epsilon):
//  1. |a|,|b|,|c| < ε → Infinite.
//  2. |a|,|b| < ε     → NoSolution (CaseContradiction).
//  3. |a| < ε         → y = −c/b:
//     y ≤ −ε → NoSolution; |y| < ε → {0}; y ≥ ε → {+√y, −√y}.
//  4. Δ = b² − 4ac. Δ < −ε → NoSolution. Otherwise, with √max(0,Δ):
//     y₁ = (−b + √Δ)/2a, y₂ = (−b − √Δ)/2a. y₁ is always expanded;
//     y₂ only when |y₂ − y₁| > ε.
//
// Expansion of a single y: y > ε → {+√y, −√y}; |y| < ε → {0}; else none.
//
// Solve is total over finite inputs and never panics. Non-finite
// coefficients propagate NaN through the arithmetic; use Validate first
// when the input is untrusted.
//
// Complexity: O(1).
func Solve(a, b, c float64, opts ...Option) Result {
	eps := NewOptions(opts...).eps

	if isZero(a, eps) && isZero(b, eps) && isZero(c, eps) {
		return Result{Kind: Infinite, Case: CaseIdentity}
	}
	if isZero(a, eps) && isZero(b, eps) {
		return Result{Kind: NoSolution, Case: CaseContradiction}
	}
	if isZero(a, eps) {
		return solveLinear(b, c, eps)
	}

	return solveQuadratic(a, b, c, eps)
}

// solveLinear handles b·y + c = 0 with b ≠ 0.
func solveLinear(b, c, eps float64) Result {
	y := -c / b
	res := Result{Case: CaseLinear, Y: []float64{y}}
	switch {
	case isZero(y, eps):
		res.Roots = []float64{0}
	case y > 0:
		r := math.Sqrt(y)
		res.Roots = []float64{r, -r}
	default:
		// y <= −ε: x² cannot be negative
	}

	return finish(res)
}

// solveQuadratic handles a·y² + b·y + c = 0 with a ≠ 0.
func solveQuadratic(a, b, c, eps float64) Result {
	delta := b*b - 4*a*c
	res := Result{Case: CaseQuadratic, Discriminant: delta}
	if delta < -eps {
		return finish(res)
	}

	// (−ε, 0) is rounding noise; clamp before the square root.
	sq := math.Sqrt(math.Max(0, delta))
	y1 := (-b + sq) / (2 * a)
	y2 := (-b - sq) / (2 * a)

	roots := make([]float64, 0, MaxRoots)
	roots = expand(roots, y1, eps)
	res.Y = []float64{y1}
	if math.Abs(y2-y1) > eps {
		roots = expand(roots, y2, eps)
		res.Y = append(res.Y, y2)
	}
	if len(roots) > 0 {
		res.Roots = roots
	}

	return finish(res)
}

// expand appends the real x values with x² = y.
func expand(dst []float64, y, eps float64) []float64 {
	switch {
	case y > eps:
		r := math.Sqrt(y)
		return append(dst, r, -r)
	case isZero(y, eps):
		return append(dst, 0)
	default:
		return dst
	}
}

// finish derives Kind from the emitted roots.
func finish(res Result) Result {
	if len(res.Roots) == 0 {
		res.Kind = NoSolution
		res.Roots = nil
	} else {
		res.Kind = Roots
	}

	return res
}

func isZero(v, eps float64) bool { return math.Abs(v) < eps }

// SolveInto is the caller-buffer form of Solve. It writes the roots into
// out and returns the legacy count (InfiniteCount, 0 … MaxRoots).
//
// Unlike a fixed C array, out is bounds-checked: when len(out) is smaller
// than the number of roots, nothing is written and ErrShortBuffer is
// returned together with the count that would have been produced.
func SolveInto(a, b, c float64, out []float64, opts ...Option) (int, error) {
	res := Solve(a, b, c, opts...)
	if len(out) < len(res.Roots) {
		return res.Count(), fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, len(res.Roots), len(out))
	}
	copy(out, res.Roots)

	return res.Count(), nil
}

// Validate returns ErrNonFinite if any coefficient is NaN or ±Inf.
func Validate(a, b, c float64) error {
	for i, v := range [...]float64{a, b, c} {
		if isNonFinite(v) {
			return fmt.Errorf("%w: %c=%v", ErrNonFinite, "abc"[i], v)
		}
	}

	return nil
}

// Residual evaluates a·x⁴ + b·x² + c. A true root yields a value near zero.
func Residual(a, b, c, x float64) float64 {
	y := x * x

	return (a*y+b)*y + c
}

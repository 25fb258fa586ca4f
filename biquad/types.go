// SPDX-License-Identifier: MIT
// Package biquad: result types and sentinel errors.

package biquad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors. Match with errors.Is; callers may wrap with %w.
var (
	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("biquad: coefficient is NaN or Inf")

	// ErrShortBuffer indicates the caller-provided buffer cannot hold all roots.
	ErrShortBuffer = errors.New("biquad: output buffer too short")
)

// MaxRoots is the largest number of real roots Solve can emit.
const MaxRoots = 4

// InfiniteCount is the legacy sentinel count for "every x is a solution".
const InfiniteCount = -1

// Kind tags the outcome of Solve.
type Kind int

const (
	// Roots means a non-empty, finite set of real roots was found.
	Roots Kind = iota

	// NoSolution means no real x satisfies the equation.
	NoSolution

	// Infinite means the equation is the identity 0 = 0.
	Infinite
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Roots:
		return "roots"
	case NoSolution:
		return "no-solution"
	case Infinite:
		return "infinite"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Case names the branch of the decision tree that produced a Result.
type Case int

const (
	// CaseIdentity: all coefficients vanish.
	CaseIdentity Case = iota
	// CaseContradiction: only c is non-zero.
	CaseContradiction
	// CaseLinear: a vanishes, b·y + c = 0.
	CaseLinear
	// CaseQuadratic: a·y² + b·y + c = 0 with a ≠ 0.
	CaseQuadratic
)

// String implements fmt.Stringer.
func (c Case) String() string {
	switch c {
	case CaseIdentity:
		return "identity"
	case CaseContradiction:
		return "contradiction"
	case CaseLinear:
		return "linear"
	case CaseQuadratic:
		return "quadratic"
	default:
		return "case(" + strconv.Itoa(int(c)) + ")"
	}
}

// Result is the outcome of a single Solve call.
//
// Fields:
//   - Kind         — Roots, NoSolution or Infinite.
//   - Case         — the branch that decided the outcome.
//   - Roots        — real x roots in emission order; nil unless Kind == Roots.
//   - Y            — distinct y values considered, in order
//     (linear: one; quadratic: one or two; nil when no y was produced).
//   - Discriminant — b² − 4ac before clamping; zero outside CaseQuadratic.
type Result struct {
	Kind         Kind
	Case         Case
	Roots        []float64
	Y            []float64
	Discriminant float64
}

// Count returns the legacy root count: InfiniteCount for Infinite,
// 0 for NoSolution, len(Roots) otherwise.
func (r Result) Count() int {
	switch r.Kind {
	case Infinite:
		return InfiniteCount
	case NoSolution:
		return 0
	default:
		return len(r.Roots)
	}
}

// String renders the result as "kind/case [r1 r2 ...]".
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(r.Kind.String())
	sb.WriteByte('/')
	sb.WriteString(r.Case.String())
	if r.Kind == Roots {
		sb.WriteString(" [")
		for i, x := range r.Roots {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// GoString is used by %#v in test failure messages.
func (r Result) GoString() string {
	return fmt.Sprintf("biquad.Result{Kind:%v, Case:%v, Roots:%v, Y:%v, Discriminant:%g}",
		r.Kind, r.Case, r.Roots, r.Y, r.Discriminant)
}

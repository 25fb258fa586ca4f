// SPDX-License-Identifier: MIT

// Package biquad: functional configuration of the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); Solve itself never panics.
package biquad

import "math"

// DefaultEpsilon is the tolerance under which a coefficient, discriminant,
// y value or y difference is treated as exactly zero.
const DefaultEpsilon = 1e-12

const panicEpsilonInvalid = "biquad: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options holds the effective numeric policy after applying Option setters.
type Options struct {
	eps float64
}

// Epsilon reports the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the zero tolerance used by every comparison in Solve.
//
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves user options over the defaults.
func NewOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

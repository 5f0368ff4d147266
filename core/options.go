// SPDX-License-Identifier: MIT

// Package core: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - Gather, which resolves a list of options.
//
// The policy only affects fallible operations (division, inverse, unitize,
// normalize). Approximate equality is not configurable.
package core

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrict enables division checks: a divisor below epsilon returns
	// an error instead of an IEEE-754 Inf/NaN result.
	DefaultStrict = true

	// DefaultEpsilon of 0 selects the machine epsilon of the element type.
	DefaultEpsilon = 0.0
)

const panicEpsilonInvalid = "core: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
type Options struct {
	eps    float64 // ≥ 0; 0 ⇒ Epsilon[T]()
	strict bool    // DefaultStrict
}

// WithEpsilon sets the threshold below which a divisor counts as zero.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithStrict enables division checks (default).
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithPermissive disables division checks; results follow IEEE-754.
func WithPermissive() Option {
	return func(o *Options) { o.strict = false }
}

// WithDivisionCheck enables or disables division checks.
func WithDivisionCheck(enabled bool) Option {
	return func(o *Options) { o.strict = enabled }
}

// Gather applies opts over the defaults.
func Gather(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, strict: DefaultStrict}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Strict reports whether division checks are enabled.
func (o Options) Strict() bool { return o.strict }

// Epsilon returns the configured threshold (0 ⇒ machine epsilon of T).
func (o Options) Epsilon() float64 { return o.eps }

// Threshold returns the effective zero threshold of o for element type T.
func Threshold[T Float](o Options) T {
	if o.eps > 0 {
		return T(o.eps)
	}

	return Epsilon[T]()
}

// SPDX-License-Identifier: MIT
// Package linear: functional configuration for the numeric policy.
// This file defines:
//   - Option (functional options with internal state),
//   - defaultPolicy (documented defaults, see consts.go),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, every threshold explicit.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: policy fields are unexported; public APIs consume ...Option.

package linear

import "github.com/katalvlaran/affine/scalar"

// policy carries the tolerances consumed by Invert and Decompose.
type policy[T scalar.Float] struct {
	// singularEps: |det| below this is treated as singular by Invert.
	singularEps T

	// decomposeEps: degenerate-axis and SRT-validation tolerance of Decompose.
	decomposeEps T
}

// Option customizes the numeric policy of a single Invert or Decompose call.
type Option[T scalar.Float] func(*policy[T])

// defaultPolicy returns the documented defaults: machine epsilon for
// singularity detection and DefaultDecomposeEpsilon for SRT validation.
func defaultPolicy[T scalar.Float]() policy[T] {
	return policy[T]{
		singularEps:  scalar.Epsilon[T](),
		decomposeEps: scalar.FromFloat64[T](DefaultDecomposeEpsilon),
	}
}

// WithSingularEpsilon overrides the |det| threshold below which Invert
// reports a singular matrix. Panics if eps is negative or NaN.
func WithSingularEpsilon[T scalar.Float](eps T) Option[T] {
	if !(eps >= 0) {
		panic("linear: WithSingularEpsilon requires eps >= 0")
	}

	return func(p *policy[T]) { p.singularEps = eps }
}

// WithDecomposeEpsilon overrides the tolerance Decompose uses both for
// degenerate-axis recovery and for the (det−1)² SRT check. Panics if eps is
// negative or NaN.
func WithDecomposeEpsilon[T scalar.Float](eps T) Option[T] {
	if !(eps >= 0) {
		panic("linear: WithDecomposeEpsilon requires eps >= 0")
	}

	return func(p *policy[T]) { p.decomposeEps = eps }
}

// gatherOptions applies opts over the defaults in call order.
func gatherOptions[T scalar.Float](opts ...Option[T]) policy[T] {
	cfg := defaultPolicy[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package linear: numeric policy (single source of truth).
// This file defines the tolerance constants used by the fallible kernels.
// The thresholds are deliberately distinct: singularity detection operates
// at machine precision, while SRT validation and billboard degeneracy are
// modelling tolerances that stay the same across scalar widths.

package linear

// pi at double precision; rounded once per instantiation via FromFloat64.
const pi = 3.141592653589793

// Numeric policy.
const (
	// DefaultDecomposeEpsilon bounds two checks inside Decompose: a basis row
	// whose length falls below it is rebuilt from canonical axes, and the
	// orthonormalized rotation block is accepted only while (det−1)² stays
	// below it. It is a modelling tolerance, not a machine epsilon.
	DefaultDecomposeEpsilon = 1e-4

	// DefaultBillboardEpsilon is the squared camera–object distance below
	// which CreateBillboard falls back to the camera forward vector instead
	// of normalizing a vanishing difference.
	DefaultBillboardEpsilon = 1e-4

	// slerpEpsilon is the cosOmega proximity to 1 at which Slerp switches to
	// the sign-adjusted linear form to avoid dividing by a near-zero sin.
	slerpEpsilon = 1e-6

	// rotationSnapEpsilon is the angular tolerance (0.001 degrees, in
	// radians) within which CreateRotation2D snaps to the exact 0/±1 entry
	// pattern of the four axis-aligned rotations.
	rotationSnapEpsilon = 0.001 * pi / 180
)

// Invert's singularity threshold defaults to the machine epsilon of the
// instantiated scalar (scalar.Epsilon[T]), not to a fixed literal; see
// defaultPolicy in options.go.

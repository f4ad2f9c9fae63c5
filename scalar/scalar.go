// SPDX-License-Identifier: MIT
// Package scalar: the numeric capability trait.
// This file defines the Float constraint and the generic helpers that stand
// in for the operations Go cannot express on a type parameter directly
// (machine epsilon, NaN construction, sqrt and trigonometry).

package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the scalar capability contract consumed by every entity type.
// It admits exactly the IEEE-754 binary32 and binary64 type sets; integer
// and complex types are excluded by construction.
type Float interface {
	constraints.Float
}

// Machine epsilons per precision: the difference between 1 and the next
// representable value. Values are 2⁻²³ and 2⁻⁵² respectively.
const (
	// Eps32 is the machine epsilon of float32.
	Eps32 = 1.1920928955078125e-07

	// Eps64 is the machine epsilon of float64.
	Eps64 = 2.220446049250313e-16
)

// Zero returns the additive identity of T.
func Zero[T Float]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Float]() T { return 1 }

// NaN returns an IEEE-754 quiet NaN of T.
func NaN[T Float]() T { return T(math.NaN()) }

// Epsilon returns the machine epsilon of T's precision: Eps32 for 32-bit
// shapes, Eps64 for 64-bit shapes. The width probe relies only on the size
// of T, so defined types (`type meters float32`) resolve correctly.
func Epsilon[T Float]() T {
	var probe T
	if unsafe.Sizeof(probe) == 4 {
		return T(Eps32)
	}

	return T(Eps64)
}

// FromFloat64 converts a double-precision literal into T, rounding once.
// All numeric constants in the library flow through this single conversion
// so each precision sees one deterministic rounding of every literal.
func FromFloat64[T Float](v float64) T { return T(v) }

// Abs returns the absolute value of v. Abs(NaN) is NaN, Abs(-0) is +0.
func Abs[T Float](v T) T {
	return T(math.Abs(float64(v)))
}

// Sqrt returns the square root of v. Sqrt of a negative value returns NaN
// rather than raising an error, per IEEE-754.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// Sin returns the sine of v (radians).
func Sin[T Float](v T) T {
	return T(math.Sin(float64(v)))
}

// Cos returns the cosine of v (radians).
func Cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

// Tan returns the tangent of v (radians).
func Tan[T Float](v T) T {
	return T(math.Tan(float64(v)))
}

// Acos returns the arccosine of v, in radians. Inputs outside [-1, 1]
// yield NaN.
func Acos[T Float](v T) T {
	return T(math.Acos(float64(v)))
}

// IsNaN reports whether v is an IEEE-754 not-a-number. Implemented as the
// self-inequality test so it works for any T without boxing.
func IsNaN[T Float](v T) bool {
	return v != v
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite[T Float](v T) bool {
	return !IsNaN[T](v - v)
}

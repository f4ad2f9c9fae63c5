// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// This file defines ONLY package-level sentinel errors. They are returned by
// the camera/projection builders that validate argument ranges; the numeric
// kernels (Invert, Decompose) never error — they report failure through a
// boolean plus NaN sentinels, as documented in doc.go. Tests match these
// via errors.Is. No algorithm panics on user-triggered conditions; panics
// are reserved for programmer errors in option constructors.

package linear

import "errors"

var (
	// ErrFieldOfViewRange is returned when a perspective field of view lies
	// outside the open interval (0, π).
	ErrFieldOfViewRange = errors.New("linear: field of view out of (0, π)")

	// ErrPlaneDistanceRange is returned when a near or far plane distance is
	// not strictly positive.
	ErrPlaneDistanceRange = errors.New("linear: plane distance must be > 0")

	// ErrPlaneOrder is returned when the near plane does not lie strictly in
	// front of the far plane.
	ErrPlaneOrder = errors.New("linear: near plane must be closer than far plane")
)

// SPDX-License-Identifier: MIT
// Package linear: camera and projection builders.
// These assemble fixed formulas for a right-handed coordinate system and
// validate their numeric ranges up front, returning the package sentinels
// from errors.go; they contain no branch-recovery logic beyond the
// billboard fallback.

package linear

import "github.com/katalvlaran/affine/scalar"

// CreateLookAt returns the right-handed view matrix for a camera at
// position looking at target with the given up hint.
func CreateLookAt[T scalar.Float](position, target, up Vector3[T]) Matrix4x4[T] {
	zaxis := position.Subtract(target).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Matrix4x4[T]{
		M11: xaxis.X, M12: yaxis.X, M13: zaxis.X,
		M21: xaxis.Y, M22: yaxis.Y, M23: zaxis.Y,
		M31: xaxis.Z, M32: yaxis.Z, M33: zaxis.Z,
		M41: -xaxis.Dot(position), M42: -yaxis.Dot(position), M43: -zaxis.Dot(position),
		M44: 1,
	}
}

// CreatePerspectiveFieldOfView returns the right-handed perspective
// projection for the given vertical field of view (radians), aspect ratio
// and near/far plane distances.
//
// Validation (in order):
//  1. fieldOfView must lie in (0, π)        — ErrFieldOfViewRange.
//  2. nearPlane and farPlane must be > 0    — ErrPlaneDistanceRange.
//  3. nearPlane must be < farPlane          — ErrPlaneOrder.
func CreatePerspectiveFieldOfView[T scalar.Float](fieldOfView, aspectRatio, nearPlane, farPlane T) (Matrix4x4[T], error) {
	if !(fieldOfView > 0) || fieldOfView >= scalar.FromFloat64[T](pi) {
		return Matrix4x4[T]{}, ErrFieldOfViewRange
	}
	if err := validatePlanes(nearPlane, farPlane); err != nil {
		return Matrix4x4[T]{}, err
	}

	yScale := 1 / scalar.Tan(fieldOfView*scalar.FromFloat64[T](0.5))
	xScale := yScale / aspectRatio
	negFarRange := farRange(nearPlane, farPlane)

	var m Matrix4x4[T]
	m.M11 = xScale
	m.M22 = yScale
	m.M33 = negFarRange
	m.M34 = -1
	m.M43 = nearPlane * negFarRange

	return m, nil
}

// CreatePerspective returns the right-handed perspective projection for an
// explicit near-plane view volume of the given width and height.
// Validation follows CreatePerspectiveFieldOfView steps 2–3.
func CreatePerspective[T scalar.Float](width, height, nearPlane, farPlane T) (Matrix4x4[T], error) {
	if err := validatePlanes(nearPlane, farPlane); err != nil {
		return Matrix4x4[T]{}, err
	}

	negFarRange := farRange(nearPlane, farPlane)

	var m Matrix4x4[T]
	m.M11 = 2 * nearPlane / width
	m.M22 = 2 * nearPlane / height
	m.M33 = negFarRange
	m.M34 = -1
	m.M43 = nearPlane * negFarRange

	return m, nil
}

// CreateOrthographic returns the right-handed orthographic projection for a
// centered view volume of the given width and height.
func CreateOrthographic[T scalar.Float](width, height, nearPlane, farPlane T) Matrix4x4[T] {
	var m Matrix4x4[T]
	m.M11 = 2 / width
	m.M22 = 2 / height
	m.M33 = 1 / (nearPlane - farPlane)
	m.M43 = nearPlane / (nearPlane - farPlane)
	m.M44 = 1

	return m
}

// CreateOrthographicOffCenter returns the right-handed orthographic
// projection for an off-center view volume.
func CreateOrthographicOffCenter[T scalar.Float](left, right, bottom, top, nearPlane, farPlane T) Matrix4x4[T] {
	var m Matrix4x4[T]
	m.M11 = 2 / (right - left)
	m.M22 = 2 / (top - bottom)
	m.M33 = 1 / (nearPlane - farPlane)
	m.M41 = (left + right) / (left - right)
	m.M42 = (top + bottom) / (bottom - top)
	m.M43 = nearPlane / (nearPlane - farPlane)
	m.M44 = 1

	return m
}

// CreateBillboard returns the matrix orienting an object at objectPosition
// to face cameraPosition. When the two positions nearly coincide (squared
// distance below DefaultBillboardEpsilon) the camera forward vector is used
// instead of normalizing a vanishing difference.
func CreateBillboard[T scalar.Float](objectPosition, cameraPosition, cameraUp, cameraForward Vector3[T]) Matrix4x4[T] {
	zaxis := objectPosition.Subtract(cameraPosition)

	norm := zaxis.LengthSquared()
	if norm < scalar.FromFloat64[T](DefaultBillboardEpsilon) {
		zaxis = cameraForward.Negate()
	} else {
		zaxis = zaxis.Scale(1 / scalar.Sqrt(norm))
	}

	xaxis := cameraUp.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Matrix4x4[T]{
		M11: xaxis.X, M12: xaxis.Y, M13: xaxis.Z,
		M21: yaxis.X, M22: yaxis.Y, M23: yaxis.Z,
		M31: zaxis.X, M32: zaxis.Y, M33: zaxis.Z,
		M41: objectPosition.X, M42: objectPosition.Y, M43: objectPosition.Z, M44: 1,
	}
}

// validatePlanes enforces nearPlane > 0, farPlane > 0 and near < far.
// Negated comparisons so NaN inputs also fail validation.
func validatePlanes[T scalar.Float](nearPlane, farPlane T) error {
	if !(nearPlane > 0) || !(farPlane > 0) {
		return ErrPlaneDistanceRange
	}
	if !(nearPlane < farPlane) {
		return ErrPlaneOrder
	}

	return nil
}

// farRange returns far/(near−far), the shared M33/M43 factor of the
// perspective projections.
func farRange[T scalar.Float](nearPlane, farPlane T) T {
	if !scalar.IsFinite(farPlane) { // +Inf far plane degenerates to -1
		return -1
	}

	return farPlane / (nearPlane - farPlane)
}

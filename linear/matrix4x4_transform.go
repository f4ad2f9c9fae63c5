// SPDX-License-Identifier: MIT
// Package linear: Matrix4x4 transform builders.
// Value-returning constructors for the translation/scale/rotation family.
// Each assembles its closed form directly; none can fail.

package linear

import "github.com/katalvlaran/affine/scalar"

// CreateTranslation returns the matrix translating positions by position.
func CreateTranslation[T scalar.Float](position Vector3[T]) Matrix4x4[T] {
	m := Identity4x4[T]()
	m.M41, m.M42, m.M43 = position.X, position.Y, position.Z

	return m
}

// CreateScale returns the matrix scaling each axis by the matching
// component of scales.
func CreateScale[T scalar.Float](scales Vector3[T]) Matrix4x4[T] {
	var m Matrix4x4[T]
	m.M11, m.M22, m.M33, m.M44 = scales.X, scales.Y, scales.Z, 1

	return m
}

// CreateUniformScale returns the matrix scaling every axis by s.
func CreateUniformScale[T scalar.Float](s T) Matrix4x4[T] {
	return CreateScale(Vector3[T]{s, s, s})
}

// CreateScaleAround returns the matrix scaling per axis about center
// instead of the origin.
func CreateScaleAround[T scalar.Float](scales, center Vector3[T]) Matrix4x4[T] {
	m := CreateScale(scales)
	m.M41 = center.X * (1 - scales.X)
	m.M42 = center.Y * (1 - scales.Y)
	m.M43 = center.Z * (1 - scales.Z)

	return m
}

// CreateRotationX returns the rotation of radians about the X axis.
func CreateRotationX[T scalar.Float](radians T) Matrix4x4[T] {
	s, c := scalar.Sin(radians), scalar.Cos(radians)

	m := Identity4x4[T]()
	m.M22, m.M23 = c, s
	m.M32, m.M33 = -s, c

	return m
}

// CreateRotationXAround rotates about the X axis through center.
func CreateRotationXAround[T scalar.Float](radians T, center Vector3[T]) Matrix4x4[T] {
	s, c := scalar.Sin(radians), scalar.Cos(radians)

	m := CreateRotationX(radians)
	m.M42 = center.Y*(1-c) + center.Z*s
	m.M43 = center.Z*(1-c) - center.Y*s

	return m
}

// CreateRotationY returns the rotation of radians about the Y axis.
func CreateRotationY[T scalar.Float](radians T) Matrix4x4[T] {
	s, c := scalar.Sin(radians), scalar.Cos(radians)

	m := Identity4x4[T]()
	m.M11, m.M13 = c, -s
	m.M31, m.M33 = s, c

	return m
}

// CreateRotationYAround rotates about the Y axis through center.
func CreateRotationYAround[T scalar.Float](radians T, center Vector3[T]) Matrix4x4[T] {
	s, c := scalar.Sin(radians), scalar.Cos(radians)

	m := CreateRotationY(radians)
	m.M41 = center.X*(1-c) - center.Z*s
	m.M43 = center.Z*(1-c) + center.X*s

	return m
}

// CreateRotationZ returns the rotation of radians about the Z axis.
func CreateRotationZ[T scalar.Float](radians T) Matrix4x4[T] {
	s, c := scalar.Sin(radians), scalar.Cos(radians)

	m := Identity4x4[T]()
	m.M11, m.M12 = c, s
	m.M21, m.M22 = -s, c

	return m
}

// CreateRotationZAround rotates about the Z axis through center.
func CreateRotationZAround[T scalar.Float](radians T, center Vector3[T]) Matrix4x4[T] {
	s, c := scalar.Sin(radians), scalar.Cos(radians)

	m := CreateRotationZ(radians)
	m.M41 = center.X*(1-c) + center.Y*s
	m.M42 = center.Y*(1-c) - center.X*s

	return m
}

// CreateFromAxisAngle returns the rotation of angle radians about the unit
// axis (x, y, z), by the Rodrigues closed form.
func CreateFromAxisAngle[T scalar.Float](axis Vector3[T], angle T) Matrix4x4[T] {
	x, y, z := axis.X, axis.Y, axis.Z
	sa, ca := scalar.Sin(angle), scalar.Cos(angle)

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z

	return Matrix4x4[T]{
		M11: xx + ca*(1-xx), M12: xy - ca*xy + sa*z, M13: xz - ca*xz - sa*y,
		M21: xy - ca*xy - sa*z, M22: yy + ca*(1-yy), M23: yz - ca*yz + sa*x,
		M31: xz - ca*xz + sa*y, M32: yz - ca*yz - sa*x, M33: zz + ca*(1-zz),
		M44: 1,
	}
}

// CreateFromQuaternion embeds the rotation described by q as the standard
// 3x3 block of a 4x4 matrix, with M44 = 1 and zero translation/perspective
// entries. q is expected to be unit length.
func CreateFromQuaternion[T scalar.Float](q Quaternion[T]) Matrix4x4[T] {
	// Doubled cross terms and their products with w, x, y, z.
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	wx2, wy2, wz2 := q.W*x2, q.W*y2, q.W*z2
	xx2, xy2, xz2 := q.X*x2, q.X*y2, q.X*z2
	yy2, yz2, zz2 := q.Y*y2, q.Y*z2, q.Z*z2

	return Matrix4x4[T]{
		M11: 1 - yy2 - zz2, M12: xy2 + wz2, M13: xz2 - wy2,
		M21: xy2 - wz2, M22: 1 - xx2 - zz2, M23: yz2 + wx2,
		M31: xz2 + wy2, M32: yz2 - wx2, M33: 1 - xx2 - yy2,
		M44: 1,
	}
}

// CreateFromYawPitchRoll composes yaw (Y), pitch (X) and roll (Z), in
// radians, via the equivalent quaternion.
func CreateFromYawPitchRoll[T scalar.Float](yaw, pitch, roll T) Matrix4x4[T] {
	return CreateFromQuaternion(QuaternionFromYawPitchRoll(yaw, pitch, roll))
}

// CreateWorld returns the world matrix placing an object at position,
// facing along forward with the given up hint. forward and up need not be
// orthogonal; up only fixes the roll.
func CreateWorld[T scalar.Float](position, forward, up Vector3[T]) Matrix4x4[T] {
	zaxis := forward.Negate().Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Matrix4x4[T]{
		M11: xaxis.X, M12: xaxis.Y, M13: xaxis.Z,
		M21: yaxis.X, M22: yaxis.Y, M23: yaxis.Z,
		M31: zaxis.X, M32: zaxis.Y, M33: zaxis.Z,
		M41: position.X, M42: position.Y, M43: position.Z, M44: 1,
	}
}

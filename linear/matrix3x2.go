// SPDX-License-Identifier: MIT
// Package linear: the Matrix3x2 2D affine family.
// Same row-vector convention as Matrix4x4: a Vector2 position transforms as
// v' = v·M with translation in row three (M31, M32).

package linear

import "github.com/katalvlaran/affine/scalar"

// Matrix3x2 is an immutable 3x2 matrix describing a 2D affine transform.
type Matrix3x2[T scalar.Float] struct {
	M11, M12 T
	M21, M22 T
	M31, M32 T
}

// Identity3x2 returns the 2D affine identity.
func Identity3x2[T scalar.Float]() Matrix3x2[T] {
	return Matrix3x2[T]{M11: 1, M22: 1}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix3x2[T]) IsIdentity() bool {
	return m.M11 == 1 && m.M22 == 1 &&
		m.M12 == 0 && m.M21 == 0 && m.M31 == 0 && m.M32 == 0
}

// Add returns the elementwise sum m + n.
func (m Matrix3x2[T]) Add(n Matrix3x2[T]) Matrix3x2[T] {
	return Matrix3x2[T]{
		m.M11 + n.M11, m.M12 + n.M12,
		m.M21 + n.M21, m.M22 + n.M22,
		m.M31 + n.M31, m.M32 + n.M32,
	}
}

// Subtract returns the elementwise difference m − n.
func (m Matrix3x2[T]) Subtract(n Matrix3x2[T]) Matrix3x2[T] {
	return Matrix3x2[T]{
		m.M11 - n.M11, m.M12 - n.M12,
		m.M21 - n.M21, m.M22 - n.M22,
		m.M31 - n.M31, m.M32 - n.M32,
	}
}

// Negate returns −m.
func (m Matrix3x2[T]) Negate() Matrix3x2[T] {
	return Matrix3x2[T]{-m.M11, -m.M12, -m.M21, -m.M22, -m.M31, -m.M32}
}

// MultiplyScalar returns m with every entry multiplied by s.
func (m Matrix3x2[T]) MultiplyScalar(s T) Matrix3x2[T] {
	return Matrix3x2[T]{
		m.M11 * s, m.M12 * s,
		m.M21 * s, m.M22 * s,
		m.M31 * s, m.M32 * s,
	}
}

// Multiply returns the affine composition m·n: m applies first.
func (m Matrix3x2[T]) Multiply(n Matrix3x2[T]) Matrix3x2[T] {
	return Matrix3x2[T]{
		m.M11*n.M11 + m.M12*n.M21,
		m.M11*n.M12 + m.M12*n.M22,
		m.M21*n.M11 + m.M22*n.M21,
		m.M21*n.M12 + m.M22*n.M22,
		m.M31*n.M11 + m.M32*n.M21 + n.M31,
		m.M31*n.M12 + m.M32*n.M22 + n.M32,
	}
}

// Determinant returns the determinant of the linear 2x2 block; translation
// does not contribute.
func (m Matrix3x2[T]) Determinant() T {
	return m.M11*m.M22 - m.M21*m.M12
}

// Translation returns the translation row (M31, M32).
func (m Matrix3x2[T]) Translation() Vector2[T] {
	return Vector2[T]{m.M31, m.M32}
}

// Lerp returns the elementwise interpolation m·(1−t) + n·t.
func (m Matrix3x2[T]) Lerp(n Matrix3x2[T], t T) Matrix3x2[T] {
	return m.MultiplyScalar(1 - t).Add(n.MultiplyScalar(t))
}

// Invert returns the inverse transform and true, or a NaN-filled matrix and
// false when the 2x2 block is singular (|det| below machine epsilon, or the
// WithSingularEpsilon override). Same contract as Matrix4x4.Invert.
func (m Matrix3x2[T]) Invert(opts ...Option[T]) (Matrix3x2[T], bool) {
	cfg := gatherOptions(opts...)

	det := m.Determinant()
	if scalar.Abs(det) < cfg.singularEps {
		n := scalar.NaN[T]()

		return Matrix3x2[T]{n, n, n, n, n, n}, false
	}

	invDet := 1 / det

	return Matrix3x2[T]{
		m.M22 * invDet, -m.M12 * invDet,
		-m.M21 * invDet, m.M11 * invDet,
		(m.M21*m.M32 - m.M31*m.M22) * invDet,
		(m.M31*m.M12 - m.M11*m.M32) * invDet,
	}, true
}

// CreateTranslation2D returns the transform translating by position.
func CreateTranslation2D[T scalar.Float](position Vector2[T]) Matrix3x2[T] {
	m := Identity3x2[T]()
	m.M31, m.M32 = position.X, position.Y

	return m
}

// CreateScale2D returns the transform scaling each axis by the matching
// component of scales.
func CreateScale2D[T scalar.Float](scales Vector2[T]) Matrix3x2[T] {
	return Matrix3x2[T]{M11: scales.X, M22: scales.Y}
}

// CreateUniformScale2D returns the transform scaling both axes by scale.
func CreateUniformScale2D[T scalar.Float](scale T) Matrix3x2[T] {
	return Matrix3x2[T]{M11: scale, M22: scale}
}

// CreateScale2DAround scales per axis about center instead of the origin.
func CreateScale2DAround[T scalar.Float](scales, center Vector2[T]) Matrix3x2[T] {
	m := CreateScale2D(scales)
	m.M31 = center.X * (1 - scales.X)
	m.M32 = center.Y * (1 - scales.Y)

	return m
}

// CreateRotation2D returns the rotation of radians about the origin.
// Angles within 0.001° of the four axis-aligned rotations snap to the exact
// 0/±1 entry pattern, so quarter turns stay lossless.
func CreateRotation2D[T scalar.Float](radians T) Matrix3x2[T] {
	snap := scalar.FromFloat64[T](rotationSnapEpsilon)
	halfPi := scalar.FromFloat64[T](pi / 2)
	wholePi := scalar.FromFloat64[T](pi)

	var c, s T
	switch {
	case scalar.Abs(radians) < snap:
		c, s = 1, 0
	case scalar.Abs(radians-halfPi) < snap:
		c, s = 0, 1
	case scalar.Abs(radians+halfPi) < snap:
		c, s = 0, -1
	case scalar.Abs(radians-wholePi) < snap || scalar.Abs(radians+wholePi) < snap:
		c, s = -1, 0
	default:
		c, s = scalar.Cos(radians), scalar.Sin(radians)
	}

	return Matrix3x2[T]{M11: c, M12: s, M21: -s, M22: c}
}

// CreateRotation2DAround rotates about center instead of the origin.
func CreateRotation2DAround[T scalar.Float](radians T, center Vector2[T]) Matrix3x2[T] {
	m := CreateRotation2D(radians)
	c, s := m.M11, m.M12
	m.M31 = center.X*(1-c) + center.Y*s
	m.M32 = center.Y*(1-c) - center.X*s

	return m
}

// CreateSkew2D returns the shear with tangents of the given angles:
// radiansX shears X by Y, radiansY shears Y by X.
func CreateSkew2D[T scalar.Float](radiansX, radiansY T) Matrix3x2[T] {
	m := Identity3x2[T]()
	m.M12 = scalar.Tan(radiansY)
	m.M21 = scalar.Tan(radiansX)

	return m
}

// CreateSkew2DAround shears about center instead of the origin.
func CreateSkew2DAround[T scalar.Float](radiansX, radiansY T, center Vector2[T]) Matrix3x2[T] {
	m := CreateSkew2D(radiansX, radiansY)
	m.M31 = -center.Y * m.M21
	m.M32 = -center.X * m.M12

	return m
}

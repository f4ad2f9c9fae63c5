// SPDX-License-Identifier: MIT
// Package linear: Matrix4x4 value type and elementwise/row-vector algebra.
// The convention throughout is row vectors: a position transforms as
// v' = v·M, translation occupies row four, and products compose
// left-to-right. A·B applies A first.

package linear

import "github.com/katalvlaran/affine/scalar"

// Matrix4x4 is an immutable 4x4 matrix with sixteen named scalar fields,
// Mrc for row r and column c. Equality is componentwise.
type Matrix4x4[T scalar.Float] struct {
	M11, M12, M13, M14 T
	M21, M22, M23, M24 T
	M31, M32, M33, M34 T
	M41, M42, M43, M44 T
}

// Identity4x4 returns the multiplicative identity: ones on the diagonal,
// zeros elsewhere. It is the fixed point of Invert.
func Identity4x4[T scalar.Float]() Matrix4x4[T] {
	var m Matrix4x4[T]
	m.M11, m.M22, m.M33, m.M44 = 1, 1, 1, 1

	return m
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix4x4[T]) IsIdentity() bool {
	// Diagonal first: it differs for almost every non-identity input.
	return m.M11 == 1 && m.M22 == 1 && m.M33 == 1 && m.M44 == 1 &&
		m.M12 == 0 && m.M13 == 0 && m.M14 == 0 &&
		m.M21 == 0 && m.M23 == 0 && m.M24 == 0 &&
		m.M31 == 0 && m.M32 == 0 && m.M34 == 0 &&
		m.M41 == 0 && m.M42 == 0 && m.M43 == 0
}

// Equal reports exact componentwise equality of m and n. The diagonal is
// compared first as a fast reject; the heuristic has no effect on the
// result. NaN entries compare unequal, per IEEE.
func (m Matrix4x4[T]) Equal(n Matrix4x4[T]) bool {
	return m.M11 == n.M11 && m.M22 == n.M22 && m.M33 == n.M33 && m.M44 == n.M44 &&
		m.M12 == n.M12 && m.M13 == n.M13 && m.M14 == n.M14 &&
		m.M21 == n.M21 && m.M23 == n.M23 && m.M24 == n.M24 &&
		m.M31 == n.M31 && m.M32 == n.M32 && m.M34 == n.M34 &&
		m.M41 == n.M41 && m.M42 == n.M42 && m.M43 == n.M43
}

// Add returns the elementwise sum m + n.
func (m Matrix4x4[T]) Add(n Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		m.M11 + n.M11, m.M12 + n.M12, m.M13 + n.M13, m.M14 + n.M14,
		m.M21 + n.M21, m.M22 + n.M22, m.M23 + n.M23, m.M24 + n.M24,
		m.M31 + n.M31, m.M32 + n.M32, m.M33 + n.M33, m.M34 + n.M34,
		m.M41 + n.M41, m.M42 + n.M42, m.M43 + n.M43, m.M44 + n.M44,
	}
}

// Subtract returns the elementwise difference m − n.
func (m Matrix4x4[T]) Subtract(n Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		m.M11 - n.M11, m.M12 - n.M12, m.M13 - n.M13, m.M14 - n.M14,
		m.M21 - n.M21, m.M22 - n.M22, m.M23 - n.M23, m.M24 - n.M24,
		m.M31 - n.M31, m.M32 - n.M32, m.M33 - n.M33, m.M34 - n.M34,
		m.M41 - n.M41, m.M42 - n.M42, m.M43 - n.M43, m.M44 - n.M44,
	}
}

// Negate returns −m.
func (m Matrix4x4[T]) Negate() Matrix4x4[T] {
	return Matrix4x4[T]{
		-m.M11, -m.M12, -m.M13, -m.M14,
		-m.M21, -m.M22, -m.M23, -m.M24,
		-m.M31, -m.M32, -m.M33, -m.M34,
		-m.M41, -m.M42, -m.M43, -m.M44,
	}
}

// MultiplyScalar returns m with every entry multiplied by s.
func (m Matrix4x4[T]) MultiplyScalar(s T) Matrix4x4[T] {
	return Matrix4x4[T]{
		m.M11 * s, m.M12 * s, m.M13 * s, m.M14 * s,
		m.M21 * s, m.M22 * s, m.M23 * s, m.M24 * s,
		m.M31 * s, m.M32 * s, m.M33 * s, m.M34 * s,
		m.M41 * s, m.M42 * s, m.M43 * s, m.M44 * s,
	}
}

// Multiply returns the matrix product m·n under the row-vector convention:
// row i of the result is row i of m times n, so m applies first when the
// product transforms a position. Not commutative.
func (m Matrix4x4[T]) Multiply(n Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		m.M11*n.M11 + m.M12*n.M21 + m.M13*n.M31 + m.M14*n.M41,
		m.M11*n.M12 + m.M12*n.M22 + m.M13*n.M32 + m.M14*n.M42,
		m.M11*n.M13 + m.M12*n.M23 + m.M13*n.M33 + m.M14*n.M43,
		m.M11*n.M14 + m.M12*n.M24 + m.M13*n.M34 + m.M14*n.M44,

		m.M21*n.M11 + m.M22*n.M21 + m.M23*n.M31 + m.M24*n.M41,
		m.M21*n.M12 + m.M22*n.M22 + m.M23*n.M32 + m.M24*n.M42,
		m.M21*n.M13 + m.M22*n.M23 + m.M23*n.M33 + m.M24*n.M43,
		m.M21*n.M14 + m.M22*n.M24 + m.M23*n.M34 + m.M24*n.M44,

		m.M31*n.M11 + m.M32*n.M21 + m.M33*n.M31 + m.M34*n.M41,
		m.M31*n.M12 + m.M32*n.M22 + m.M33*n.M32 + m.M34*n.M42,
		m.M31*n.M13 + m.M32*n.M23 + m.M33*n.M33 + m.M34*n.M43,
		m.M31*n.M14 + m.M32*n.M24 + m.M33*n.M34 + m.M34*n.M44,

		m.M41*n.M11 + m.M42*n.M21 + m.M43*n.M31 + m.M44*n.M41,
		m.M41*n.M12 + m.M42*n.M22 + m.M43*n.M32 + m.M44*n.M42,
		m.M41*n.M13 + m.M42*n.M23 + m.M43*n.M33 + m.M44*n.M43,
		m.M41*n.M14 + m.M42*n.M24 + m.M43*n.M34 + m.M44*n.M44,
	}
}

// Transpose returns m with rows and columns swapped (Mij ↔ Mji).
func (m Matrix4x4[T]) Transpose() Matrix4x4[T] {
	return Matrix4x4[T]{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// Lerp returns the elementwise interpolation m·(1−t) + n·t. t is not
// clamped. Interpolating rotations this way is only meaningful for small
// differences; use Quaternion.Slerp otherwise.
func (m Matrix4x4[T]) Lerp(n Matrix4x4[T], t T) Matrix4x4[T] {
	return m.MultiplyScalar(1 - t).Add(n.MultiplyScalar(t))
}

// Translation returns the translation row (M41, M42, M43).
func (m Matrix4x4[T]) Translation() Vector3[T] {
	return Vector3[T]{m.M41, m.M42, m.M43}
}

// WithTranslation returns m with the translation row replaced by v. A
// value-returning builder; m itself is unchanged.
func (m Matrix4x4[T]) WithTranslation(v Vector3[T]) Matrix4x4[T] {
	m.M41, m.M42, m.M43 = v.X, v.Y, v.Z

	return m
}

// Determinant returns the full 4x4 determinant by cofactor expansion along
// the first row, sharing the six 2x2 sub-determinants with Invert.
func (m Matrix4x4[T]) Determinant() T {
	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	return a*(f*kpLo-g*jpLn+h*joKn) -
		b*(e*kpLo-g*ipLm+h*ioKm) +
		c*(e*jpLn-f*ipLm+h*inJm) -
		d*(e*joKn-f*ioKm+g*inJm)
}

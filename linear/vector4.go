// SPDX-License-Identifier: MIT

package linear

import "github.com/katalvlaran/affine/scalar"

// Vector4 is an immutable ordered quadruple (X, Y, Z, W) with componentwise
// equality.
type Vector4[T scalar.Float] struct {
	X, Y, Z, W T
}

// FromVector3 widens v into homogeneous coordinates with the given w.
func FromVector3[T scalar.Float](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{v.X, v.Y, v.Z, w}
}

// XYZ narrows v back to its first three components.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// Add returns the elementwise sum v + w.
func (v Vector4[T]) Add(w Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Subtract returns the elementwise difference v − w.
func (v Vector4[T]) Subtract(w Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Multiply returns the elementwise (Hadamard) product v ∘ w.
func (v Vector4[T]) Multiply(w Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

// Divide returns the elementwise quotient v / w.
func (v Vector4[T]) Divide(w Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X / w.X, v.Y / w.Y, v.Z / w.Z, v.W / w.W}
}

// Scale returns v with every component multiplied by s.
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Negate returns −v.
func (v Vector4[T]) Negate() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the scalar product v·w.
func (v Vector4[T]) Dot(w Vector4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// LengthSquared returns |v|².
func (v Vector4[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm |v|.
func (v Vector4[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length; NaN-valued for zero input.
func (v Vector4[T]) Normalize() Vector4[T] {
	return v.Scale(1 / v.Length())
}

// Distance returns |v − w|.
func (v Vector4[T]) Distance(w Vector4[T]) T {
	return v.Subtract(w).Length()
}

// Lerp returns v·(1−t) + w·t. t is not clamped.
func (v Vector4[T]) Lerp(w Vector4[T], t T) Vector4[T] {
	return v.Scale(1 - t).Add(w.Scale(t))
}

// Min returns the componentwise minimum of v and w.
func (v Vector4[T]) Min(w Vector4[T]) Vector4[T] {
	return Vector4[T]{min(v.X, w.X), min(v.Y, w.Y), min(v.Z, w.Z), min(v.W, w.W)}
}

// Max returns the componentwise maximum of v and w.
func (v Vector4[T]) Max(w Vector4[T]) Vector4[T] {
	return Vector4[T]{max(v.X, w.X), max(v.Y, w.Y), max(v.Z, w.Z), max(v.W, w.W)}
}

// Transform applies m to v as a full homogeneous row vector.
func (v Vector4[T]) Transform(m Matrix4x4[T]) Vector4[T] {
	return Vector4[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// Rotate applies the rotation described by q to the XYZ part of v, leaving
// W untouched.
func (v Vector4[T]) Rotate(q Quaternion[T]) Vector4[T] {
	return FromVector3(v.XYZ().Rotate(q), v.W)
}

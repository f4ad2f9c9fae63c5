// SPDX-License-Identifier: MIT

package linear

import "github.com/katalvlaran/affine/scalar"

// Vector2 is an immutable ordered pair (X, Y) with componentwise equality.
type Vector2[T scalar.Float] struct {
	X, Y T
}

// Add returns the elementwise sum v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + w.X, v.Y + w.Y}
}

// Subtract returns the elementwise difference v − w.
func (v Vector2[T]) Subtract(w Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - w.X, v.Y - w.Y}
}

// Multiply returns the elementwise (Hadamard) product v ∘ w.
func (v Vector2[T]) Multiply(w Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X * w.X, v.Y * w.Y}
}

// Divide returns the elementwise quotient v / w.
func (v Vector2[T]) Divide(w Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X / w.X, v.Y / w.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{v.X * s, v.Y * s}
}

// Negate returns −v.
func (v Vector2[T]) Negate() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

// Dot returns the scalar product v·w.
func (v Vector2[T]) Dot(w Vector2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// LengthSquared returns |v|².
func (v Vector2[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm |v|.
func (v Vector2[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length; NaN-valued for zero input.
func (v Vector2[T]) Normalize() Vector2[T] {
	return v.Scale(1 / v.Length())
}

// Distance returns |v − w|.
func (v Vector2[T]) Distance(w Vector2[T]) T {
	return v.Subtract(w).Length()
}

// Lerp returns v·(1−t) + w·t. t is not clamped.
func (v Vector2[T]) Lerp(w Vector2[T], t T) Vector2[T] {
	return v.Scale(1 - t).Add(w.Scale(t))
}

// Min returns the componentwise minimum of v and w.
func (v Vector2[T]) Min(w Vector2[T]) Vector2[T] {
	return Vector2[T]{min(v.X, w.X), min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of v and w.
func (v Vector2[T]) Max(w Vector2[T]) Vector2[T] {
	return Vector2[T]{max(v.X, w.X), max(v.Y, w.Y)}
}

// Transform applies the 2D affine transform m to v as a position, so the
// translation row (M31, M32) participates.
func (v Vector2[T]) Transform(m Matrix3x2[T]) Vector2[T] {
	return Vector2[T]{
		v.X*m.M11 + v.Y*m.M21 + m.M31,
		v.X*m.M12 + v.Y*m.M22 + m.M32,
	}
}

// TransformNormal applies m to v as a direction, ignoring translation.
func (v Vector2[T]) TransformNormal(m Matrix3x2[T]) Vector2[T] {
	return Vector2[T]{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}

// Transform4x4 applies the XY block of a 4x4 transform to v as a position.
func (v Vector2[T]) Transform4x4(m Matrix4x4[T]) Vector2[T] {
	return Vector2[T]{
		v.X*m.M11 + v.Y*m.M21 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + m.M42,
	}
}

// Rotate applies the rotation described by q to v embedded in the XY plane
// as (X, Y, 0); the Z component of the rotated vector is discarded.
func (v Vector2[T]) Rotate(q Quaternion[T]) Vector2[T] {
	r := Vector3[T]{X: v.X, Y: v.Y}.Rotate(q)

	return Vector2[T]{r.X, r.Y}
}

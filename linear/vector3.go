// SPDX-License-Identifier: MIT
// Package linear: the Vector3 kernel.
// Dot, Cross, Length and Normalize are the numeric contract the matrix
// routines (Decompose in particular) are built on; keep their evaluation
// order exactly as written.

package linear

import "github.com/katalvlaran/affine/scalar"

// Vector3 is an immutable ordered triple (X, Y, Z). Equality is
// componentwise (==), so NaN-valued vectors compare unequal to themselves.
type Vector3[T scalar.Float] struct {
	X, Y, Z T
}

// UnitX3 returns the canonical X axis (1, 0, 0).
func UnitX3[T scalar.Float]() Vector3[T] { return Vector3[T]{X: 1} }

// UnitY3 returns the canonical Y axis (0, 1, 0).
func UnitY3[T scalar.Float]() Vector3[T] { return Vector3[T]{Y: 1} }

// UnitZ3 returns the canonical Z axis (0, 0, 1).
func UnitZ3[T scalar.Float]() Vector3[T] { return Vector3[T]{Z: 1} }

// Add returns the elementwise sum v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Subtract returns the elementwise difference v − w.
func (v Vector3[T]) Subtract(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Multiply returns the elementwise (Hadamard) product v ∘ w.
func (v Vector3[T]) Multiply(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Divide returns the elementwise quotient v / w.
func (v Vector3[T]) Divide(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X / w.X, v.Y / w.Y, v.Z / w.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns −v.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product v·w.
func (v Vector3[T]) Dot(w Vector3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v × w.
func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns |v|².
func (v Vector3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean norm |v|.
func (v Vector3[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The caller is responsible for
// avoiding zero-length input: Normalize of the zero vector is NaN-valued,
// not an error.
func (v Vector3[T]) Normalize() Vector3[T] {
	return v.Scale(1 / v.Length())
}

// Distance returns |v − w|.
func (v Vector3[T]) Distance(w Vector3[T]) T {
	return v.Subtract(w).Length()
}

// DistanceSquared returns |v − w|².
func (v Vector3[T]) DistanceSquared(w Vector3[T]) T {
	return v.Subtract(w).LengthSquared()
}

// Lerp returns the linear interpolation v·(1−t) + w·t. t is not clamped.
func (v Vector3[T]) Lerp(w Vector3[T], t T) Vector3[T] {
	return v.Scale(1 - t).Add(w.Scale(t))
}

// Reflect returns v mirrored about the plane with unit normal n:
// v − 2(v·n)n.
func (v Vector3[T]) Reflect(n Vector3[T]) Vector3[T] {
	return v.Subtract(n.Scale(2 * v.Dot(n)))
}

// Min returns the componentwise minimum of v and w.
func (v Vector3[T]) Min(w Vector3[T]) Vector3[T] {
	return Vector3[T]{min(v.X, w.X), min(v.Y, w.Y), min(v.Z, w.Z)}
}

// Max returns the componentwise maximum of v and w.
func (v Vector3[T]) Max(w Vector3[T]) Vector3[T] {
	return Vector3[T]{max(v.X, w.X), max(v.Y, w.Y), max(v.Z, w.Z)}
}

// Clamp returns v with each component limited to [lo, hi] componentwise.
func (v Vector3[T]) Clamp(lo, hi Vector3[T]) Vector3[T] {
	return v.Max(lo).Min(hi)
}

// Transform applies m to v as a position: the row vector (v, 1) times m,
// so translation (row four) participates.
func (v Vector3[T]) Transform(m Matrix4x4[T]) Vector3[T] {
	return Vector3[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
	}
}

// TransformNormal applies m to v as a direction: the row vector (v, 0)
// times m, ignoring translation.
func (v Vector3[T]) TransformNormal(m Matrix4x4[T]) Vector3[T] {
	return Vector3[T]{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// Rotate applies the rotation described by q to v. q is expected to be
// unit length; non-unit quaternions scale the result.
func (v Vector3[T]) Rotate(q Quaternion[T]) Vector3[T] {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z

	wx2, wy2, wz2 := q.W*x2, q.W*y2, q.W*z2
	xx2, xy2, xz2 := q.X*x2, q.X*y2, q.X*z2
	yy2, yz2, zz2 := q.Y*y2, q.Y*z2, q.Z*z2

	return Vector3[T]{
		v.X*(1-yy2-zz2) + v.Y*(xy2-wz2) + v.Z*(xz2+wy2),
		v.X*(xy2+wz2) + v.Y*(1-xx2-zz2) + v.Z*(yz2-wx2),
		v.X*(xz2-wy2) + v.Y*(yz2+wx2) + v.Z*(1-xx2-yy2),
	}
}

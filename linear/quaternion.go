// SPDX-License-Identifier: MIT
// Package linear: quaternion algebra and interpolation.
// Rotation semantics assume unit norm; non-unit quaternions are valid for
// arithmetic, and normalization is the caller's responsibility.

package linear

import "github.com/katalvlaran/affine/scalar"

// Quaternion is an immutable ordered quadruple (X, Y, Z, W); (X, Y, Z) is
// the vector part and W the scalar part. The identity rotation is
// (0, 0, 0, 1).
type Quaternion[T scalar.Float] struct {
	X, Y, Z, W T
}

// IdentityQuaternion returns the rotation identity (0, 0, 0, 1).
func IdentityQuaternion[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// IsIdentity reports whether q is exactly the identity rotation.
func (q Quaternion[T]) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// Dot returns the four-component scalar product q·r.
func (q Quaternion[T]) Dot(r Quaternion[T]) T {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// LengthSquared returns |q|².
func (q Quaternion[T]) LengthSquared() T {
	return q.Dot(q)
}

// Length returns the norm |q|.
func (q Quaternion[T]) Length() T {
	return scalar.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit norm; NaN-valued for zero input.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	s := 1 / q.Length()

	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Scale returns q with every component multiplied by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Add returns the componentwise sum q + r.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Subtract returns the componentwise difference q − r.
func (q Quaternion[T]) Subtract(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

// Negate returns −q, the other representative of the same rotation
// (double cover).
func (q Quaternion[T]) Negate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, -q.W}
}

// Conjugate returns (−X, −Y, −Z, W); for unit q this is the inverse
// rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns q⁻¹ = Conjugate(q) / |q|²; NaN-valued for zero input.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.LengthSquared())
}

// Multiply returns the Hamilton product q·r: the rotation applying r first
// and then q. Not commutative.
func (q Quaternion[T]) Multiply(r Quaternion[T]) Quaternion[T] {
	// Vector part: q.W·rv + r.W·qv + qv × rv; scalar part: q.W·r.W − qv·rv.
	cx := q.Y*r.Z - q.Z*r.Y
	cy := q.Z*r.X - q.X*r.Z
	cz := q.X*r.Y - q.Y*r.X

	return Quaternion[T]{
		q.X*r.W + r.X*q.W + cx,
		q.Y*r.W + r.Y*q.W + cy,
		q.Z*r.W + r.Z*q.W + cz,
		q.W*r.W - (q.X*r.X + q.Y*r.Y + q.Z*r.Z),
	}
}

// Concatenate returns the rotation applying q first and then r, i.e. r·q.
func (q Quaternion[T]) Concatenate(r Quaternion[T]) Quaternion[T] {
	return r.Multiply(q)
}

// QuaternionFromAxisAngle builds the rotation of angle radians about axis.
// axis is expected to be unit length.
func QuaternionFromAxisAngle[T scalar.Float](axis Vector3[T], angle T) Quaternion[T] {
	half := angle * scalar.FromFloat64[T](0.5)
	s, c := scalar.Sin(half), scalar.Cos(half)

	return Quaternion[T]{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuaternionFromYawPitchRoll builds the rotation from yaw (about Y), pitch
// (about X) and roll (about Z), all in radians, applied in roll-pitch-yaw
// order.
func QuaternionFromYawPitchRoll[T scalar.Float](yaw, pitch, roll T) Quaternion[T] {
	half := scalar.FromFloat64[T](0.5)

	sr, cr := scalar.Sin(roll*half), scalar.Cos(roll*half)
	sp, cp := scalar.Sin(pitch*half), scalar.Cos(pitch*half)
	sy, cy := scalar.Sin(yaw*half), scalar.Cos(yaw*half)

	return Quaternion[T]{
		cy*sp*cr + sy*cp*sr,
		sy*cp*cr - cy*sp*sr,
		cy*cp*sr - sy*sp*cr,
		cy*cp*cr + sy*sp*sr,
	}
}

// CreateFromRotationMatrix extracts the rotation quaternion of the
// upper-left 3x3 block of m, which must be orthonormal for the result to be
// meaningful.
//
// The branch structure is the numerically stable standard algorithm: when
// the trace is positive the pivot s = √(trace+1) is safely away from zero;
// otherwise the diagonal-dominant axis is chosen so the square root stays
// well-conditioned and no division by a near-zero s occurs.
func CreateFromRotationMatrix[T scalar.Float](m Matrix4x4[T]) Quaternion[T] {
	half := scalar.FromFloat64[T](0.5)
	trace := m.M11 + m.M22 + m.M33

	// 1) Positive trace: pivot on the scalar part.
	if trace > 0 {
		s := scalar.Sqrt(trace + 1)
		invS := half / s

		return Quaternion[T]{
			(m.M23 - m.M32) * invS,
			(m.M31 - m.M13) * invS,
			(m.M12 - m.M21) * invS,
			s * half,
		}
	}

	// 2) Non-positive trace: pivot on the dominant diagonal entry.
	switch {
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		s := scalar.Sqrt(1 + m.M11 - m.M22 - m.M33)
		invS := half / s

		return Quaternion[T]{
			half * s,
			(m.M12 + m.M21) * invS,
			(m.M13 + m.M31) * invS,
			(m.M23 - m.M32) * invS,
		}
	case m.M22 > m.M33:
		s := scalar.Sqrt(1 + m.M22 - m.M11 - m.M33)
		invS := half / s

		return Quaternion[T]{
			(m.M21 + m.M12) * invS,
			half * s,
			(m.M32 + m.M23) * invS,
			(m.M31 - m.M13) * invS,
		}
	default:
		s := scalar.Sqrt(1 + m.M33 - m.M11 - m.M22)
		invS := half / s

		return Quaternion[T]{
			(m.M31 + m.M13) * invS,
			(m.M32 + m.M23) * invS,
			half * s,
			(m.M12 - m.M21) * invS,
		}
	}
}

// Lerp returns the normalized linear interpolation between q and r at t,
// taking the shortest arc: when q·r < 0 the r operand is negated so the
// blend does not travel the long way around the double cover.
func (q Quaternion[T]) Lerp(r Quaternion[T], t T) Quaternion[T] {
	t1 := 1 - t

	var out Quaternion[T]
	if q.Dot(r) >= 0 {
		out = q.Scale(t1).Add(r.Scale(t))
	} else {
		out = q.Scale(t1).Subtract(r.Scale(t))
	}

	return out.Normalize()
}

// Slerp returns the spherical linear interpolation between q and r at t.
// The shortest arc is taken by sign-flipping r when q·r < 0, and when the
// operands are nearly parallel (cosOmega > 1 − 1e-6) the weights fall back
// to the sign-adjusted linear form to avoid dividing by sin(omega) ≈ 0.
// For unit inputs the result is unit by construction.
func (q Quaternion[T]) Slerp(r Quaternion[T], t T) Quaternion[T] {
	cosOmega := q.Dot(r)

	flip := false
	if cosOmega < 0 {
		flip = true
		cosOmega = -cosOmega
	}

	var s1, s2 T
	if cosOmega > scalar.FromFloat64[T](1-slerpEpsilon) {
		// Near-parallel: sin(omega) vanishes, use linear weights.
		s1 = 1 - t
		s2 = t
	} else {
		omega := scalar.Acos(cosOmega)
		invSinOmega := 1 / scalar.Sin(omega)

		s1 = scalar.Sin((1-t)*omega) * invSinOmega
		s2 = scalar.Sin(t*omega) * invSinOmega
	}
	if flip {
		s2 = -s2
	}

	return q.Scale(s1).Add(r.Scale(s2))
}

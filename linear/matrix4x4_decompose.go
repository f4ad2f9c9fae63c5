// SPDX-License-Identifier: MIT
// Package linear: Matrix4x4 → (scale, rotation, translation) decomposition.
// The input is assumed to be a Scale·Rotate·Translate composition; the
// routine is a Gram–Schmidt style orthonormalization with degenerate-axis
// recovery and a post-hoc validity check against shear.
//
// The ranking cascades below are order-sensitive behavioral contract:
// alternate tie-breaking changes which axis gets reconstructed by cross
// product on degenerate input. Keep the comparison chains exactly as
// written.

package linear

import "github.com/katalvlaran/affine/scalar"

// rankDescending orders the three axis indices by descending magnitude,
// returning (largest, middle, smallest). Strict < comparisons make the
// smaller index win every tie.
func rankDescending[T scalar.Float](x, y, z T) (a, b, c int) {
	if x < y {
		if y < z {
			return 2, 1, 0
		}
		if x < z {
			return 1, 2, 0
		}

		return 1, 0, 2
	}

	if x < z {
		return 2, 0, 1
	}
	if y < z {
		return 0, 2, 1
	}

	return 0, 1, 2
}

// minAxis returns the index of the smallest of the three magnitudes, with
// the same comparison cascade (and therefore the same tie-breaks) as
// rankDescending.
func minAxis[T scalar.Float](x, y, z T) int {
	if x < y {
		if y < z {
			return 0
		}
		if x < z {
			return 0
		}

		return 2
	}

	if x < z {
		return 1
	}
	if y < z {
		return 1
	}

	return 2
}

// Decompose extracts the scale, rotation and translation of an SRT matrix.
// ok is false when the upper-left 3x3 block is not, within tolerance, a
// per-axis-scaled orthogonal basis (shear or skew); rotation is then the
// identity while scale and translation stay populated best-effort and
// should be treated as unreliable.
//
// Near-zero-length basis rows are recovered in place rather than reported:
// the dominant axis falls back to its canonical unit vector, the middle
// axis is rebuilt as a cross product against the canonical axis least
// aligned with the dominant one, and the smallest axis as the cross product
// of the other two. A mirrored (negative-determinant) basis is repaired by
// negating the dominant axis and its scale component.
//
// The tolerance is DefaultDecomposeEpsilon unless overridden with
// WithDecomposeEpsilon.
func (m Matrix4x4[T]) Decompose(opts ...Option[T]) (scale Vector3[T], rotation Quaternion[T], translation Vector3[T], ok bool) {
	cfg := gatherOptions(opts...)
	eps := cfg.decomposeEps

	// 1) Translation is row four, verbatim.
	translation = Vector3[T]{m.M41, m.M42, m.M43}

	// 2) Basis rows of the upper-left 3x3 block and their lengths.
	basis := [3]Vector3[T]{
		{m.M11, m.M12, m.M13},
		{m.M21, m.M22, m.M23},
		{m.M31, m.M32, m.M33},
	}
	canonical := [3]Vector3[T]{UnitX3[T](), UnitY3[T](), UnitZ3[T]()}

	scales := [3]T{basis[0].Length(), basis[1].Length(), basis[2].Length()}

	// 3) Rank axes by descending length; recovery order depends on it.
	a, b, c := rankDescending(scales[0], scales[1], scales[2])

	// 4) Dominant axis: canonical substitution, then normalize.
	if scales[a] < eps {
		basis[a] = canonical[a]
	}
	basis[a] = basis[a].Normalize()

	// 5) Middle axis: rebuild against the canonical axis least aligned with
	// the dominant one, then normalize.
	if scales[b] < eps {
		cc := minAxis(scalar.Abs(basis[a].X), scalar.Abs(basis[a].Y), scalar.Abs(basis[a].Z))
		basis[b] = basis[a].Cross(canonical[cc])
	}
	basis[b] = basis[b].Normalize()

	// 6) Smallest axis: the remaining orthogonal direction.
	if scales[c] < eps {
		basis[c] = basis[a].Cross(basis[b])
	}
	basis[c] = basis[c].Normalize()

	// 7) Determinant of the orthonormalized basis: the scalar triple
	// product of its rows. ±1 for a clean basis.
	det := basis[0].Dot(basis[1].Cross(basis[2]))

	// 8) Negative determinant means a mirrored basis: flip the dominant
	// axis and its scale back into a right-handed frame.
	if det < 0 {
		scales[a] = -scales[a]
		basis[a] = basis[a].Negate()
		det = -det
	}

	scale = Vector3[T]{scales[0], scales[1], scales[2]}

	// 9) (det−1)² beyond tolerance: the input was not SRT (shear).
	det -= 1
	det *= det
	if det > eps {
		return scale, IdentityQuaternion[T](), translation, false
	}

	// 10) The basis is orthonormal; read the rotation off it.
	r := Matrix4x4[T]{
		M11: basis[0].X, M12: basis[0].Y, M13: basis[0].Z,
		M21: basis[1].X, M22: basis[1].Y, M23: basis[1].Z,
		M31: basis[2].X, M32: basis[2].Y, M33: basis[2].Z,
		M44: 1,
	}

	return scale, CreateFromRotationMatrix(r), translation, true
}

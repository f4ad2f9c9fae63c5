// SPDX-License-Identifier: MIT
// Package linear: closed-form Matrix4x4 inversion.
// Adjugate/cofactor inverse: transpose of the cofactor matrix scaled by
// 1/det. Exact (no iterative refinement); error grows with ill-conditioning
// and is not separately bounded.

package linear

import "github.com/katalvlaran/affine/scalar"

// nan4x4 returns the all-NaN sentinel matrix produced on singular input.
func nan4x4[T scalar.Float]() Matrix4x4[T] {
	n := scalar.NaN[T]()

	return Matrix4x4[T]{
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
	}
}

// Invert returns the inverse of m and true, or an all-NaN matrix and false
// when |det(m)| falls below the singularity threshold (machine epsilon by
// default, override with WithSingularEpsilon). Callers must check the
// boolean before trusting the result.
//
// The expansion factors the sixteen cofactors through eighteen shared 2x2
// sub-determinants (53 additions, 104 multiplications, 1 division), filling
// the adjugate transpose column by column.
func (m Matrix4x4[T]) Invert(opts ...Option[T]) (Matrix4x4[T], bool) {
	cfg := gatherOptions(opts...)

	a, b, c, d := m.M11, m.M12, m.M13, m.M14
	e, f, g, h := m.M21, m.M22, m.M23, m.M24
	i, j, k, l := m.M31, m.M32, m.M33, m.M34
	mm, n, o, p := m.M41, m.M42, m.M43, m.M44

	// 1) 2x2 sub-determinants of rows three and four.
	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	// 2) First-column cofactors and the determinant.
	a11 := +(f*kpLo - g*jpLn + h*joKn)
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := +(e*jpLn - f*ipLm + h*inJm)
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14
	if scalar.Abs(det) < cfg.singularEps {
		return nan4x4[T](), false
	}

	invDet := 1 / det

	var out Matrix4x4[T]

	// 3) Column one of the inverse: the cofactors already computed.
	out.M11 = a11 * invDet
	out.M21 = a12 * invDet
	out.M31 = a13 * invDet
	out.M41 = a14 * invDet

	// 4) Column two: cofactors of the first row against rows three/four.
	out.M12 = -(b*kpLo - c*jpLn + d*joKn) * invDet
	out.M22 = +(a*kpLo - c*ipLm + d*ioKm) * invDet
	out.M32 = -(a*jpLn - b*ipLm + d*inJm) * invDet
	out.M42 = +(a*joKn - b*ioKm + c*inJm) * invDet

	// 5) Column three: sub-determinants of rows two and four.
	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*mm
	eoGm := e*o - g*mm
	enFm := e*n - f*mm

	out.M13 = +(b*gpHo - c*fpHn + d*foGn) * invDet
	out.M23 = -(a*gpHo - c*epHm + d*eoGm) * invDet
	out.M33 = +(a*fpHn - b*epHm + d*enFm) * invDet
	out.M43 = -(a*foGn - b*eoGm + c*enFm) * invDet

	// 6) Column four: sub-determinants of rows two and three.
	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	out.M14 = -(b*glHk - c*flHj + d*fkGj) * invDet
	out.M24 = +(a*glHk - c*elHi + d*ekGi) * invDet
	out.M34 = -(a*flHj - b*elHi + d*ejFi) * invDet
	out.M44 = +(a*fkGj - b*ekGi + c*ejFi) * invDet

	return out, true
}

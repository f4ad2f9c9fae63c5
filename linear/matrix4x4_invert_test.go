package linear_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine/linear"
)

func TestInvertIdentityFixedPoint(t *testing.T) {
	inv, ok := linear.Identity4x4[float64]().Invert()
	require.True(t, ok)
	require.Equal(t, linear.Identity4x4[float64](), inv)
}

func TestInvertRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    linear.Matrix4x4[float64]
		tol  float64
	}{
		{
			name: "translation",
			m:    linear.CreateTranslation(linear.Vector3[float64]{X: 5, Y: -3, Z: 12}),
			tol:  1e-12,
		},
		{
			name: "scale",
			m:    linear.CreateScale(linear.Vector3[float64]{X: 2, Y: 0.5, Z: -4}),
			tol:  1e-12,
		},
		{
			name: "rotation",
			m:    linear.CreateFromAxisAngle(linear.Vector3[float64]{X: 1, Y: 1, Z: 1}.Normalize(), 2.2),
			tol:  1e-12,
		},
		{
			name: "composite srt",
			m: srt(
				linear.Vector3[float64]{X: 2, Y: 3, Z: 4},
				linear.QuaternionFromYawPitchRoll(0.5, -0.3, 1.1),
				linear.Vector3[float64]{X: 7, Y: 8, Z: 9},
			),
			tol: 1e-11,
		},
		{
			name: "dense well-conditioned",
			m: linear.Matrix4x4[float64]{
				M11: 4, M12: 1, M13: 0, M14: 2,
				M21: 1, M22: 5, M23: 1, M24: 0,
				M31: 0, M32: 1, M33: 6, M34: 1,
				M41: 2, M42: 0, M43: 1, M44: 7,
			},
			tol: 1e-12,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			inv, ok := tc.m.Invert()
			require.True(t, ok, "matrix is well-conditioned, inversion must succeed")

			requireMatrixApprox(t, linear.Identity4x4[float64](), tc.m.Multiply(inv), tc.tol)
			requireMatrixApprox(t, linear.Identity4x4[float64](), inv.Multiply(tc.m), tc.tol)
		})
	}
}

func TestInvertInverseOfTranslationIsNegation(t *testing.T) {
	v := linear.Vector3[float64]{X: 5, Y: -3, Z: 12}
	inv, ok := linear.CreateTranslation(v).Invert()
	require.True(t, ok)
	require.Equal(t, linear.CreateTranslation(v.Negate()), inv)
}

func TestInvertSingular(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    linear.Matrix4x4[float64]
	}{
		{name: "zero matrix", m: linear.Matrix4x4[float64]{}},
		{name: "zero scale axis", m: linear.CreateScale(linear.Vector3[float64]{X: 1, Y: 0, Z: 1})},
		{
			// Rank two: row three is the sum of rows one and two.
			name: "linearly dependent rows",
			m: linear.Matrix4x4[float64]{
				M11: 1, M12: 2, M13: 3, M14: 4,
				M21: 5, M22: 6, M23: 7, M24: 8,
				M31: 6, M32: 8, M33: 10, M34: 12,
				M41: 0, M42: 0, M43: 0, M44: 1,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := tc.m.Invert()
			require.False(t, ok, "singular matrix must be rejected")
			requireAllNaN4x4(t, res)
		})
	}
}

func TestInvertSingularEpsilonOverride(t *testing.T) {
	// det = 1e-6: singular under a loose threshold, invertible under the
	// default machine-epsilon policy.
	m := linear.CreateScale(linear.Vector3[float64]{X: 1e-2, Y: 1e-2, Z: 1e-2})

	_, ok := m.Invert()
	require.True(t, ok)

	_, ok = m.Invert(linear.WithSingularEpsilon(1e-3))
	require.False(t, ok)
}

func TestInvertMatchesAdjugateOverDeterminant(t *testing.T) {
	// Cross-check a full inverse against the classical adjugate identity
	// M·adj(M) = det(M)·I, using the independent Determinant kernel.
	m := arbitrary
	m.M11 = 1 // break the pattern so det is comfortably non-zero

	inv, ok := m.Invert()
	require.True(t, ok)

	det := m.Determinant()
	require.NotZero(t, det)
	requireMatrixApprox(t, linear.Identity4x4[float64](), m.Multiply(inv), 1e-9)
	requireMatrixApprox(t, inv.MultiplyScalar(det).Multiply(m), linear.Identity4x4[float64]().MultiplyScalar(det), 1e-9)
}

package linear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/affine/linear"
)

// DecomposeSuite exercises the SRT decomposition under clean, mirrored,
// degenerate and invalid inputs.
type DecomposeSuite struct {
	suite.Suite
}

// TestAxisAlignedRoundTrip verifies the canonical compose→decompose cycle
// with an identity rotation.
func (s *DecomposeSuite) TestAxisAlignedRoundTrip() {
	m := srt(
		linear.Vector3[float64]{X: 2, Y: 3, Z: 4},
		linear.IdentityQuaternion[float64](),
		linear.Vector3[float64]{X: 5, Y: 6, Z: 7},
	)

	scale, rot, trans, ok := m.Decompose()
	require.True(s.T(), ok)
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: 2, Y: 3, Z: 4}, scale, 1e-12)
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: 5, Y: 6, Z: 7}, trans, 1e-12)
	requireQuaternionApprox(s.T(), linear.IdentityQuaternion[float64](), rot, 1e-12)
}

// TestRotatedRoundTrip verifies the cycle with a non-trivial rotation.
func (s *DecomposeSuite) TestRotatedRoundTrip() {
	q := linear.QuaternionFromAxisAngle(linear.Vector3[float64]{X: 3, Y: -1, Z: 2}.Normalize(), 1.25)
	m := srt(
		linear.Vector3[float64]{X: 1.5, Y: 0.25, Z: 8},
		q,
		linear.Vector3[float64]{X: -10, Y: 0, Z: 4},
	)

	scale, rot, trans, ok := m.Decompose()
	require.True(s.T(), ok)
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: 1.5, Y: 0.25, Z: 8}, scale, 1e-9)
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: -10, Y: 0, Z: 4}, trans, 1e-12)
	requireQuaternionApprox(s.T(), q, rot, 1e-9)

	// Recomposing must reproduce the input.
	requireMatrixApprox(s.T(), m, srt(scale, rot, trans), 1e-9)
}

// TestHandednessFlip verifies that a mirror scale decomposes into a
// negative scale component plus a proper (positive-determinant) rotation.
func (s *DecomposeSuite) TestHandednessFlip() {
	m := srt(
		linear.Vector3[float64]{X: -1, Y: 1, Z: 1},
		linear.IdentityQuaternion[float64](),
		linear.Vector3[float64]{},
	)

	scale, rot, _, ok := m.Decompose()
	require.True(s.T(), ok)

	// Exactly one negative scale component carries the mirror.
	negatives := 0
	for _, c := range []float64{scale.X, scale.Y, scale.Z} {
		if c < 0 {
			negatives++
		}
	}
	require.Equal(s.T(), 1, negatives, "mirror must surface as one negative scale axis")

	// The rotation is proper: its matrix has determinant +1.
	r := linear.CreateFromQuaternion(rot)
	require.InDelta(s.T(), 1.0, r.Determinant(), 1e-9)

	// And recomposition reproduces the mirror matrix.
	requireMatrixApprox(s.T(), m, srt(scale, rot, linear.Vector3[float64]{}), 1e-9)
}

// TestShearRejected verifies that a sheared basis fails the SRT validity
// check while translation stays populated best-effort.
func (s *DecomposeSuite) TestShearRejected() {
	shear := linear.Identity4x4[float64]()
	shear.M21 = 0.75 // X leaks into row Y: upper 3x3 no longer orthogonal
	shear.M41, shear.M42, shear.M43 = 1, 2, 3

	_, rot, trans, ok := shear.Decompose()
	require.False(s.T(), ok, "shear is not an SRT composition")
	require.True(s.T(), rot.IsIdentity(), "rotation defaults to identity on failure")
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: 1, Y: 2, Z: 3}, trans, 1e-12)
}

// TestDegenerateSingleAxis verifies canonical-axis recovery when one basis
// row vanishes: the remaining frame must still decompose successfully with
// a zero scale on the collapsed axis.
func (s *DecomposeSuite) TestDegenerateSingleAxis() {
	m := srt(
		linear.Vector3[float64]{X: 2, Y: 0, Z: 3},
		linear.IdentityQuaternion[float64](),
		linear.Vector3[float64]{X: 1, Y: 1, Z: 1},
	)

	scale, rot, trans, ok := m.Decompose()
	require.True(s.T(), ok, "degenerate axes are recovered, not reported")
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: 2, Y: 0, Z: 3}, scale, 1e-12)
	requireVectorApprox(s.T(), linear.Vector3[float64]{X: 1, Y: 1, Z: 1}, trans, 1e-12)
	requireQuaternionApprox(s.T(), linear.IdentityQuaternion[float64](), rot, 1e-12)
}

// TestDegenerateTwoAxes verifies cross-product reconstruction when two
// basis rows vanish.
func (s *DecomposeSuite) TestDegenerateTwoAxes() {
	m := srt(
		linear.Vector3[float64]{X: 0, Y: 5, Z: 0},
		linear.IdentityQuaternion[float64](),
		linear.Vector3[float64]{},
	)

	scale, rot, _, ok := m.Decompose()
	require.True(s.T(), ok)

	// Reconstruction fixes magnitudes but may mirror the surviving axis
	// into the handedness flip, so only |scale| is pinned down.
	require.Equal(s.T(), 0.0, scale.X)
	require.InDelta(s.T(), 5.0, math.Abs(scale.Y), 1e-12)
	require.Equal(s.T(), 0.0, scale.Z)

	// The reconstructed rotation must still be proper, and the pair must
	// recompose into the original matrix.
	r := linear.CreateFromQuaternion(rot)
	require.InDelta(s.T(), 1.0, r.Determinant(), 1e-9)
	requireMatrixApprox(s.T(), m, srt(scale, rot, linear.Vector3[float64]{}), 1e-9)
}

// TestZeroMatrix verifies the fully collapsed input: every axis is rebuilt
// from canonical vectors, so decomposition succeeds with zero scale and
// some proper rotation of the reconstructed frame.
func (s *DecomposeSuite) TestZeroMatrix() {
	var m linear.Matrix4x4[float64]

	scale, rot, trans, ok := m.Decompose()
	require.True(s.T(), ok)
	require.Equal(s.T(), linear.Vector3[float64]{}, scale)
	require.Equal(s.T(), linear.Vector3[float64]{}, trans)

	r := linear.CreateFromQuaternion(rot)
	require.InDelta(s.T(), 1.0, r.Determinant(), 1e-9)
}

// TestEpsilonOverride verifies that WithDecomposeEpsilon widens the SRT
// acceptance band.
func (s *DecomposeSuite) TestEpsilonOverride() {
	nearShear := linear.Identity4x4[float64]()
	nearShear.M21 = 0.05 // small shear: (det-1)² ≈ 0, basis clearly non-orthogonal

	// The slight shear passes the default band but must fail a tight one.
	_, _, _, ok := nearShear.Decompose(linear.WithDecomposeEpsilon[float64](1e-12))
	require.False(s.T(), ok)

	// And a generous band accepts even the strong shear from TestShearRejected.
	strong := linear.Identity4x4[float64]()
	strong.M21 = 0.75
	_, _, _, ok = strong.Decompose(linear.WithDecomposeEpsilon[float64](10))
	require.True(s.T(), ok)
}

func TestDecomposeSuite(t *testing.T) {
	suite.Run(t, new(DecomposeSuite))
}

package linear_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affine/linear"
)

type v2 = linear.Vector2[float64]

func TestVector2Algebra(t *testing.T) {
	a := v2{X: 3, Y: -4}
	b := v2{X: 1, Y: 2}

	require.Equal(t, v2{X: 4, Y: -2}, a.Add(b))
	require.Equal(t, v2{X: 2, Y: -6}, a.Subtract(b))
	require.Equal(t, v2{X: 3, Y: -8}, a.Multiply(b))
	require.Equal(t, v2{X: 3, Y: -2}, a.Divide(b))
	require.Equal(t, v2{X: -3, Y: 4}, a.Negate())
	require.Equal(t, v2{X: 1.5, Y: -2}, a.Scale(0.5))
	require.Equal(t, -5.0, a.Dot(b))
	require.Equal(t, 5.0, a.Length())
	require.Equal(t, 25.0, a.LengthSquared())
	require.Equal(t, v2{X: 1, Y: -4}, a.Min(b))
	require.Equal(t, v2{X: 3, Y: 2}, a.Max(b))
	require.InDelta(t, 1.0, a.Normalize().Length(), 1e-15)
	require.Equal(t, math.Sqrt(40), a.Distance(b))
	require.Equal(t, v2{X: 2, Y: -1}, a.Lerp(b, 0.5))
}

func TestVector2Transform(t *testing.T) {
	v := v2{X: 1, Y: 2}

	// 2D affine: positions pick up the translation row, directions do not.
	m := linear.CreateRotation2D[float64](math.Pi / 2).
		Multiply(linear.CreateTranslation2D(v2{X: 10, Y: 20}))
	got := v.Transform(m)
	require.InDelta(t, 8.0, got.X, 1e-15)  // (1,2) rotates to (-2,1), then +10
	require.InDelta(t, 21.0, got.Y, 1e-15) // then +20

	dir := v.TransformNormal(m)
	require.InDelta(t, -2.0, dir.X, 1e-15)
	require.InDelta(t, 1.0, dir.Y, 1e-15)

	// XY block of a 4x4 translation.
	m4 := linear.CreateTranslation(linear.Vector3[float64]{X: 7, Y: -1, Z: 99})
	require.Equal(t, v2{X: 8, Y: 1}, v.Transform4x4(m4))
}

func TestVector2Rotate(t *testing.T) {
	quarter := linear.QuaternionFromAxisAngle(linear.UnitZ3[float64](), math.Pi/2)

	got := v2{X: 1, Y: 0}.Rotate(quarter)
	require.InDelta(t, 0.0, got.X, 1e-15)
	require.InDelta(t, 1.0, got.Y, 1e-15)

	// Agrees with the Vector3 rotation of the embedded (X, Y, 0) point.
	v := v2{X: 3, Y: -4}
	q := linear.QuaternionFromAxisAngle(linear.Vector3[float64]{X: 1, Y: 2, Z: 3}.Normalize(), 0.8)
	r3 := linear.Vector3[float64]{X: v.X, Y: v.Y}.Rotate(q)
	got = v.Rotate(q)
	require.Equal(t, v2{X: r3.X, Y: r3.Y}, got)
}

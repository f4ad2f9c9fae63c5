package linear_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/affine/linear"
	"github.com/katalvlaran/affine/scalar"
)

// approxOpt builds the go-cmp option treating float64 leaves within tol of
// each other as equal.
func approxOpt(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// requireMatrixApprox fails the test when got and want differ by more than
// tol in any entry.
func requireMatrixApprox(t *testing.T, want, got linear.Matrix4x4[float64], tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approxOpt(tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// requireVectorApprox fails the test when got and want differ by more than
// tol in any component.
func requireVectorApprox(t *testing.T, want, got linear.Vector3[float64], tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approxOpt(tol)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// requireQuaternionApprox fails the test when got matches neither want nor
// its negation within tol — q and −q describe the same rotation (double
// cover), so both representatives are accepted.
func requireQuaternionApprox(t *testing.T, want, got linear.Quaternion[float64], tol float64) {
	t.Helper()
	if cmp.Equal(want, got, approxOpt(tol)) || cmp.Equal(want.Negate(), got, approxOpt(tol)) {
		return
	}
	t.Fatalf("quaternion mismatch: want %v (or its negation), got %v", want, got)
}

// requireAllNaN4x4 fails the test unless every entry of m is NaN.
func requireAllNaN4x4(t *testing.T, m linear.Matrix4x4[float64]) {
	t.Helper()
	for i, v := range []float64{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	} {
		if !scalar.IsNaN(v) {
			t.Fatalf("entry %d of singular-result matrix is %v, want NaN", i, v)
		}
	}
}

// srt composes scale·rotate·translate the way callers of Decompose do.
func srt(scale linear.Vector3[float64], rotation linear.Quaternion[float64], translation linear.Vector3[float64]) linear.Matrix4x4[float64] {
	return linear.CreateScale(scale).
		Multiply(linear.CreateFromQuaternion(rotation)).
		Multiply(linear.CreateTranslation(translation))
}

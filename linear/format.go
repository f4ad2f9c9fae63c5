// SPDX-License-Identifier: MIT
// Package linear: human-readable formatting. Debug output only; no parsing
// counterpart exists and the layout is not a stability contract.

package linear

import "fmt"

// String renders v as (X, Y).
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// String renders v as (X, Y, Z).
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// String renders v as (X, Y, Z, W).
func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// String renders q as (X, Y, Z, W).
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// String renders m row by row.
func (m Matrix3x2[T]) String() string {
	return fmt.Sprintf("[[%v %v] [%v %v] [%v %v]]",
		m.M11, m.M12, m.M21, m.M22, m.M31, m.M32)
}

// String renders m row by row.
func (m Matrix4x4[T]) String() string {
	return fmt.Sprintf("[[%v %v %v %v] [%v %v %v %v] [%v %v %v %v] [%v %v %v %v]]",
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44)
}

// Package linear holds the entity types of the affine kernel — Vector2,
// Vector3, Vector4, Quaternion, Matrix3x2 and Matrix4x4 — and every
// operation over them.
//
// The linear package provides:
//
//   - Full elementwise vector algebra plus the Vector3 kernel (Dot, Cross,
//     Length, Normalize, Lerp, Reflect) consumed by the matrix routines.
//   - Row-vector Matrix4x4 algebra: positions are rows and transform as
//     v' = v·M, so transforms compose left-to-right and translation lives
//     in row four (M41..M43).
//   - Closed-form cofactor inversion with singularity detection.
//   - Scale·Rotate·Translate decomposition tolerant of near-degenerate bases.
//   - Bidirectional quaternion↔rotation-matrix conversion and shortest-arc
//     quaternion interpolation (Lerp, Slerp).
//   - The Matrix3x2 2D affine family and camera/projection builders
//     (perspective, orthographic, look-at, billboard).
//
// Every value is immutable and every operation is a pure function; the
// package is safe for unsynchronized concurrent use. Numeric failure is
// never a panic: singular inversion and non-SRT decomposition report a
// boolean and fill fallible results with NaN sentinels, while builders that
// validate argument ranges return package sentinel errors (errors.Is).
//
// See the examples in this package and scalar for usage patterns.
package linear

// Package affine is a generic, scalar-parameterized linear-algebra kernel
// for 2D/3D/4D vectors, quaternions and 3x2/4x4 affine matrices — the
// geometric substrate for graphics, simulation and transform pipelines.
//
// 🚀 What is affine?
//
//	A small, allocation-free library of immutable value types that brings together:
//		• Vectors: Vector2, Vector3, Vector4 with full elementwise algebra
//		• Quaternions: rotation algebra, Lerp/Slerp, axis-angle & yaw-pitch-roll
//		• Matrix3x2: the 2D affine transform family
//		• Matrix4x4: row-vector affine algebra, closed-form inversion,
//		  SRT decomposition and quaternion↔matrix conversion
//		• Camera builders: perspective, orthographic, look-at, billboard
//
// ✨ Why choose affine?
//
//   - Generic over float32 and float64 – one instantiation per precision
//   - Pure values – every operation is a side-effect-free function, safe to
//     call concurrently with no synchronization
//   - Explicit failure – singular and non-SRT inputs report a boolean, never panic
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	scalar/ — the numeric capability trait (epsilon, NaN, sqrt, trig) shared
//	          by every entity type
//	linear/ — the entity types and every operation over them
//
// Quick orientation: positions are row vectors, so transforms compose
// left-to-right:
//
//	world := scaleM.Multiply(rotM).Multiply(transM)
//	p2 := p.Transform(world)
//
//	go get github.com/katalvlaran/affine
package affine

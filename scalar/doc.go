// Package scalar defines the numeric capability trait shared by every
// entity type in the affine library.
//
// The trait has two halves:
//
//   - Float — a type-set constraint admitting exactly the IEEE-754 binary32
//     and binary64 shapes (float32, float64 and types defined on them).
//     Arithmetic, comparison and conversion come straight from the language.
//   - Capability helpers — Zero, One, NaN, Epsilon, FromFloat64, Abs, Sqrt,
//     Sin, Cos, Tan, Acos, IsNaN — the operations Go operators do not
//     provide for a type parameter.
//
// All helpers guarantee IEEE-754 behavior: Sqrt of a negative value yields
// NaN rather than an error, and every comparison involving NaN is false.
// Higher packages call through these helpers and never import math directly,
// so the precision of every intermediate is decided in exactly one place.
package scalar

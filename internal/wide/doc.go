// Package wide provides SIMD-friendly wide types for batch mask evaluation.
//
// This package implements wide types (F32x8, M32x8, I32x8, U16x16) that are
// designed to enable Go compiler auto-vectorization. By using fixed-size
// arrays and simple loops, these types allow the compiler to generate SIMD
// instructions on supported architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// F32x8: 8 float32 lanes, one per pixel of a scanline chunk.
// M32x8: 8 lane flags produced by comparisons and consumed by Select.
// I32x8: 8 int32 lookup indices for Gather.
// U16x16: 16 uint16 values for alpha channel scaling.
//
// # Branches
//
// Scalar code such as
//
//	if n > 1 {
//	    return 255
//	}
//	return f(n)
//
// becomes a compare followed by a select, so every lane runs the same
// instructions:
//
//	outside := n.Gt(one)
//	v := wide.Select(outside, max, f(n))
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
package wide

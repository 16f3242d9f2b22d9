// Package dot provides float64 dot product kernels.
//
// # Dot Product Functions
//
//   - DotScalar(x, y []float64) float64 - reference left-to-right accumulation
//   - DotVec(x, y []float64) float64 - portable two-lane vectorized kernel
//   - Dot(x, y []float64) float64 - best vectorized kernel for this build
//
// # Algorithm
//
// The vectorized kernels keep Accumulators independent vector accumulators
// so consecutive fused multiply-adds do not wait on each other:
//  1. Process blocks of Accumulators*lanes elements, one FMA per accumulator
//  2. Tree-combine the accumulators into one register
//  3. Process remaining whole registers one at a time
//  4. Horizontal sum, then a scalar tail for the last odd element
//
// The products are the same as DotScalar's but grouped differently, so the
// results agree to rounding error, not bit for bit.
//
// # Example Usage
//
//	import "github.com/ajroetker/hwyblas/hwy/contrib/dot"
//
//	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
//	y := []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}
//	result := dot.Dot(x, y) // 165
//
// # Preconditions
//
// len(x) must equal len(y). Lengths are not checked; extra elements of y are
// ignored and a shorter y panics on the Go bounds check.
//
// # Build Requirements
//
// The AVX2 kernel requires GOEXPERIMENT=simd on amd64. Every other build
// uses DotVec.
package dot

// Package accel adapts external BLAS providers to the module's kernel
// signatures.
//
// A provider is compiled in or not by build configuration; nothing is probed
// at run time:
//
//   - accelerate: Apple Accelerate, darwin/arm64 with cgo (disable with the
//     noaccelerate tag; the accelerate tag on any other target fails to build)
//   - openblas: OpenBLAS via cgo, opt in with the openblas tag
//   - ziutek: github.com/ziutek/blas level-1 assembly, amd64
//   - gonum: gonum.org/v1/gonum/blas/gonum, always present
//
// Providers reports the compiled-in set in preference order. Each Adapter
// turns (row-major A, B, C, m, n, k) into the positional (order, lda, ldb,
// ldc, alpha, beta, inc) arguments BLAS expects, with alpha = 1 and beta = 0
// for the pure-multiply Gemm and Gemv.
package accel

// Package matvec provides the dense float64 matrix-vector product y = A * x
// for row-major A.
package matvec

import "github.com/ajroetker/hwyblas/hwy/contrib/dot"

// MatVec computes the matrix-vector product: y = A * x
//
// Parameters:
//   - a: matrix in row-major order with shape [m, n]
//   - x: input vector of length n
//   - y: output vector of length m (pre-allocated, overwritten)
//
// Each element y[i] is the dot product of row i with x, computed with
// dot.Dot. Slice lengths are not checked.
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	a := []float64{1, 2, 3, 4, 5, 6}
//	x := []float64{1, 0, 1}
//	y := make([]float64, 2)
//	MatVec(a, x, y, 2, 3)  // y = [4, 10]
func MatVec(a, x, y []float64, m, n int) {
	x = x[:n]
	for i := range m {
		rowStart := i * n
		y[i] = dot.Dot(a[rowStart:rowStart+n], x)
	}
}

//go:build !amd64 || !goexperiment.simd

package matmul

func matmulImpl(a, b, c []float64, m, n, k int) {
	MatMulVec(a, b, c, m, n, k)
}

func target() string {
	return "go"
}

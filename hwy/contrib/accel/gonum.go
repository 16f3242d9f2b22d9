package accel

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

func init() {
	register(gonumProvider{}, priorityGonum)
}

// gonumProvider forwards to gonum's pure Go BLAS (with its amd64/arm64
// assembly level-1 kernels). It is always linkable.
type gonumProvider struct {
	impl gonum.Implementation
}

func (gonumProvider) Name() string { return "gonum" }
func (gonumProvider) Kind() Kind   { return Library }

func (g gonumProvider) Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return g.impl.Ddot(n, x, incX, y, incY)
}

func (g gonumProvider) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	g.impl.Daxpy(n, alpha, x, incX, y, incY)
}

func (g gonumProvider) Dgemv(m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	g.impl.Dgemv(blas.NoTrans, m, n, alpha, a, lda, x, incX, beta, y, incY)
}

func (g gonumProvider) Dgemm(m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	g.impl.Dgemm(blas.NoTrans, blas.NoTrans, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

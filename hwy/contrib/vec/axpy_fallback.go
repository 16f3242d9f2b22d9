//go:build !amd64 || !goexperiment.simd

package vec

func axpyImpl(x, y []float64, alpha float64) {
	AxpyVec(x, y, alpha)
}

func target() string {
	return "go"
}

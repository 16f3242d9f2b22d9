//go:build !amd64 || !goexperiment.simd

package dot

// dotImpl is the portable implementation used when no native kernel is
// compiled in.
func dotImpl(x, y []float64) float64 {
	return DotVec(x, y)
}

func target() string {
	return "go"
}

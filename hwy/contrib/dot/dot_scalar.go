package dot

// DotScalar is the reference dot product: sum += x[i]*y[i] for i in
// [0, len(x)), in input order. Its rounding defines the oracle that the
// vectorized and accelerated kernels are compared against.
func DotScalar(x, y []float64) float64 {
	y = y[:len(x)]
	var sum float64
	for i := range x {
		// float64() keeps the compiler from fusing the multiply into the add.
		sum += float64(x[i] * y[i])
	}
	return sum
}

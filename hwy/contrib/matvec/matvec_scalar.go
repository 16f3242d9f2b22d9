package matvec

// MatVecScalar is the reference matrix-vector product, each row summed left
// to right.
func MatVecScalar(a, x, y []float64, m, n int) {
	for i := range m {
		var sum float64
		rowStart := i * n
		for j := range n {
			sum += float64(a[rowStart+j] * x[j])
		}
		y[i] = sum
	}
}

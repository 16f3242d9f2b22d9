package dot

import (
	"math"

	"github.com/ajroetker/hwyblas/hwy"
)

// Tuning of the portable kernel. Changing them changes only the grouping of
// the sum, never the set of products.
const (
	// Lanes is the number of float64 lanes per register.
	Lanes = 2

	// Accumulators is the number of independent accumulator registers.
	Accumulators = 4

	// BlockSize is the number of elements consumed per main-loop iteration.
	BlockSize = Lanes * Accumulators
)

// Dot computes the dot product of x and y with the fastest vectorized kernel
// compiled into this build.
//
// len(x) must equal len(y). Returns 0 for empty inputs.
//
// Example:
//
//	x := []float64{1, 2, 3}
//	y := []float64{4, 5, 6}
//	result := Dot(x, y)  // 1*4 + 2*5 + 3*6 = 32
func Dot(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return dotImpl(x, y)
}

// Target names the kernel Dot dispatches to: "avx2" or "go".
func Target() string {
	return target()
}

// DotVec is the portable vectorized dot product.
//
// It runs four hwy.Float64x2 accumulators over blocks of eight elements,
// tree-combines them, finishes remaining pairs on the combined register and
// handles a final odd element with scalar code.
func DotVec(x, y []float64) float64 {
	n := len(x)
	y = y[:n]

	var acc0, acc1, acc2, acc3 hwy.Float64x2
	i := 0
	for ; i+BlockSize <= n; i += BlockSize {
		acc0 = hwy.LoadFloat64x2Slice(x[i:]).MulAdd(hwy.LoadFloat64x2Slice(y[i:]), acc0)
		acc1 = hwy.LoadFloat64x2Slice(x[i+2:]).MulAdd(hwy.LoadFloat64x2Slice(y[i+2:]), acc1)
		acc2 = hwy.LoadFloat64x2Slice(x[i+4:]).MulAdd(hwy.LoadFloat64x2Slice(y[i+4:]), acc2)
		acc3 = hwy.LoadFloat64x2Slice(x[i+6:]).MulAdd(hwy.LoadFloat64x2Slice(y[i+6:]), acc3)
	}

	sum := acc0.Add(acc1).Add(acc2.Add(acc3))

	for ; i+Lanes <= n; i += Lanes {
		sum = hwy.LoadFloat64x2Slice(x[i:]).MulAdd(hwy.LoadFloat64x2Slice(y[i:]), sum)
	}

	result := sum.ReduceSum()

	for ; i < n; i++ {
		result = math.FMA(x[i], y[i], result)
	}
	return result
}

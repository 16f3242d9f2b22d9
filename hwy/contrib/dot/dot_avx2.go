//go:build amd64 && goexperiment.simd

package dot

import (
	"math"
	"simd/archsimd"
)

// Dot_AVX2_F64x4 computes the dot product of two float64 vectors using AVX2.
// Four Float64x4 accumulators consume 16 elements per iteration; the same
// tree combine, single-register remainder and scalar tail as DotVec follow.
func Dot_AVX2_F64x4(x, y []float64) float64 {
	n := len(x)
	y = y[:n]

	acc0 := archsimd.BroadcastFloat64x4(0.0)
	acc1 := acc0
	acc2 := acc0
	acc3 := acc0

	i := 0
	for ; i+16 <= n; i += 16 {
		acc0 = archsimd.LoadFloat64x4Slice(x[i:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i:]), acc0)
		acc1 = archsimd.LoadFloat64x4Slice(x[i+4:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i+4:]), acc1)
		acc2 = archsimd.LoadFloat64x4Slice(x[i+8:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i+8:]), acc2)
		acc3 = archsimd.LoadFloat64x4Slice(x[i+12:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i+12:]), acc3)
	}

	sum := acc0.Add(acc1).Add(acc2.Add(acc3))

	for ; i+4 <= n; i += 4 {
		sum = archsimd.LoadFloat64x4Slice(x[i:]).MulAdd(archsimd.LoadFloat64x4Slice(y[i:]), sum)
	}

	// Horizontal reduction: 4 -> 2 -> 1
	sum2 := sum.GetLo().Add(sum.GetHi())
	result := sum2.GetElem(0) + sum2.GetElem(1)

	// Handle tail elements with scalar code
	for ; i < n; i++ {
		result = math.FMA(x[i], y[i], result)
	}
	return result
}

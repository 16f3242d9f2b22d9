//go:build amd64 && goexperiment.simd

package matmul

import (
	"math"
	"simd/archsimd"
)

// MatMul_AVX2_F64x4 is MatMulVec with Float64x4 registers: 16 columns of C
// per register tile, then 4-column strips, then scalar columns.
func MatMul_AVX2_F64x4(a, b, c []float64, m, n, k int) {
	const lanes = 4
	const tileJ = Accumulators * lanes

	for i := range m {
		aRow := a[i*k : i*k+k]
		cRow := c[i*n : (i+1)*n]

		var j int
		for j = 0; j+tileJ <= n; j += tileJ {
			acc0 := archsimd.BroadcastFloat64x4(0.0)
			acc1 := acc0
			acc2 := acc0
			acc3 := acc0
			for p, aip := range aRow {
				vA := archsimd.BroadcastFloat64x4(aip)
				bRow := b[p*n+j : p*n+j+tileJ]
				acc0 = vA.MulAdd(archsimd.LoadFloat64x4Slice(bRow[0:]), acc0)
				acc1 = vA.MulAdd(archsimd.LoadFloat64x4Slice(bRow[4:]), acc1)
				acc2 = vA.MulAdd(archsimd.LoadFloat64x4Slice(bRow[8:]), acc2)
				acc3 = vA.MulAdd(archsimd.LoadFloat64x4Slice(bRow[12:]), acc3)
			}
			acc0.StoreSlice(cRow[j:])
			acc1.StoreSlice(cRow[j+4:])
			acc2.StoreSlice(cRow[j+8:])
			acc3.StoreSlice(cRow[j+12:])
		}

		for ; j+lanes <= n; j += lanes {
			acc := archsimd.BroadcastFloat64x4(0.0)
			for p, aip := range aRow {
				acc = archsimd.BroadcastFloat64x4(aip).MulAdd(archsimd.LoadFloat64x4Slice(b[p*n+j:]), acc)
			}
			acc.StoreSlice(cRow[j:])
		}

		for ; j < n; j++ {
			var sum float64
			for p, aip := range aRow {
				sum = math.FMA(aip, b[p*n+j], sum)
			}
			cRow[j] = sum
		}
	}
}

//go:build amd64 && goexperiment.simd

package vec

import (
	"math"
	"simd/archsimd"

	"github.com/ajroetker/hwyblas/hwy"
)

var useAVX2 = archsimd.X86.AVX2() && !hwy.NoSimdEnv()

func axpyImpl(x, y []float64, alpha float64) {
	if useAVX2 {
		Axpy_AVX2_F64x4(x, y, alpha)
		return
	}
	AxpyVec(x, y, alpha)
}

func target() string {
	if useAVX2 {
		return "avx2"
	}
	return "go"
}

// Axpy_AVX2_F64x4 computes y += alpha*x four lanes at a time.
func Axpy_AVX2_F64x4(x, y []float64, alpha float64) {
	if alpha == 0 {
		return
	}
	n := len(x)
	y = y[:n]
	vAlpha := archsimd.BroadcastFloat64x4(alpha)

	i := 0
	for ; i+8 <= n; i += 8 {
		vAlpha.MulAdd(archsimd.LoadFloat64x4Slice(x[i:]), archsimd.LoadFloat64x4Slice(y[i:])).StoreSlice(y[i:])
		vAlpha.MulAdd(archsimd.LoadFloat64x4Slice(x[i+4:]), archsimd.LoadFloat64x4Slice(y[i+4:])).StoreSlice(y[i+4:])
	}
	for ; i+4 <= n; i += 4 {
		vAlpha.MulAdd(archsimd.LoadFloat64x4Slice(x[i:]), archsimd.LoadFloat64x4Slice(y[i:])).StoreSlice(y[i:])
	}
	for ; i < n; i++ {
		y[i] = math.FMA(alpha, x[i], y[i])
	}
}

//go:build amd64 && goexperiment.simd

package matmul

import (
	"simd/archsimd"

	"github.com/ajroetker/hwyblas/hwy"
)

var useAVX2 = archsimd.X86.AVX2() && !hwy.NoSimdEnv()

func matmulImpl(a, b, c []float64, m, n, k int) {
	if useAVX2 {
		MatMul_AVX2_F64x4(a, b, c, m, n, k)
		return
	}
	MatMulVec(a, b, c, m, n, k)
}

func target() string {
	if useAVX2 {
		return "avx2"
	}
	return "go"
}

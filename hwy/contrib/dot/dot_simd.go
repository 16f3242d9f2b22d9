//go:build amd64 && goexperiment.simd

package dot

import (
	"simd/archsimd"

	"github.com/ajroetker/hwyblas/hwy"
)

var useAVX2 = archsimd.X86.AVX2() && !hwy.NoSimdEnv()

// dotImpl is the SIMD implementation for float64.
// Uses AVX2 with FMA if available, otherwise falls back to the portable kernel.
func dotImpl(x, y []float64) float64 {
	if useAVX2 {
		return Dot_AVX2_F64x4(x, y)
	}
	return DotVec(x, y)
}

func target() string {
	if useAVX2 {
		return "avx2"
	}
	return "go"
}

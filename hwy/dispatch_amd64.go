//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the kernels run their portable lane code, so the
// level only describes the machine. Detection goes through x/sys/cpu because
// archsimd is not importable in this configuration.

func init() {
	hasFMA = cpu.X86.HasFMA

	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL:
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	default:
		// SSE2 is baseline for all amd64 CPUs.
		currentLevel = DispatchSSE2
		currentWidth = 16
	}
}

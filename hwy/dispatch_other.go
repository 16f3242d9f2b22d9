//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures fall back to scalar mode. The portable lane kernels
	// still run; they just gain nothing from a vector unit.
	setScalarMode()
}

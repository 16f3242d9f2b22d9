//go:build openblas && !cgo

package accel

// OpenBLAS is linked through cgo; the openblas tag with CGO_ENABLED=0 is a
// configuration error.
var _ = openblas_requires_cgo

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build openblas && cgo

package accel

/*
#cgo LDFLAGS: -lopenblas -lm
#include <cblas.h>
*/
import "C"
import "unsafe"

func init() {
	register(openblasProvider{}, priorityOpenBLAS)
}

// openblasProvider forwards to OpenBLAS's CBLAS interface. Opt in with the
// openblas build tag (install libopenblas-dev or brew openblas first).
type openblasProvider struct{}

func (openblasProvider) Name() string { return "openblas" }
func (openblasProvider) Kind() Kind   { return Library }

func dptr(s []float64) *C.double {
	return (*C.double)(unsafe.Pointer(unsafe.SliceData(s)))
}

func (openblasProvider) Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return float64(C.cblas_ddot(C.blasint(n), dptr(x), C.blasint(incX), dptr(y), C.blasint(incY)))
}

func (openblasProvider) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	C.cblas_daxpy(C.blasint(n), C.double(alpha), dptr(x), C.blasint(incX), dptr(y), C.blasint(incY))
}

func (openblasProvider) Dgemv(m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	C.cblas_dgemv(C.CblasRowMajor, C.CblasNoTrans,
		C.blasint(m), C.blasint(n),
		C.double(alpha), dptr(a), C.blasint(lda),
		dptr(x), C.blasint(incX),
		C.double(beta), dptr(y), C.blasint(incY))
}

func (openblasProvider) Dgemm(m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	C.cblas_dgemm(C.CblasRowMajor, C.CblasNoTrans, C.CblasNoTrans,
		C.blasint(m), C.blasint(n), C.blasint(k),
		C.double(alpha), dptr(a), C.blasint(lda),
		dptr(b), C.blasint(ldb),
		C.double(beta), dptr(c), C.blasint(ldc))
}

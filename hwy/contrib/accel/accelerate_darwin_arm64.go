// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin && arm64 && !noaccelerate

package accel

/*
#cgo LDFLAGS: -framework Accelerate
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#include <Accelerate/Accelerate.h>
*/
import "C"
import "unsafe"

func init() {
	register(accelerateProvider{}, priorityAccelerate)
}

// accelerateProvider forwards to Apple Accelerate's CBLAS, which runs on the
// AMX matrix coprocessor on Apple Silicon.
type accelerateProvider struct{}

func (accelerateProvider) Name() string { return "accelerate" }
func (accelerateProvider) Kind() Kind   { return Vendor }

// ptr returns the address of s[0], or nil for an empty slice.
func ptr(s []float64) *C.double {
	return (*C.double)(unsafe.Pointer(unsafe.SliceData(s)))
}

func (accelerateProvider) Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return float64(C.cblas_ddot(C.int(n), ptr(x), C.int(incX), ptr(y), C.int(incY)))
}

func (accelerateProvider) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	C.cblas_daxpy(C.int(n), C.double(alpha), ptr(x), C.int(incX), ptr(y), C.int(incY))
}

func (accelerateProvider) Dgemv(m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	C.cblas_dgemv(C.CblasRowMajor, C.CblasNoTrans,
		C.int(m), C.int(n),
		C.double(alpha), ptr(a), C.int(lda),
		ptr(x), C.int(incX),
		C.double(beta), ptr(y), C.int(incY))
}

func (accelerateProvider) Dgemm(m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	C.cblas_dgemm(C.CblasRowMajor, C.CblasNoTrans, C.CblasNoTrans,
		C.int(m), C.int(n), C.int(k),
		C.double(alpha), ptr(a), C.int(lda),
		ptr(b), C.int(ldb),
		C.double(beta), ptr(c), C.int(ldc))
}

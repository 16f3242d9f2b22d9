// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vec provides element-wise float64 vector kernels.
package vec

import (
	"math"

	"github.com/ajroetker/hwyblas/hwy"
)

// AxpyScalar computes y[i] += alpha*x[i] for i in [0, len(x)).
// With alpha == 0, y is not touched.
func AxpyScalar(x, y []float64, alpha float64) {
	if alpha == 0 {
		return
	}
	y = y[:len(x)]
	for i, v := range x {
		y[i] += float64(alpha * v)
	}
}

// Axpy computes y[i] += alpha*x[i] with the fastest vectorized kernel
// compiled into this build. len(y) must be at least len(x).
//
// With alpha == 0, y is not touched, even where x holds Inf or NaN.
func Axpy(x, y []float64, alpha float64) {
	if len(x) == 0 || alpha == 0 {
		return
	}
	axpyImpl(x, y, alpha)
}

// AxpyVec is the portable vectorized axpy: four hwy.Float64x2 fused
// multiply-adds per iteration, then single registers, then a scalar tail.
func AxpyVec(x, y []float64, alpha float64) {
	if alpha == 0 {
		return
	}
	n := len(x)
	y = y[:n]
	vAlpha := hwy.BroadcastFloat64x2(alpha)

	i := 0
	for ; i+8 <= n; i += 8 {
		vAlpha.MulAdd(hwy.LoadFloat64x2Slice(x[i:]), hwy.LoadFloat64x2Slice(y[i:])).StoreSlice(y[i:])
		vAlpha.MulAdd(hwy.LoadFloat64x2Slice(x[i+2:]), hwy.LoadFloat64x2Slice(y[i+2:])).StoreSlice(y[i+2:])
		vAlpha.MulAdd(hwy.LoadFloat64x2Slice(x[i+4:]), hwy.LoadFloat64x2Slice(y[i+4:])).StoreSlice(y[i+4:])
		vAlpha.MulAdd(hwy.LoadFloat64x2Slice(x[i+6:]), hwy.LoadFloat64x2Slice(y[i+6:])).StoreSlice(y[i+6:])
	}
	for ; i+2 <= n; i += 2 {
		vAlpha.MulAdd(hwy.LoadFloat64x2Slice(x[i:]), hwy.LoadFloat64x2Slice(y[i:])).StoreSlice(y[i:])
	}
	for ; i < n; i++ {
		y[i] = math.FMA(alpha, x[i], y[i])
	}
}

// Target names the kernel Axpy dispatches to: "avx2" or "go".
func Target() string {
	return target()
}

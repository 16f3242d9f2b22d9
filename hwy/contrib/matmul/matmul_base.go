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

package matmul

import (
	"math"

	"github.com/ajroetker/hwyblas/hwy"
)

// Accumulators is the number of register strips held across the K loop.
const Accumulators = 4

// MatMulScalar is the reference implementation.
// C[i,j] = sum(A[i,p] * B[p,j]) for p in 0..K-1, accumulated in p order.
//
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major), fully overwritten
func MatMulScalar(a, b, c []float64, m, n, k int) {
	for i := range m {
		aRow := a[i*k : i*k+k]
		for j := range n {
			var sum float64
			for p, aip := range aRow {
				sum += float64(aip * b[p*n+j])
			}
			c[i*n+j] = sum
		}
	}
}

// MatMul computes C = A * B with the fastest vectorized kernel compiled into
// this build. C is overwritten, never accumulated into.
//
// Dimensions are not checked: len(a) >= m*k, len(b) >= k*n and
// len(c) >= m*n are the caller's responsibility.
func MatMul(a, b, c []float64, m, n, k int) {
	if m == 0 || n == 0 {
		return
	}
	matmulImpl(a, b, c, m, n, k)
}

// Target names the kernel MatMul dispatches to: "avx2" or "go".
func Target() string {
	return target()
}

// MatMulVec is the portable vectorized matmul.
//
// Uses register-blocked accumulators: the J dimension is tiled into groups
// of Accumulators hwy.Float64x2 registers, held across the full K loop, so
// each element of C is written once. Every C[i,j] is still a p-ordered sum,
// only with fused multiply-adds.
func MatMulVec(a, b, c []float64, m, n, k int) {
	const lanes = 2
	const tileJ = Accumulators * lanes

	for i := range m {
		aRow := a[i*k : i*k+k]
		cRow := c[i*n : (i+1)*n]

		// Tiled J loop: 4 accumulators held in registers across full K loop
		var j int
		for j = 0; j+tileJ <= n; j += tileJ {
			var acc0, acc1, acc2, acc3 hwy.Float64x2
			for p, aip := range aRow {
				vA := hwy.BroadcastFloat64x2(aip)
				bRow := b[p*n+j : p*n+j+tileJ]
				acc0 = vA.MulAdd(hwy.LoadFloat64x2Slice(bRow[0:]), acc0)
				acc1 = vA.MulAdd(hwy.LoadFloat64x2Slice(bRow[2:]), acc1)
				acc2 = vA.MulAdd(hwy.LoadFloat64x2Slice(bRow[4:]), acc2)
				acc3 = vA.MulAdd(hwy.LoadFloat64x2Slice(bRow[6:]), acc3)
			}
			acc0.StoreSlice(cRow[j:])
			acc1.StoreSlice(cRow[j+2:])
			acc2.StoreSlice(cRow[j+4:])
			acc3.StoreSlice(cRow[j+6:])
		}

		// Remainder: single accumulator per remaining vector strip
		for ; j+lanes <= n; j += lanes {
			var acc hwy.Float64x2
			for p, aip := range aRow {
				acc = hwy.BroadcastFloat64x2(aip).MulAdd(hwy.LoadFloat64x2Slice(b[p*n+j:]), acc)
			}
			acc.StoreSlice(cRow[j:])
		}

		// Scalar tail
		for ; j < n; j++ {
			var sum float64
			for p, aip := range aRow {
				sum = math.FMA(aip, b[p*n+j], sum)
			}
			cRow[j] = sum
		}
	}
}

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
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var kernels = []struct {
	name string
	fn   func(a, b, c []float64, m, n, k int)
}{
	{"scalar", MatMulScalar},
	{"vec", MatMulVec},
	{"dispatch", MatMul},
}

var sizes = []struct {
	m, n, k int
}{
	{1, 1, 1},
	{2, 2, 3},
	{4, 4, 4},
	{7, 13, 5}, // non-aligned
	{3, 9, 1},
	{1, 17, 33},
	{16, 16, 16},
	{33, 31, 29},
	{64, 64, 64},
}

func randMat(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}

func TestMatMulSmall(t *testing.T) {
	// [1 2 3]   [ 7  8]   [ 58  64]
	// [4 5 6] * [ 9 10] = [139 154]
	//           [11 12]
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{7, 8, 9, 10, 11, 12}
	want := []float64{58, 64, 139, 154}

	for _, kern := range kernels {
		c := make([]float64, 4)
		kern.fn(a, b, c, 2, 2, 3)
		if diff := cmp.Diff(want, c); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", kern.name, diff)
		}
	}
}

func TestMatMulAgreesWithScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, sz := range sizes {
		m, n, k := sz.m, sz.n, sz.k
		a := randMat(rng, m*k)
		b := randMat(rng, k*n)
		ref := make([]float64, m*n)
		MatMulScalar(a, b, ref, m, n, k)

		for _, kern := range kernels[1:] {
			t.Run(fmt.Sprintf("%s/%dx%dx%d", kern.name, m, n, k), func(t *testing.T) {
				c := make([]float64, m*n)
				kern.fn(a, b, c, m, n, k)
				// Each |A[i,p]*B[p,j]| <= 1, so k bounds the per-element sum.
				tol := 1e-12 * float64(k)
				for i := range ref {
					if diff := math.Abs(c[i] - ref[i]); diff > tol {
						t.Fatalf("index %d: got %v, want %v (diff %e)", i, c[i], ref[i], diff)
					}
				}
			})
		}
	}
}

func TestMatMulDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m, n, k := 19, 23, 17
	a := randMat(rng, m*k)
	b := randMat(rng, k*n)

	for _, kern := range kernels {
		c1 := make([]float64, m*n)
		c2 := make([]float64, m*n)
		for i := range c2 {
			c2[i] = 1e9 // stale contents must be overwritten, not accumulated
		}
		kern.fn(a, b, c1, m, n, k)
		kern.fn(a, b, c2, m, n, k)
		if diff := cmp.Diff(c1, c2); diff != "" {
			t.Errorf("%s: second run differs (-first +second):\n%s", kern.name, diff)
		}
	}
}

func TestMatMulIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for _, dims := range [][2]int{{1, 1}, {3, 5}, {8, 8}, {9, 20}} {
		m, n := dims[0], dims[1]
		eye := make([]float64, m*m)
		for i := range m {
			eye[i*m+i] = 1
		}
		b := randMat(rng, m*n)

		for _, kern := range kernels {
			c := make([]float64, m*n)
			kern.fn(eye, b, c, m, n, m)
			if diff := cmp.Diff(b, c); diff != "" {
				t.Errorf("%s %dx%d: I*B != B (-want +got):\n%s", kern.name, m, n, diff)
			}
		}
	}
}

func TestMatMulZeroK(t *testing.T) {
	for _, kern := range kernels {
		c := []float64{1, 2, 3, 4, 5, 6}
		kern.fn(nil, nil, c, 2, 3, 0)
		if diff := cmp.Diff(make([]float64, 6), c); diff != "" {
			t.Errorf("%s: k=0 should zero C (-want +got):\n%s", kern.name, diff)
		}
	}
}

func TestMatMulEmpty(t *testing.T) {
	for _, kern := range kernels {
		kern.fn(nil, nil, nil, 0, 0, 0)
		kern.fn(nil, []float64{1, 2}, nil, 0, 2, 1)
	}
}

func BenchmarkMatMul(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{16, 64, 128, 256} {
		m, n, k := size, size, size
		a := randMat(rng, m*k)
		bMat := randMat(rng, k*n)
		c := make([]float64, m*n)
		flops := float64(2*m*n*k) / 1e9

		for _, kern := range kernels {
			b.Run(fmt.Sprintf("%s/%d", kern.name, size), func(b *testing.B) {
				b.SetBytes(int64((m*k + k*n + m*n) * 8))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					kern.fn(a, bMat, c, m, n, k)
				}
				b.StopTimer()
				b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds(), "GFLOPS")
			})
		}
	}
}

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

package accel

// Adapter presents a Provider through the logical kernel signatures used by
// the rest of the module: dense row-major matrices whose leading dimension is
// the row length, unit-stride vectors.
//
// The adapter does no arithmetic of its own beyond the degenerate-shape
// cases BLAS leaves undefined or skips.
type Adapter struct {
	p  Provider
	l2 Level2
	l3 Level3
}

// New wraps p.
func New(p Provider) *Adapter {
	a := &Adapter{p: p}
	a.l2, _ = p.(Level2)
	a.l3, _ = p.(Level3)
	return a
}

// Name returns the provider name.
func (a *Adapter) Name() string { return a.p.Name() }

// Kind returns the provider kind.
func (a *Adapter) Kind() Kind { return a.p.Kind() }

// Provider returns the wrapped provider.
func (a *Adapter) Provider() Provider { return a.p }

// CanGemv reports whether the provider implements Level2.
func (a *Adapter) CanGemv() bool { return a.l2 != nil }

// CanGemm reports whether the provider implements Level3.
func (a *Adapter) CanGemm() bool { return a.l3 != nil }

// Dot returns x·y. len(y) must be at least len(x).
func (a *Adapter) Dot(x, y []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return a.p.Ddot(len(x), x, 1, y, 1)
}

// Axpy computes y[i] += alpha*x[i] for i in [0, len(x)). alpha == 0 leaves
// y untouched, as reference BLAS does.
func (a *Adapter) Axpy(x, y []float64, alpha float64) {
	if len(x) == 0 || alpha == 0 {
		return
	}
	a.p.Daxpy(len(x), alpha, x, 1, y, 1)
}

// Gemv computes y = A*x for an m x n row-major A. y is overwritten.
// Panics if the provider has no Level2 support.
func (a *Adapter) Gemv(mat, x, y []float64, m, n int) {
	a.GemvAdd(1, mat, x, 0, y, m, n)
}

// GemvAdd computes y = alpha*A*x + beta*y.
func (a *Adapter) GemvAdd(alpha float64, mat, x []float64, beta float64, y []float64, m, n int) {
	if m == 0 {
		return
	}
	if n == 0 {
		// BLAS returns early here without applying beta.
		scale(beta, y[:m])
		return
	}
	a.level2().Dgemv(m, n, alpha, mat, n, x, 1, beta, y, 1)
}

// Gemm computes C = A*B, A m x k, B k x n, C m x n, all row-major.
// C is overwritten. Panics if the provider has no Level3 support.
func (a *Adapter) Gemm(ma, mb, mc []float64, m, n, k int) {
	a.GemmAdd(1, ma, mb, 0, mc, m, n, k)
}

// GemmAdd computes C = alpha*A*B + beta*C.
func (a *Adapter) GemmAdd(alpha float64, ma, mb []float64, beta float64, mc []float64, m, n, k int) {
	if m == 0 || n == 0 {
		return
	}
	if k == 0 {
		// No leading dimension of A is valid for k == 0; the product is empty.
		scale(beta, mc[:m*n])
		return
	}
	a.level3().Dgemm(m, n, k, alpha, ma, k, mb, n, beta, mc, n)
}

func (a *Adapter) level2() Level2 {
	if a.l2 == nil {
		panic("accel: " + a.p.Name() + " does not provide dgemv")
	}
	return a.l2
}

func (a *Adapter) level3() Level3 {
	if a.l3 == nil {
		panic("accel: " + a.p.Name() + " does not provide dgemm")
	}
	return a.l3
}

// scale sets v = beta*v, treating beta == 0 as an overwrite so stale NaNs in
// v do not survive.
func scale(beta float64, v []float64) {
	switch beta {
	case 0:
		clear(v)
	case 1:
	default:
		for i := range v {
			v[i] *= beta
		}
	}
}

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

package blas

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNoImplementation is returned by Use when a strategy leaves an
// operation without a candidate.
var ErrNoImplementation = errors.New("blas: no implementation")

type selection struct {
	dot  Impl[DotFunc]
	gemm Impl[GemmFunc]
	gemv Impl[GemvFunc]
	axpy Impl[AxpyFunc]
}

var current atomic.Pointer[selection]

// Dot returns x·y using the selected implementation. len(x) must equal
// len(y); Dot returns 0 for empty vectors.
func Dot(x, y []float64) float64 {
	return current.Load().dot.Fn(x, y)
}

// Gemm computes C = A*B, A m x k, B k x n, C m x n, all row-major. C is
// overwritten.
func Gemm(a, b, c []float64, m, n, k int) {
	current.Load().gemm.Fn(a, b, c, m, n, k)
}

// Gemv computes y = A*x for an m x n row-major A. y is overwritten.
func Gemv(a, x, y []float64, m, n int) {
	current.Load().gemv.Fn(a, x, y, m, n)
}

// Axpy computes y[i] += alpha*x[i] for i in [0, len(x)).
func Axpy(x, y []float64, alpha float64) {
	current.Load().axpy.Fn(x, y, alpha)
}

// Use resolves one implementation per operation with s and makes it the
// selection for subsequent calls. If any operation is left without a
// candidate, Use returns an error wrapping ErrNoImplementation and the
// previous selection stays in place.
func Use(s Strategy) error {
	var (
		sel  selection
		errs [4]error
	)
	sel.dot, errs[0] = choose(Dots, s)
	sel.gemm, errs[1] = choose(Gemms, s)
	sel.gemv, errs[2] = choose(Gemvs, s)
	sel.axpy, errs[3] = choose(Axpys, s)
	if err := errors.Join(errs[:]...); err != nil {
		return err
	}
	current.Store(&sel)
	return nil
}

func choose[F Kernel](r *Registry[F], s Strategy) (Impl[F], error) {
	d, ok := s.Choose(r.Descriptors())
	if !ok {
		return Impl[F]{}, fmt.Errorf("%w for %v", ErrNoImplementation, r.op)
	}
	impl, ok := r.Lookup(d)
	if !ok {
		return Impl[F]{}, fmt.Errorf("%w: %v is not registered", ErrNoImplementation, d)
	}
	return impl, nil
}

// Selected returns the descriptor of the implementation op currently runs.
func Selected(op Op) Descriptor {
	sel := current.Load()
	switch op {
	case OpDot:
		return sel.dot.Descriptor
	case OpGemm:
		return sel.gemm.Descriptor
	case OpGemv:
		return sel.gemv.Descriptor
	case OpAxpy:
		return sel.axpy.Descriptor
	default:
		panic(fmt.Sprintf("blas: unknown operation %v", op))
	}
}

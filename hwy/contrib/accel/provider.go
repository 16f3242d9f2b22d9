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

import (
	"cmp"
	"slices"
)

// Kind classifies where a provider's routines come from.
type Kind int

const (
	// Vendor is a hardware vendor's math library (e.g. Apple Accelerate).
	Vendor Kind = iota

	// Library is a general-purpose optimized BLAS (OpenBLAS, gonum, ...).
	Library
)

func (k Kind) String() string {
	switch k {
	case Vendor:
		return "vendor"
	case Library:
		return "library"
	default:
		return "unknown"
	}
}

// Level1 is the vector-vector subset of a BLAS, in positional form.
type Level1 interface {
	// Ddot returns sum(x[i*incX] * y[i*incY]) for i in [0, n).
	Ddot(n int, x []float64, incX int, y []float64, incY int) float64

	// Daxpy computes y[i*incY] += alpha * x[i*incX] for i in [0, n).
	Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int)
}

// Level2 is the matrix-vector subset. a is row-major with leading
// dimension lda.
type Level2 interface {
	// Dgemv computes y = alpha * A * x + beta * y for an m x n matrix A.
	Dgemv(m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int)
}

// Level3 is the matrix-matrix subset. All matrices are row-major.
type Level3 interface {
	// Dgemm computes C = alpha * A * B + beta * C, A m x k, B k x n, C m x n.
	Dgemm(m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int)
}

// Provider is an external math library reachable from this build. Every
// provider implements Level1; Level2 and Level3 are optional.
type Provider interface {
	Level1
	Name() string
	Kind() Kind
}

type entry struct {
	adapter  *Adapter
	priority int
}

// Priorities used by the providers compiled into this package. Lower runs
// first.
const (
	priorityAccelerate = 0
	priorityOpenBLAS   = 10
	priorityZiutek     = 20
	priorityGonum      = 30
)

// providers is written only from init functions.
var providers []entry

func register(p Provider, priority int) {
	providers = append(providers, entry{adapter: New(p), priority: priority})
	slices.SortStableFunc(providers, func(a, b entry) int {
		return cmp.Compare(a.priority, b.priority)
	})
}

// Providers returns an adapter for every provider compiled into this build,
// in preference order (vendor libraries first).
func Providers() []*Adapter {
	out := make([]*Adapter, len(providers))
	for i, e := range providers {
		out[i] = e.adapter
	}
	return out
}

// Lookup returns the adapter for the named provider.
func Lookup(name string) (*Adapter, bool) {
	for _, e := range providers {
		if e.adapter.Name() == name {
			return e.adapter, true
		}
	}
	return nil, false
}

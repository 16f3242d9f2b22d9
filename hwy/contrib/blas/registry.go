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

import "github.com/samber/lo"

// Kernel signatures. All matrices are dense row-major with leading dimension
// equal to the row length.
type (
	// DotFunc returns x·y. len(x) == len(y).
	DotFunc func(x, y []float64) float64

	// GemmFunc computes C = A*B with A m x k, B k x n, C m x n. C is
	// overwritten.
	GemmFunc func(a, b, c []float64, m, n, k int)

	// GemvFunc computes y = A*x with A m x n. y is overwritten.
	GemvFunc func(a, x, y []float64, m, n int)

	// AxpyFunc computes y[i] += alpha*x[i].
	AxpyFunc func(x, y []float64, alpha float64)
)

// Kernel is the set of kernel signatures a Registry can hold.
type Kernel interface {
	DotFunc | GemmFunc | GemvFunc | AxpyFunc
}

// Impl pairs a kernel with its descriptor.
type Impl[F Kernel] struct {
	Descriptor
	Fn F
}

// Registry holds every implementation of one operation in registration
// order. Registries are only written while the package initializes.
type Registry[F Kernel] struct {
	op    Op
	impls []Impl[F]
}

// The registries, one per operation.
var (
	Dots  = &Registry[DotFunc]{op: OpDot}
	Gemms = &Registry[GemmFunc]{op: OpGemm}
	Gemvs = &Registry[GemvFunc]{op: OpGemv}
	Axpys = &Registry[AxpyFunc]{op: OpAxpy}
)

// Op returns the operation r holds implementations of.
func (r *Registry[F]) Op() Op { return r.op }

func (r *Registry[F]) register(v Variant, provider string, fn F) {
	d := Descriptor{Op: r.op, Variant: v, Provider: provider}
	if _, dup := r.Lookup(d); dup {
		panic("blas: duplicate registration of " + d.String())
	}
	r.impls = append(r.impls, Impl[F]{Descriptor: d, Fn: fn})
}

// Impls returns a copy of the registered implementations.
func (r *Registry[F]) Impls() []Impl[F] {
	return append([]Impl[F](nil), r.impls...)
}

// Descriptors returns the descriptors of the registered implementations.
func (r *Registry[F]) Descriptors() []Descriptor {
	return lo.Map(r.impls, func(impl Impl[F], _ int) Descriptor {
		return impl.Descriptor
	})
}

// Lookup returns the implementation matching d exactly.
func (r *Registry[F]) Lookup(d Descriptor) (Impl[F], bool) {
	return lo.Find(r.impls, func(impl Impl[F]) bool {
		return impl.Descriptor == d
	})
}

// Find returns the first registered implementation of variant v.
func (r *Registry[F]) Find(v Variant) (Impl[F], bool) {
	return lo.Find(r.impls, func(impl Impl[F]) bool {
		return impl.Variant == v
	})
}

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
	"github.com/ajroetker/hwyblas/hwy/contrib/accel"
	"github.com/ajroetker/hwyblas/hwy/contrib/dot"
	"github.com/ajroetker/hwyblas/hwy/contrib/matmul"
	"github.com/ajroetker/hwyblas/hwy/contrib/matvec"
	"github.com/ajroetker/hwyblas/hwy/contrib/vec"
)

// portable is the provider name of the pure Go kernels.
const portable = "go"

func init() {
	Dots.register(Scalar, portable, dot.DotScalar)
	Dots.register(SIMD, dot.Target(), dot.Dot)

	Gemms.register(Scalar, portable, matmul.MatMulScalar)
	Gemms.register(SIMD, matmul.Target(), matmul.MatMul)

	// matvec is row-wise dot.Dot, so it runs on the dot kernel's target.
	Gemvs.register(Scalar, portable, matvec.MatVecScalar)
	Gemvs.register(SIMD, dot.Target(), matvec.MatVec)

	Axpys.register(Scalar, portable, vec.AxpyScalar)
	Axpys.register(SIMD, vec.Target(), vec.Axpy)

	for _, p := range accel.Providers() {
		Dots.register(Accelerated, p.Name(), p.Dot)
		Axpys.register(Accelerated, p.Name(), p.Axpy)
		if p.CanGemv() {
			Gemvs.register(Accelerated, p.Name(), p.Gemv)
		}
		if p.CanGemm() {
			Gemms.register(Accelerated, p.Name(), p.Gemm)
		}
	}

	if err := Use(StrategyFromEnv()); err != nil {
		// Scalar is always registered, so the default order cannot fail.
		if err := Use(Preference{}); err != nil {
			panic(err)
		}
	}
}

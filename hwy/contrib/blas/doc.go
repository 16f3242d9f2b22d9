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

// Package blas exposes one entry point per dense float64 primitive (Dot,
// Gemm, Gemv, Axpy) and routes each call to one of the implementations
// compiled into this build.
//
// Every primitive has up to three kinds of implementation:
//
//   - [Scalar]: the reference loops in hwy/contrib/dot, matmul, matvec and vec.
//   - [SIMD]: the vectorized kernels from the same packages.
//   - [Accelerated]: one entry per provider in hwy/contrib/accel that supports
//     the operation (Accelerate, OpenBLAS, ziutek, gonum).
//
// The set of implementations is fixed when the package initializes. Which
// providers exist is decided by build tags, so a backend that cannot run on
// the target is never registered rather than failing at call time.
//
// At init the package resolves one implementation per operation from the
// environment (see [StrategyFromEnv]). Call sites use the package functions
// and never name a backend:
//
//	y := make([]float64, m)
//	blas.Gemv(a, x, y, m, n)
//
// [Use] re-resolves the selection with any [Strategy], including
// runtime-probing ones, without touching call sites.
//
// The kernels do not validate their arguments. Callers that cannot vouch for
// their slice lengths use [CheckDot], [CheckGemm], [CheckGemv] and
// [CheckAxpy] first.
package blas

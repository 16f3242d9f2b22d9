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

// Package matmul provides dense float64 matrix multiplication C = A * B for
// row-major matrices whose leading dimension equals the row length.
//
// MatMulScalar is the unblocked triple loop used as the reference.
// MatMul dispatches to MatMulVec (portable two-lane registers) or, with
// GOEXPERIMENT=simd on AVX2 hardware, to MatMul_AVX2_F64x4. Both vectorized
// kernels broadcast A[i,p] and fuse it with a register strip of B's row p,
// keeping Accumulators strips of C in registers for the whole K loop.
package matmul

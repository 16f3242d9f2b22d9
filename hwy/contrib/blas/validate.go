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
)

// ErrDimension reports slice lengths that do not match the dimensions of a
// call.
var ErrDimension = errors.New("blas: dimension mismatch")

// CheckDot reports whether x and y are valid arguments to Dot.
func CheckDot(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: dot len(x)=%d, len(y)=%d", ErrDimension, len(x), len(y))
	}
	return nil
}

// CheckAxpy reports whether x and y are valid arguments to Axpy.
func CheckAxpy(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: axpy len(x)=%d, len(y)=%d", ErrDimension, len(x), len(y))
	}
	return nil
}

// CheckGemm reports whether a, b and c hold at least m*k, k*n and m*n
// elements.
func CheckGemm(a, b, c []float64, m, n, k int) error {
	if m < 0 || n < 0 || k < 0 {
		return fmt.Errorf("%w: gemm negative dimension m=%d n=%d k=%d", ErrDimension, m, n, k)
	}
	switch {
	case len(a) < m*k:
		return fmt.Errorf("%w: gemm len(a)=%d < m*k=%d", ErrDimension, len(a), m*k)
	case len(b) < k*n:
		return fmt.Errorf("%w: gemm len(b)=%d < k*n=%d", ErrDimension, len(b), k*n)
	case len(c) < m*n:
		return fmt.Errorf("%w: gemm len(c)=%d < m*n=%d", ErrDimension, len(c), m*n)
	}
	return nil
}

// CheckGemv reports whether a, x and y hold at least m*n, n and m elements.
func CheckGemv(a, x, y []float64, m, n int) error {
	if m < 0 || n < 0 {
		return fmt.Errorf("%w: gemv negative dimension m=%d n=%d", ErrDimension, m, n)
	}
	switch {
	case len(a) < m*n:
		return fmt.Errorf("%w: gemv len(a)=%d < m*n=%d", ErrDimension, len(a), m*n)
	case len(x) < n:
		return fmt.Errorf("%w: gemv len(x)=%d < n=%d", ErrDimension, len(x), n)
	case len(y) < m:
		return fmt.Errorf("%w: gemv len(y)=%d < m=%d", ErrDimension, len(y), m)
	}
	return nil
}

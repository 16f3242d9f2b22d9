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

package hwy

import "math"

// Float64x2 is a portable 128-bit register holding two float64 lanes.
//
// It mirrors the method set of archsimd.Float64x2 (and NEON float64x2_t) so
// kernels written against it read the same as the native variants. It is a
// value type: loads, stores and arithmetic never allocate, which keeps the
// accumulators of a kernel in registers.
type Float64x2 [2]float64

// LoadFloat64x2Slice loads the first two elements of s.
// s must have at least two elements.
func LoadFloat64x2Slice(s []float64) Float64x2 {
	_ = s[1] // bounds check hint
	return Float64x2{s[0], s[1]}
}

// BroadcastFloat64x2 returns a register with both lanes set to v.
func BroadcastFloat64x2(v float64) Float64x2 {
	return Float64x2{v, v}
}

// StoreSlice writes both lanes to the first two elements of s.
func (x Float64x2) StoreSlice(s []float64) {
	_ = s[1]
	s[0] = x[0]
	s[1] = x[1]
}

// Add performs lane-wise addition.
func (x Float64x2) Add(y Float64x2) Float64x2 {
	return Float64x2{x[0] + y[0], x[1] + y[1]}
}

// MulAdd computes x*y + z per lane with a single rounding.
func (x Float64x2) MulAdd(y, z Float64x2) Float64x2 {
	return Float64x2{math.FMA(x[0], y[0], z[0]), math.FMA(x[1], y[1], z[1])}
}

// GetElem returns lane i.
func (x Float64x2) GetElem(i uint8) float64 {
	return x[i&1]
}

// ReduceSum returns the horizontal sum of both lanes.
func (x Float64x2) ReduceSum() float64 {
	return x[0] + x[1]
}

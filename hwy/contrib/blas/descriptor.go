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
	"fmt"
	"strings"
)

// Op identifies a primitive.
type Op int

const (
	OpDot Op = iota
	OpGemm
	OpGemv
	OpAxpy
)

// Ops lists every primitive in declaration order.
var Ops = []Op{OpDot, OpGemm, OpGemv, OpAxpy}

func (o Op) String() string {
	switch o {
	case OpDot:
		return "dot"
	case OpGemm:
		return "gemm"
	case OpGemv:
		return "gemv"
	case OpAxpy:
		return "axpy"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// ParseOp is the inverse of Op.String. Case is ignored.
func ParseOp(s string) (Op, error) {
	for _, o := range Ops {
		if strings.EqualFold(s, o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("blas: unknown operation %q", s)
}

// Variant identifies the implementation strategy of a kernel.
type Variant int

const (
	// Scalar is the straightforward reference loop.
	Scalar Variant = iota

	// SIMD is a hand-vectorized kernel.
	SIMD

	// Accelerated forwards to an external math library.
	Accelerated
)

// Variants lists every variant in declaration order.
var Variants = []Variant{Scalar, SIMD, Accelerated}

func (v Variant) String() string {
	switch v {
	case Scalar:
		return "scalar"
	case SIMD:
		return "simd"
	case Accelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant is the inverse of Variant.String. Case is ignored, and
// "vectorized" is accepted for SIMD.
func ParseVariant(s string) (Variant, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "vectorized") {
		return SIMD, nil
	}
	for _, v := range Variants {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("blas: unknown variant %q", s)
}

// Descriptor names one implementation of one operation. It carries no
// runtime state.
type Descriptor struct {
	Op      Op
	Variant Variant

	// Provider is the concrete backend: "go" for the portable kernels, the
	// SIMD target ("avx2") for native kernels, or the accel provider name.
	Provider string
}

// String returns "op/variant/provider".
func (d Descriptor) String() string {
	return d.Op.String() + "/" + d.Variant.String() + "/" + d.Provider
}

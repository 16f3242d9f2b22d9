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

import (
	"math"
	"runtime"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD set but level is %s", CurrentLevel())
	}
	if !NoSimdEnv() && runtime.GOARCH == "arm64" && CurrentLevel() != DispatchNEON {
		t.Errorf("arm64 level = %s, want neon", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestFloat64x2(t *testing.T) {
	src := []float64{1.5, -2, 99}
	x := LoadFloat64x2Slice(src)
	if x.GetElem(0) != 1.5 || x.GetElem(1) != -2 {
		t.Fatalf("LoadFloat64x2Slice = %v", x)
	}

	y := BroadcastFloat64x2(4)
	if got := x.Add(y); got != (Float64x2{5.5, 2}) {
		t.Errorf("Add = %v, want [5.5 2]", got)
	}
	if got := x.MulAdd(y, BroadcastFloat64x2(1)); got != (Float64x2{7, -7}) {
		t.Errorf("MulAdd = %v, want [7 -7]", got)
	}
	if got := x.ReduceSum(); got != -0.5 {
		t.Errorf("ReduceSum = %v, want -0.5", got)
	}

	dst := make([]float64, 3)
	x.StoreSlice(dst)
	if dst[0] != 1.5 || dst[1] != -2 || dst[2] != 0 {
		t.Errorf("StoreSlice wrote %v", dst)
	}
}

func TestFloat64x2MulAddSingleRounding(t *testing.T) {
	// a*a = 1 + 2^-29 + 2^-60; rounding the product first drops the 2^-60 term.
	a := 1 + math.Ldexp(1, -30)
	x := BroadcastFloat64x2(a)
	got := x.MulAdd(x, BroadcastFloat64x2(-1)).GetElem(0)
	want := math.Ldexp(1, -29) + math.Ldexp(1, -60)
	if got != want {
		t.Errorf("MulAdd = %g, want %g", got, want)
	}
	if rounded := float64(a*a) - 1; rounded == want {
		t.Errorf("separately rounded product unexpectedly exact: %g", rounded)
	}
}

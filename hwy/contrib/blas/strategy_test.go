package blas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/hwyblas/hwy"
)

var candidates = []Descriptor{
	{OpDot, Scalar, "go"},
	{OpDot, SIMD, "avx2"},
	{OpDot, Accelerated, "accelerate"},
	{OpDot, Accelerated, "gonum"},
}

func TestPreferenceChoose(t *testing.T) {
	tests := []struct {
		name string
		pref Preference
		want Descriptor
	}{
		{"default", Preference{}, Descriptor{OpDot, Accelerated, "accelerate"}},
		{"simd first", Preference{Order: []Variant{SIMD, Scalar}}, Descriptor{OpDot, SIMD, "avx2"}},
		{"scalar only", Preference{Order: []Variant{Scalar}}, Descriptor{OpDot, Scalar, "go"}},
		{"pinned", Preference{Provider: "gonum"}, Descriptor{OpDot, Accelerated, "gonum"}},
		{"pinned missing", Preference{Provider: "openblas"}, Descriptor{OpDot, SIMD, "avx2"}},
		{"pin ignores simd", Preference{Order: []Variant{SIMD}, Provider: "gonum"}, Descriptor{OpDot, SIMD, "avx2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.pref.Choose(candidates)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferenceNoCandidate(t *testing.T) {
	_, ok := Preference{Order: []Variant{Accelerated}}.Choose(candidates[:2])
	assert.False(t, ok)

	_, ok = Preference{}.Choose(nil)
	assert.False(t, ok)
}

func TestPreferenceString(t *testing.T) {
	assert.Equal(t, "accelerated>simd>scalar", Preference{}.String())
	assert.Equal(t, "simd>scalar (gonum)", Preference{Order: []Variant{SIMD, Scalar}, Provider: "gonum"}.String())
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		in      string
		want    []Variant
		wantErr bool
	}{
		{in: "simd,scalar", want: []Variant{SIMD, Scalar}},
		{in: " Accelerated , vectorized ", want: []Variant{Accelerated, SIMD}},
		{in: "scalar,", want: []Variant{Scalar}},
		{in: "", wantErr: true},
		{in: ",", wantErr: true},
		{in: "simd,simd", wantErr: true},
		{in: "gpu", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreference(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Order)
			assert.Empty(t, got.Provider)
		})
	}
}

func TestProbeFilters(t *testing.T) {
	var seen []Descriptor
	p := Probe{
		Base: Preference{},
		Available: func(d Descriptor) bool {
			seen = append(seen, d)
			return d.Provider != "accelerate"
		},
	}
	got, ok := p.Choose(candidates)
	require.True(t, ok)
	assert.Equal(t, Descriptor{OpDot, Accelerated, "gonum"}, got)
	assert.Equal(t, candidates, seen, "every candidate is probed once, in order")

	none := Probe{Base: Preference{}, Available: func(Descriptor) bool { return false }}
	_, ok = none.Choose(candidates)
	assert.False(t, ok)
}

func TestHardwareProbe(t *testing.T) {
	got, ok := HardwareProbe(Preference{Order: []Variant{SIMD, Scalar}}).Choose(candidates)
	require.True(t, ok)
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		assert.Equal(t, Scalar, got.Variant)
	} else {
		assert.Equal(t, SIMD, got.Variant)
	}
}

func TestProbeString(t *testing.T) {
	assert.Equal(t, "probe(simd>scalar)", HardwareProbe(Preference{Order: []Variant{SIMD, Scalar}}).String())
}

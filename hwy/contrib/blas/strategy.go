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

	"github.com/samber/lo"

	"github.com/ajroetker/hwyblas/hwy"
)

// Strategy picks one implementation from the candidates registered for an
// operation. Candidates arrive in registration order: scalar, then SIMD,
// then accelerated providers in accel priority order.
type Strategy interface {
	Choose(candidates []Descriptor) (Descriptor, bool)
}

// DefaultOrder is the variant order used by a Preference with no Order.
var DefaultOrder = []Variant{Accelerated, SIMD, Scalar}

// Preference chooses the first candidate whose variant appears earliest in
// Order. It never looks at the hardware, so its choice depends only on what
// was compiled in.
type Preference struct {
	Order []Variant

	// Provider, when set, restricts Accelerated candidates to the named
	// accel provider. Other variants are unaffected.
	Provider string
}

// Choose implements Strategy.
func (p Preference) Choose(candidates []Descriptor) (Descriptor, bool) {
	order := p.Order
	if len(order) == 0 {
		order = DefaultOrder
	}
	for _, v := range order {
		d, ok := lo.Find(candidates, func(d Descriptor) bool {
			if d.Variant != v {
				return false
			}
			return v != Accelerated || p.Provider == "" || d.Provider == p.Provider
		})
		if ok {
			return d, true
		}
	}
	return Descriptor{}, false
}

func (p Preference) String() string {
	order := p.Order
	if len(order) == 0 {
		order = DefaultOrder
	}
	s := strings.Join(lo.Map(order, func(v Variant, _ int) string { return v.String() }), ">")
	if p.Provider != "" {
		s += " (" + p.Provider + ")"
	}
	return s
}

// ParsePreference parses a comma-separated variant list such as
// "simd,scalar". Variants may not repeat; variants left out are never chosen.
func ParsePreference(s string) (Preference, error) {
	var order []Variant
	for field := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		v, err := ParseVariant(field)
		if err != nil {
			return Preference{}, err
		}
		if lo.Contains(order, v) {
			return Preference{}, fmt.Errorf("blas: variant %v listed twice in %q", v, s)
		}
		order = append(order, v)
	}
	if len(order) == 0 {
		return Preference{}, fmt.Errorf("blas: empty preference %q", s)
	}
	return Preference{Order: order}, nil
}

// Probe filters candidates through Available before delegating to Base. It
// is the hook for runtime capability checks.
type Probe struct {
	Base      Strategy
	Available func(Descriptor) bool
}

// Choose implements Strategy.
func (p Probe) Choose(candidates []Descriptor) (Descriptor, bool) {
	return p.Base.Choose(lo.Filter(candidates, func(d Descriptor, _ int) bool {
		return p.Available(d)
	}))
}

func (p Probe) String() string {
	return fmt.Sprintf("probe(%v)", p.Base)
}

// HardwareProbe wraps base so SIMD kernels are skipped when the dispatch
// level is scalar (no SIMD unit, or HWY_NO_SIMD set).
func HardwareProbe(base Strategy) Probe {
	return Probe{
		Base: base,
		Available: func(d Descriptor) bool {
			return d.Variant != SIMD || hwy.CurrentLevel() != hwy.DispatchScalar
		},
	}
}

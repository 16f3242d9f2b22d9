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

// Package bench is the benchmark driver for the blas primitives. A table of
// (descriptor, size range) entries is built from the blas registries and run
// by one generic driver, either from go test benchmarks or from
// cmd/blasbench.
package bench

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/hwyblas/hwy/contrib/blas"
)

// Range is a geometric sweep of problem sizes.
type Range struct {
	Min, Max, Mult int
}

// Default ranges. Vector sizes are element counts, matrix sizes are the
// side of a square matrix.
var (
	VectorRange = Range{Min: 8, Max: 1 << 20, Mult: 8}
	MatrixRange = Range{Min: 8, Max: 512, Mult: 2}
)

// Validate reports whether r describes a non-empty sweep.
func (r Range) Validate() error {
	switch {
	case r.Min < 1:
		return fmt.Errorf("bench: range min %d < 1", r.Min)
	case r.Max < r.Min:
		return fmt.Errorf("bench: range max %d < min %d", r.Max, r.Min)
	case r.Mult < 2:
		return fmt.Errorf("bench: range multiplier %d < 2", r.Mult)
	}
	return nil
}

// Sizes returns Min, Min*Mult, Min*Mult^2, ... up to Max. Max is always the
// last size, even when it is not on the geometric grid.
func (r Range) Sizes() []int {
	if r.Validate() != nil {
		return nil
	}
	var sizes []int
	for n := r.Min; n < r.Max; n *= r.Mult {
		sizes = append(sizes, n)
		if n > r.Max/r.Mult {
			break
		}
	}
	return append(sizes, r.Max)
}

// Workload is one prepared call of a kernel.
type Workload struct {
	Run func()

	// Per-call counts used for throughput.
	Items, FLOPs, Bytes float64
}

// Entry is one row of the benchmark table.
type Entry struct {
	Desc  blas.Descriptor
	Range Range

	// Workload allocates inputs for the given size.
	Workload func(size int) Workload
}

// Backend is the label used in benchmark names: the provider for
// accelerated entries, the variant otherwise.
func (e Entry) Backend() string {
	if e.Desc.Variant == blas.Accelerated {
		return title.String(e.Desc.Provider)
	}
	return title.String(e.Desc.Variant.String())
}

// Family returns "BM_<Op>_<Backend>".
func (e Entry) Family() string {
	return "BM_" + title.String(e.Desc.Op.String()) + "_" + e.Backend()
}

// Name returns "BM_<Op>_<Backend>/<size>".
func (e Entry) Name(size int) string {
	return fmt.Sprintf("%s/%d", e.Family(), size)
}

var title = cases.Title(language.English)

// sink keeps the compiler from discarding dot results.
var sink float64

func fill(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return v
}

func dotWorkload(fn blas.DotFunc) func(int) Workload {
	return func(n int) Workload {
		rng := rand.New(rand.NewSource(int64(n)))
		x, y := fill(rng, n), fill(rng, n)
		return Workload{
			Run:   func() { sink = fn(x, y) },
			Items: float64(n),
			FLOPs: 2 * float64(n),
			Bytes: 16 * float64(n),
		}
	}
}

func axpyWorkload(fn blas.AxpyFunc) func(int) Workload {
	return func(n int) Workload {
		rng := rand.New(rand.NewSource(int64(n)))
		x, y := fill(rng, n), fill(rng, n)
		return Workload{
			// alpha keeps y bounded across iterations.
			Run:   func() { fn(x, y, 1e-9) },
			Items: float64(n),
			FLOPs: 2 * float64(n),
			Bytes: 24 * float64(n),
		}
	}
}

func gemvWorkload(fn blas.GemvFunc) func(int) Workload {
	return func(n int) Workload {
		rng := rand.New(rand.NewSource(int64(n)))
		a, x := fill(rng, n*n), fill(rng, n)
		y := make([]float64, n)
		nn := float64(n) * float64(n)
		return Workload{
			Run:   func() { fn(a, x, y, n, n) },
			Items: nn,
			FLOPs: 2 * nn,
			Bytes: 8 * (nn + 2*float64(n)),
		}
	}
}

func gemmWorkload(fn blas.GemmFunc) func(int) Workload {
	return func(n int) Workload {
		rng := rand.New(rand.NewSource(int64(n)))
		a, b := fill(rng, n*n), fill(rng, n*n)
		c := make([]float64, n*n)
		nf := float64(n)
		return Workload{
			Run:   func() { fn(a, b, c, n, n, n) },
			Items: nf * nf * nf,
			FLOPs: 2 * nf * nf * nf,
			Bytes: 8 * 3 * nf * nf,
		}
	}
}

// DefaultTable returns an entry for every registered implementation of
// every operation, in blas.Ops order.
func DefaultTable() []Entry {
	var table []Entry
	for _, impl := range blas.Dots.Impls() {
		table = append(table, Entry{Desc: impl.Descriptor, Range: VectorRange, Workload: dotWorkload(impl.Fn)})
	}
	for _, impl := range blas.Gemms.Impls() {
		table = append(table, Entry{Desc: impl.Descriptor, Range: MatrixRange, Workload: gemmWorkload(impl.Fn)})
	}
	for _, impl := range blas.Gemvs.Impls() {
		table = append(table, Entry{Desc: impl.Descriptor, Range: MatrixRange, Workload: gemvWorkload(impl.Fn)})
	}
	for _, impl := range blas.Axpys.Impls() {
		table = append(table, Entry{Desc: impl.Descriptor, Range: VectorRange, Workload: axpyWorkload(impl.Fn)})
	}
	return table
}

// Filter keeps entries whose op is in ops and whose backend matches one of
// backends. A backend matches the variant name, the provider name or the
// name label, ignoring case. Empty lists match everything.
func Filter(table []Entry, ops []blas.Op, backends []string) []Entry {
	return lo.Filter(table, func(e Entry, _ int) bool {
		if len(ops) > 0 && !lo.Contains(ops, e.Desc.Op) {
			return false
		}
		if len(backends) == 0 {
			return true
		}
		return lo.ContainsBy(backends, func(b string) bool {
			return strings.EqualFold(b, e.Desc.Variant.String()) ||
				strings.EqualFold(b, e.Desc.Provider) ||
				strings.EqualFold(b, e.Backend())
		})
	})
}

// WithRange returns a copy of table with every entry's range replaced.
func WithRange(table []Entry, r Range) []Entry {
	return lo.Map(table, func(e Entry, _ int) Entry {
		e.Range = r
		return e
	})
}

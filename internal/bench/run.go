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

package bench

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/ajroetker/hwyblas/hwy"
)

// Result is one measured (entry, size) pair. Field names follow the Google
// Benchmark JSON schema so existing analysis scripts can read the output.
type Result struct {
	Name                   string  `json:"name"`
	FamilyIndex            int     `json:"family_index"`
	PerFamilyInstanceIndex int     `json:"per_family_instance_index"`
	RunName                string  `json:"run_name"`
	RunType                string  `json:"run_type"`
	Repetitions            int     `json:"repetitions"`
	RepetitionIndex        int     `json:"repetition_index"`
	Threads                int     `json:"threads"`
	Iterations             int     `json:"iterations"`
	RealTime               float64 `json:"real_time"`
	CPUTime                float64 `json:"cpu_time"`
	TimeUnit               string  `json:"time_unit"`
	BytesPerSecond         float64 `json:"bytes_per_second"`
	ItemsPerSecond         float64 `json:"items_per_second"`
	FLOPsPerSecond         float64 `json:"flops_per_second"`
}

// Context describes the machine a report was produced on.
type Context struct {
	Date       string `json:"date"`
	Executable string `json:"executable,omitempty"`
	NumCPUs    int    `json:"num_cpus"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
	Dispatch   string `json:"dispatch"`
}

// Report is the top-level JSON document.
type Report struct {
	Context    Context  `json:"context"`
	Benchmarks []Result `json:"benchmarks"`
}

// NewContext describes the current process.
func NewContext(executable string) Context {
	return Context{
		Date:       time.Now().Format(time.RFC3339),
		Executable: executable,
		NumCPUs:    runtime.NumCPU(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		Dispatch:   hwy.CurrentName(),
	}
}

// Measure turns a finished benchmark of w into a Result.
func Measure(e Entry, family, instance, size int, w Workload, r testing.BenchmarkResult) Result {
	name := e.Name(size)
	res := Result{
		Name:                   name,
		FamilyIndex:            family,
		PerFamilyInstanceIndex: instance,
		RunName:                name,
		RunType:                "iteration",
		Repetitions:            1,
		Threads:                1,
		Iterations:             r.N,
		TimeUnit:               "ns",
	}
	if r.N == 0 || r.T <= 0 {
		return res
	}
	perOp := float64(r.T.Nanoseconds()) / float64(r.N)
	res.RealTime = perOp
	res.CPUTime = perOp
	calls := float64(r.N) / r.T.Seconds()
	res.ItemsPerSecond = w.Items * calls
	res.FLOPsPerSecond = w.FLOPs * calls
	res.BytesPerSecond = w.Bytes * calls
	return res
}

// Run benchmarks every size of every entry in table order and reports each
// result to fn as soon as it is measured. It stops between measurements
// once ctx is done.
func Run(ctx context.Context, table []Entry, fn func(Result)) error {
	for family, e := range table {
		for instance, size := range e.Range.Sizes() {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := e.Workload(size)
			r := testing.Benchmark(func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					w.Run()
				}
			})
			fn(Measure(e, family, instance, size, w, r))
		}
	}
	return nil
}

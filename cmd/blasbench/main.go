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

// Command blasbench benchmarks every dot, gemm, gemv and axpy implementation
// compiled into this build over a geometric sweep of sizes.
//
// Usage:
//
//	blasbench list
//	blasbench run --op dot --backend simd,accelerate --min 8 --max 1048576 --mult 8
//	blasbench run --op gemm --format json > accelerate.json
//
// JSON output uses the Google Benchmark schema (BM_<Op>_<Backend>/<size>
// names, items_per_second) so reports from different builds can be merged.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blasbench:", err)
		os.Exit(1)
	}
}

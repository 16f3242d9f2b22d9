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

package accel

import "github.com/ziutek/blas"

func init() {
	register(ziutekProvider{}, priorityZiutek)
}

// ziutekProvider forwards to github.com/ziutek/blas, whose level-1 routines
// are hand-written SSE2 assembly on amd64. It has no level-2/3 routines.
type ziutekProvider struct{}

func (ziutekProvider) Name() string { return "ziutek" }
func (ziutekProvider) Kind() Kind   { return Library }

func (ziutekProvider) Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	return blas.Ddot(n, x, incX, y, incY)
}

func (ziutekProvider) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	blas.Daxpy(n, alpha, x, incX, y, incY)
}

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
	"os"
	"strconv"
)

// Environment variables read by StrategyFromEnv.
const (
	// EnvPrefer holds a variant list for ParsePreference.
	EnvPrefer = "HWY_BLAS_PREFER"

	// EnvProvider pins the accelerated provider, e.g. "gonum".
	EnvProvider = "HWY_BLAS_PROVIDER"

	// EnvNoAccel drops accelerated implementations when true.
	EnvNoAccel = "HWY_NO_ACCEL"
)

// StrategyFromEnv builds the strategy the package selects with at init.
// Unparsable values fall back to the defaults.
func StrategyFromEnv() Strategy {
	pref := Preference{}
	if s := os.Getenv(EnvPrefer); s != "" {
		if p, err := ParsePreference(s); err == nil {
			pref = p
		}
	}
	pref.Provider = os.Getenv(EnvProvider)

	probe := HardwareProbe(pref)
	if !envBool(EnvNoAccel) {
		return probe
	}
	hw := probe.Available
	probe.Available = func(d Descriptor) bool {
		return d.Variant != Accelerated && hw(d)
	}
	return probe
}

// envBool follows hwy.NoSimdEnv: set and not parsable as false means true.
func envBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Copyright 2025 soabench Authors
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

// Package kernel implements the filter-and-sum reduction over a flat dataset
// view: the sum of balances of records that are active and whose balance
// meets a minimum threshold.
//
// Three interchangeable strategies compute the same qualifying set:
//
//   - Scalar: one record at a time, in index order. Its front-to-back
//     accumulation order fixes the floating-point reference result.
//   - Vector: AVX2 8-lane arithmetic with two independent accumulators,
//     built when GOEXPERIMENT=simd is enabled on amd64.
//   - Tuned: the vector kernel re-tuned with a wider batch per loop step to
//     keep both FMA pipes of recent x86 cores busy.
//
// Because float addition is not associative, the vector and tuned results
// are close to but not bit-identical with the scalar result; callers compare
// them with a relative tolerance.
//
// Strategy selection happens once, at package init: the implementation
// function pointers below are bound from the CPU capability probe in the
// platform dispatch files and never change for the lifetime of the process,
// so every iteration of a benchmark measures the same code path. Hosts
// without AVX2 (or builds without the simd experiment) keep the scalar
// bindings.
package kernel

import (
	"os"
	"strconv"

	"github.com/soabench/soabench/dataset"
)

// Strategy identifies which kernel implementation the dispatcher selected.
type Strategy int

const (
	// StrategyScalar is the portable one-record-at-a-time baseline.
	StrategyScalar Strategy = iota

	// StrategyVector is the AVX2 8-lane kernel.
	StrategyVector

	// StrategyTuned is the wide-batch AVX2 kernel.
	StrategyTuned
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyVector:
		return "vector"
	case StrategyTuned:
		return "tuned"
	default:
		return "unknown"
	}
}

// Implementation bindings. The defaults are the scalar kernels; the platform
// init in dispatch_simd.go rebinds them when AVX2 is available.
var (
	activeStrategy = StrategyScalar

	sumImpl       = sumScalar
	sumVectorImpl = sumScalar
	sumTunedImpl  = sumScalar
	sumWideImpl   = sumScalar64
)

// Active reports the strategy Sum dispatches to. It is constant for the
// lifetime of the process.
func Active() Strategy {
	return activeStrategy
}

// Sum computes the sum of balances of qualifying records using the best
// strategy available on this host. A record qualifies when its active flag
// is non-zero and its balance is greater than or equal to threshold.
func Sum(v dataset.View, threshold float32) float32 {
	return sumImpl(v, threshold)
}

// SumScalar always runs the scalar baseline, regardless of host capability.
func SumScalar(v dataset.View, threshold float32) float32 {
	return sumScalar(v, threshold)
}

// SumScalar64 is the scalar baseline with a float64 accumulator. It is the
// reference result for SumVector64.
func SumScalar64(v dataset.View, threshold float32) float64 {
	return sumScalar64(v, threshold)
}

// SumVector runs the 8-lane vectorized kernel, or the scalar kernel when the
// host lacks AVX2 support.
func SumVector(v dataset.View, threshold float32) float32 {
	return sumVectorImpl(v, threshold)
}

// SumTuned runs the wide-batch tuned kernel, or the scalar kernel when the
// host lacks AVX2 support.
func SumTuned(v dataset.View, threshold float32) float32 {
	return sumTunedImpl(v, threshold)
}

// SumVector64 runs the vectorized kernel that widens each lane's float32
// contribution to float64 before accumulating, bounding error growth over
// very large N. Qualification still happens at float32 precision, so the
// qualifying set is identical to the other variants'. Falls back to the
// float64-accumulating scalar kernel when the host lacks AVX2 support.
func SumVector64(v dataset.View, threshold float32) float64 {
	return sumWideImpl(v, threshold)
}

// noSIMDEnv checks the SOABENCH_NO_SIMD environment variable. When set, the
// dispatcher keeps the scalar bindings regardless of CPU capability. This
// exists so the mandatory fallback path can be exercised on hardware that
// would otherwise never take it.
func noSIMDEnv() bool {
	val := os.Getenv("SOABENCH_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

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

// Command bench-vector64 times the vectorized kernel that widens each
// lane's float32 contribution to a float64 accumulator, bounding rounding
// error growth on very large record counts.
package main

import (
	"log/slog"
	"os"

	"github.com/soabench/soabench/bench"
	"github.com/soabench/soabench/kernel"
)

// The record count is two orders of magnitude beyond the float32 variants:
// error growth in a single-precision accumulator only becomes visible at
// this scale, which is what the widened accumulator exists to bound. The
// dataset needs roughly 9 GiB resident.
const (
	elementsCount    = 1_000_000_000
	minimumBalance   = 250.0
	randomSeed       = 17
	warmupIterations = 2
	iterations       = 8
)

func main() {
	slog.Info("dispatch", "strategy", kernel.Active(), "avx2", kernel.HardwareVectorCapable())

	cfg := bench.Config{
		Elements:         elementsCount,
		Threshold:        minimumBalance,
		Seed:             randomSeed,
		WarmupIterations: warmupIterations,
		Iterations:       iterations,
	}

	report := bench.Run(cfg, "Flat Vector F64", kernel.SumVector64)
	report.WriteTo(os.Stdout)
}

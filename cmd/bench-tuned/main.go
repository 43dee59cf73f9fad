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

// Command bench-tuned times the wide-batch tuned kernel over the flat
// dataset layout, with the mandatory scalar fallback on hosts that cannot
// run it.
package main

import (
	"log/slog"
	"os"

	"github.com/soabench/soabench/bench"
	"github.com/soabench/soabench/dataset"
	"github.com/soabench/soabench/kernel"
)

const (
	elementsCount    = 10_000_000
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

	report := bench.Run(cfg, "Flat Tuned", func(v dataset.View, threshold float32) float64 {
		return float64(kernel.SumTuned(v, threshold))
	})
	report.WriteTo(os.Stdout)
}

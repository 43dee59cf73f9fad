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

// Package bench drives a benchmark run: dataset generation, a warmup phase
// whose last result becomes the correctness checksum, a measured phase timed
// as one block, and the derived summary statistics. Phases run strictly in
// that order on a single goroutine; nothing is retained between runs.
package bench

import (
	"log/slog"
	"time"

	"github.com/soabench/soabench/dataset"
	"github.com/soabench/soabench/repository"
)

// Config fixes every parameter of a run. The cmd binaries bake these in as
// compile-time constants; there is deliberately no flag or environment
// plumbing behind them.
type Config struct {
	// Elements is the record count N.
	Elements int

	// Threshold is the minimum qualifying balance, inclusive.
	Threshold float32

	// Seed feeds the dataset generator.
	Seed uint64

	// WarmupIterations are executed and discarded before timing starts.
	WarmupIterations int

	// Iterations are executed inside the timed region.
	Iterations int
}

// Kernel adapts any reduction variant to the harness. Variants that
// accumulate in float32 widen their result; the checksum comparison
// tolerance absorbs the difference.
type Kernel func(v dataset.View, threshold float32) float64

// sink receives every measured result so the compiler cannot prove the
// kernel calls dead and elide them. Same job as the volatile sink in
// hand-rolled C harnesses.
var sink float64

// Run executes the full phase sequence for one kernel variant and returns
// its report. The dataset lives for the duration of the run and all kernel
// invocations borrow it read-only.
func Run(cfg Config, name string, kernel Kernel) Report {
	logger := slog.Default()

	logger.Info("generating dataset", "elements", cfg.Elements, "seed", cfg.Seed)
	view := dataset.Generate(cfg.Elements, cfg.Seed).View()

	logger.Info("warming up", "iterations", cfg.WarmupIterations)
	var checksum float64
	for range cfg.WarmupIterations {
		checksum = kernel(view, cfg.Threshold)
	}

	logger.Info("measuring", "iterations", cfg.Iterations)
	start := time.Now()
	for range cfg.Iterations {
		sink = kernel(view, cfg.Threshold)
	}
	elapsed := time.Since(start)

	return newReport(cfg, name, checksum, elapsed)
}

// RunRepository executes the same phase sequence over the callback-driven
// repository baseline. The repository is built from the identical logical
// dataset a flat-view run of the same Config would scan.
func RunRepository(cfg Config, name string) Report {
	logger := slog.Default()

	logger.Info("generating dataset", "elements", cfg.Elements, "seed", cfg.Seed)
	repo := repository.FromView(dataset.Generate(cfg.Elements, cfg.Seed).View())

	logger.Info("warming up", "iterations", cfg.WarmupIterations)
	var checksum float64
	for range cfg.WarmupIterations {
		checksum = float64(repository.SumActiveBalances(repo, cfg.Threshold))
	}

	logger.Info("measuring", "iterations", cfg.Iterations)
	start := time.Now()
	for range cfg.Iterations {
		sink = float64(repository.SumActiveBalances(repo, cfg.Threshold))
	}
	elapsed := time.Since(start)

	return newReport(cfg, name, checksum, elapsed)
}

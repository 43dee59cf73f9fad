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

package bench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soabench/soabench/dataset"
	"github.com/soabench/soabench/kernel"
)

func testConfig() Config {
	return Config{
		Elements:         1_000,
		Threshold:        250.0,
		Seed:             17,
		WarmupIterations: 2,
		Iterations:       3,
	}
}

func TestRunPhaseSequence(t *testing.T) {
	cfg := testConfig()

	calls := 0
	report := Run(cfg, "Probe", func(v dataset.View, threshold float32) float64 {
		calls++
		require.Equal(t, cfg.Elements, v.Len())
		require.Equal(t, cfg.Threshold, threshold)
		return float64(kernel.SumScalar(v, threshold))
	})

	// Every warmup and measured iteration executes the kernel.
	require.Equal(t, cfg.WarmupIterations+cfg.Iterations, calls)

	// The checksum is the real aggregate over the generated dataset.
	want := float64(kernel.SumScalar(dataset.Generate(cfg.Elements, cfg.Seed).View(), cfg.Threshold))
	require.Equal(t, want, report.Checksum)

	require.Equal(t, "Probe", report.Name)
	require.GreaterOrEqual(t, report.TotalTime, report.AvgTime)
	require.Greater(t, report.ElementsPerSecond, 0.0)
	require.Greater(t, report.NanosecondsPerElement, 0.0)
}

func TestRunZeroElements(t *testing.T) {
	cfg := testConfig()
	cfg.Elements = 0

	report := Run(cfg, "Empty", func(v dataset.View, threshold float32) float64 {
		return float64(kernel.SumScalar(v, threshold))
	})

	require.Zero(t, report.Checksum)
}

func TestRunRepositoryMatchesFlatChecksum(t *testing.T) {
	cfg := testConfig()

	flat := Run(cfg, "Flat Scalar", func(v dataset.View, threshold float32) float64 {
		return float64(kernel.SumScalar(v, threshold))
	})
	repo := RunRepository(cfg, "Repository")

	// Same logical dataset, same accumulation order: the checksums agree
	// exactly, which is what makes the comparison between layouts fair.
	require.Equal(t, flat.Checksum, repo.Checksum)
}

func TestReportRendering(t *testing.T) {
	cfg := testConfig()
	report := Run(cfg, "Flat Scalar", func(v dataset.View, threshold float32) float64 {
		return float64(kernel.SumScalar(v, threshold))
	})

	var sb strings.Builder
	_, err := report.WriteTo(&sb)
	require.NoError(t, err)
	out := sb.String()

	require.Contains(t, out, "[ Flat Scalar Benchmark ]")
	require.Contains(t, out, "[ Flat Scalar Results ]")
	require.Contains(t, out, "Elements Count    : 1000")
	require.Contains(t, out, "Minimum Balance   : 250.00")
	require.Contains(t, out, "Random Seed       : 17")
	require.Contains(t, out, "Warmup Iterations : 2")
	require.Contains(t, out, "Iterations        : 3")
	require.Contains(t, out, "Checksum")
	require.Contains(t, out, "Total Time")
	require.Contains(t, out, "Average Time per Iteration")
	require.Contains(t, out, "Elements per Second")
	require.Contains(t, out, "Nanoseconds per Element")

	// The checksum carries 8 decimal digits.
	require.Regexp(t, `Checksum\s+: \d+\.\d{8}`, out)
}

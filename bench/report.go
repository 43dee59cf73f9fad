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
	"fmt"
	"io"
	"time"
)

// Report is the outcome of one run: the configuration echoed back, the
// checksum from the last warmup iteration, and the derived timing figures.
type Report struct {
	Config

	// Name labels the variant in the rendered report.
	Name string

	// Checksum is the accumulator from the last warmup iteration. Two
	// variants that ran over the same dataset must agree on it within the
	// float tolerance, which confirms they computed the same aggregate.
	Checksum float64

	// TotalTime is the wall-clock time of the measured phase.
	TotalTime time.Duration

	// AvgTime is TotalTime divided by the iteration count.
	AvgTime time.Duration

	// ElementsPerSecond is the throughput of a single iteration.
	ElementsPerSecond float64

	// NanosecondsPerElement is the average cost of one record.
	NanosecondsPerElement float64
}

func newReport(cfg Config, name string, checksum float64, elapsed time.Duration) Report {
	avg := elapsed / time.Duration(max(cfg.Iterations, 1))

	var perSecond, perElement float64
	if avgSeconds := avg.Seconds(); avgSeconds > 0 && cfg.Elements > 0 {
		perSecond = float64(cfg.Elements) / avgSeconds
		perElement = avgSeconds * 1e9 / float64(cfg.Elements)
	}

	return Report{
		Config:                cfg,
		Name:                  name,
		Checksum:              checksum,
		TotalTime:             elapsed,
		AvgTime:               avg,
		ElementsPerSecond:     perSecond,
		NanosecondsPerElement: perElement,
	}
}

// WriteTo renders the report in the benchmark suite's standard layout.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range []string{
		"",
		fmt.Sprintf("[ %s Benchmark ]", r.Name),
		fmt.Sprintf("Elements Count    : %d", r.Elements),
		fmt.Sprintf("Minimum Balance   : %.2f", r.Threshold),
		fmt.Sprintf("Random Seed       : %d", r.Seed),
		fmt.Sprintf("Warmup Iterations : %d", r.WarmupIterations),
		fmt.Sprintf("Iterations        : %d", r.Iterations),
		"",
		fmt.Sprintf("[ %s Results ]", r.Name),
		fmt.Sprintf("Checksum                   : %.8f", r.Checksum),
		fmt.Sprintf("Total Time                 : %.2f s", r.TotalTime.Seconds()),
		fmt.Sprintf("Average Time per Iteration : %.2f s", r.AvgTime.Seconds()),
		fmt.Sprintf("Elements per Second        : %.2f M", r.ElementsPerSecond/1e6),
		fmt.Sprintf("Nanoseconds per Element    : %.2f", r.NanosecondsPerElement),
		"",
	} {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

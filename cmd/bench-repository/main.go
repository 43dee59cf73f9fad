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

// Command bench-repository times the abstraction-heavy baseline: the same
// logical records stored as composite structs behind an interface, summed
// through a per-record callback instead of direct array scans.
package main

import (
	"os"

	"github.com/soabench/soabench/bench"
)

const (
	elementsCount    = 10_000_000
	minimumBalance   = 250.0
	randomSeed       = 17
	warmupIterations = 2
	iterations       = 8
)

func main() {
	cfg := bench.Config{
		Elements:         elementsCount,
		Threshold:        minimumBalance,
		Seed:             randomSeed,
		WarmupIterations: warmupIterations,
		Iterations:       iterations,
	}

	report := bench.RunRepository(cfg, "Repository")
	report.WriteTo(os.Stdout)
}

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

package kernel

import (
	"testing"

	"github.com/soabench/soabench/dataset"
)

const benchElements = 1_000_000

var (
	sinkF32 float32
	sinkF64 float64
)

func BenchmarkSumScalar(b *testing.B) {
	v := dataset.Generate(benchElements, 17).View()
	b.SetBytes(benchElements * 5) // 4 balance bytes + 1 flag byte per record
	b.ResetTimer()
	for range b.N {
		sinkF32 = SumScalar(v, 250.0)
	}
}

func BenchmarkSumVector(b *testing.B) {
	v := dataset.Generate(benchElements, 17).View()
	b.SetBytes(benchElements * 5)
	b.ResetTimer()
	for range b.N {
		sinkF32 = SumVector(v, 250.0)
	}
}

func BenchmarkSumTuned(b *testing.B) {
	v := dataset.Generate(benchElements, 17).View()
	b.SetBytes(benchElements * 5)
	b.ResetTimer()
	for range b.N {
		sinkF32 = SumTuned(v, 250.0)
	}
}

func BenchmarkSumVector64(b *testing.B) {
	v := dataset.Generate(benchElements, 17).View()
	b.SetBytes(benchElements * 5)
	b.ResetTimer()
	for range b.N {
		sinkF64 = SumVector64(v, 250.0)
	}
}

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

import "github.com/soabench/soabench/dataset"

// sumScalar is the portable baseline: index order, front to back, which
// fixes the reference rounding behavior.
//
// The qualification test is expressed as a 0/1 multiplier instead of a
// conditional add. The two formulations compute the same sum to full
// precision; the multiplier form keeps a data-dependent branch out of the
// hot loop.
func sumScalar(v dataset.View, threshold float32) float32 {
	balances := v.Balances
	flags := v.Active

	var acc float32
	for i, balance := range balances {
		var take float32
		if flags[i] != 0 && balance >= threshold {
			take = 1
		}
		acc += balance * take
	}
	return acc
}

// sumScalar64 accumulates in float64. The qualifying set is decided at
// float32 precision, same as sumScalar; only the accumulator widens.
func sumScalar64(v dataset.View, threshold float32) float64 {
	balances := v.Balances
	flags := v.Active

	var acc float64
	for i, balance := range balances {
		var take float64
		if flags[i] != 0 && balance >= threshold {
			take = 1
		}
		acc += float64(balance) * take
	}
	return acc
}

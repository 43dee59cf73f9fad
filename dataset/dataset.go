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

// Package dataset generates the synthetic account workload in flat,
// structure-of-arrays form: one slice per field instead of one slice of
// composite records. The flat layout is what the reduction kernels scan;
// the repository package rebuilds the same logical records in interleaved
// form for the abstraction-heavy comparison baseline.
package dataset

import "math/rand/v2"

// Distribution parameters shared by every benchmark variant. Balances are
// uniform over [0, BalanceMax); the active flag is Bernoulli(ActiveProbability).
//
// The upper bound is open at float64 precision, but the draw is rounded to
// float32, so a draw within ~3e-8 of the bound can round up to exactly
// BalanceMax.
const (
	BalanceMax        = 1000.0
	ActiveProbability = 0.6
)

// Dataset owns the three backing arrays of the flat layout. It is built once
// by Generate and never mutated afterwards, so any number of concurrent
// readers may share it without coordination.
type Dataset struct {
	ids      []int32
	balances []float32
	active   []byte
}

// View is a non-owning window over a Dataset's arrays.
//
// The three slices always have identical length and come from independent
// allocations, so they never alias each other. Kernels rely on that: they
// read all three streams in lockstep without rechecking bounds against one
// another. Callers must not construct a View whose slices overlap.
type View struct {
	IDs      []int32
	Balances []float32
	// Active holds one byte per record. Zero means inactive; any non-zero
	// value is treated as active by every kernel.
	Active []byte
}

// Len returns the record count N.
func (v View) Len() int {
	return len(v.Balances)
}

// Generate builds a Dataset of n records from the given seed.
//
// The record sequence is a pure function of (n, seed): the PCG generator from
// math/rand/v2 has a specified algorithm, so the same inputs produce
// bit-identical balances and flags on every platform and rebuild. Randomness
// is consumed in record order, one balance draw then one activity draw per
// record, which also makes the sequence prefix-stable: Generate(2n, s)
// reproduces Generate(n, s) in its first half.
//
// Identifiers are the positional index.
func Generate(n int, seed uint64) *Dataset {
	rng := rand.New(rand.NewPCG(seed, seed))

	d := &Dataset{
		ids:      make([]int32, n),
		balances: make([]float32, n),
		active:   make([]byte, n),
	}

	for i := range n {
		d.ids[i] = int32(i)
		d.balances[i] = float32(rng.Float64() * BalanceMax)
		if rng.Float64() < ActiveProbability {
			d.active[i] = 1
		}
	}

	return d
}

// View returns a read-only view over the dataset's arrays. The returned
// slices share backing storage with the Dataset; callers borrow them for the
// duration of a kernel call and must not write through them.
func (d *Dataset) View() View {
	return View{
		IDs:      d.ids,
		Balances: d.balances,
		Active:   d.active,
	}
}

// Len returns the record count N.
func (d *Dataset) Len() int {
	return len(d.balances)
}

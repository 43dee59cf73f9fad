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

//go:build amd64 && goexperiment.simd

package kernel

import (
	"simd/archsimd"

	"github.com/soabench/soabench/dataset"
)

// lanes is the vector width W: float32 records per AVX2 register.
const lanes = 8

// widenActive promotes 8 one-byte activity flags to float32 lanes.
// archsimd has no byte-to-float promotion on AVX2, so this uses the
// store/scalar/load pattern. The caller clamps the result to at most 1.0 so
// that any non-zero stored value counts as active, matching the scalar
// kernel's non-zero test.
func widenActive(flags []byte) archsimd.Float32x8 {
	var widened [lanes]float32
	for j := range widened {
		widened[j] = float32(flags[j])
	}
	return archsimd.LoadFloat32x8Slice(widened[:])
}

// contribution returns balance lanes where the record qualifies and zero
// elsewhere. The threshold comparison is an ordered greater-or-equal
// (VCMPPS GE_OQ): NaN balances never qualify, exactly as in the scalar
// kernel. Merge semantics: a.Merge(b, mask) keeps a where the mask is true.
func contribution(balances archsimd.Float32x8, active archsimd.Float32x8, threshold, one, zero archsimd.Float32x8) archsimd.Float32x8 {
	take := active.Min(one)
	qualifies := balances.GreaterEqual(threshold)
	return balances.Mul(take).Merge(zero, qualifies)
}

// reduceF32x8 sums the 8 lanes of a vector into a scalar.
func reduceF32x8(v archsimd.Float32x8) float32 {
	var data [lanes]float32
	v.Store(&data)

	var sum float32
	for _, lane := range data {
		sum += lane
	}
	return sum
}

// reduceF64x4 sums the 4 lanes of a double-width vector into a scalar.
func reduceF64x4(v archsimd.Float64x4) float64 {
	var data [4]float64
	v.Store(&data)

	var sum float64
	for _, lane := range data {
		sum += lane
	}
	return sum
}

// splitToF64 promotes the low and high halves of a Float32x8 to two
// Float64x4 vectors, via the store/scalar/load pattern (AVX2 exposes
// VCVTPS2PD only on 128-bit halves and archsimd does not surface it).
func splitToF64(v archsimd.Float32x8) (archsimd.Float64x4, archsimd.Float64x4) {
	var data [lanes]float32
	v.Store(&data)

	var lo, hi [4]float64
	for j := 0; j < 4; j++ {
		lo[j] = float64(data[j])
		hi[j] = float64(data[4+j])
	}
	return archsimd.LoadFloat64x4Slice(lo[:]), archsimd.LoadFloat64x4Slice(hi[:])
}

// sumVectorAVX2 processes 2W = 16 records per loop step, one W-wide block
// into each of two independent accumulators so consecutive adds do not
// serialize on a single register dependency chain. The N mod 16 tail falls
// through to a scalar pass over the exact leftover records.
func sumVectorAVX2(v dataset.View, minBalance float32) float32 {
	balances := v.Balances
	flags := v.Active
	n := len(balances)

	threshold := archsimd.BroadcastFloat32x8(minBalance)
	one := archsimd.BroadcastFloat32x8(1.0)
	zero := archsimd.BroadcastFloat32x8(0.0)

	acc0 := zero
	acc1 := zero

	i := 0
	for ; i+2*lanes <= n; i += 2 * lanes {
		b0 := archsimd.LoadFloat32x8Slice(balances[i:])
		a0 := widenActive(flags[i:])
		acc0 = acc0.Add(contribution(b0, a0, threshold, one, zero))

		b1 := archsimd.LoadFloat32x8Slice(balances[i+lanes:])
		a1 := widenActive(flags[i+lanes:])
		acc1 = acc1.Add(contribution(b1, a1, threshold, one, zero))
	}

	sum := reduceF32x8(acc0.Add(acc1))

	for ; i < n; i++ {
		if flags[i] != 0 && balances[i] >= minBalance {
			sum += balances[i]
		}
	}
	return sum
}

// sumTunedAVX2 is the microarchitecture re-tune of sumVectorAVX2: 4W = 32
// records per loop step as two independent 2W sub-computations, sized for
// cores with dual FMA/add pipes (Zen 2 and newer). Go offers no software
// prefetch hint, so the wider batch is the only tuning lever here; the
// hardware stride prefetcher covers the streaming reads. Qualification
// semantics and the accumulate-then-combine discipline are unchanged.
func sumTunedAVX2(v dataset.View, minBalance float32) float32 {
	balances := v.Balances
	flags := v.Active
	n := len(balances)

	threshold := archsimd.BroadcastFloat32x8(minBalance)
	one := archsimd.BroadcastFloat32x8(1.0)
	zero := archsimd.BroadcastFloat32x8(0.0)

	acc0 := zero
	acc1 := zero
	acc2 := zero
	acc3 := zero

	i := 0
	for ; i+4*lanes <= n; i += 4 * lanes {
		b0 := archsimd.LoadFloat32x8Slice(balances[i:])
		a0 := widenActive(flags[i:])
		acc0 = acc0.Add(contribution(b0, a0, threshold, one, zero))

		b1 := archsimd.LoadFloat32x8Slice(balances[i+lanes:])
		a1 := widenActive(flags[i+lanes:])
		acc1 = acc1.Add(contribution(b1, a1, threshold, one, zero))

		b2 := archsimd.LoadFloat32x8Slice(balances[i+2*lanes:])
		a2 := widenActive(flags[i+2*lanes:])
		acc2 = acc2.Add(contribution(b2, a2, threshold, one, zero))

		b3 := archsimd.LoadFloat32x8Slice(balances[i+3*lanes:])
		a3 := widenActive(flags[i+3*lanes:])
		acc3 = acc3.Add(contribution(b3, a3, threshold, one, zero))
	}

	sum := reduceF32x8(acc0.Add(acc1).Add(acc2.Add(acc3)))

	for ; i < n; i++ {
		if flags[i] != 0 && balances[i] >= minBalance {
			sum += balances[i]
		}
	}
	return sum
}

// sumWideAVX2 computes each W-wide block's contribution at float32
// precision, then widens the lanes to float64 before adding into two
// double-width accumulators. Which records qualify is decided exactly as in
// sumVectorAVX2; only the accumulation precision differs.
func sumWideAVX2(v dataset.View, minBalance float32) float64 {
	balances := v.Balances
	flags := v.Active
	n := len(balances)

	threshold := archsimd.BroadcastFloat32x8(minBalance)
	one := archsimd.BroadcastFloat32x8(1.0)
	zero := archsimd.BroadcastFloat32x8(0.0)

	accLo := archsimd.BroadcastFloat64x4(0.0)
	accHi := archsimd.BroadcastFloat64x4(0.0)

	i := 0
	for ; i+lanes <= n; i += lanes {
		b := archsimd.LoadFloat32x8Slice(balances[i:])
		a := widenActive(flags[i:])
		contrib := contribution(b, a, threshold, one, zero)

		lo, hi := splitToF64(contrib)
		accLo = accLo.Add(lo)
		accHi = accHi.Add(hi)
	}

	sum := reduceF64x4(accLo.Add(accHi))

	for ; i < n; i++ {
		if flags[i] != 0 && balances[i] >= minBalance {
			sum += float64(balances[i])
		}
	}
	return sum
}

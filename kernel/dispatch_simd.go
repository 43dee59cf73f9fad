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

import "simd/archsimd"

// The capability probe runs once, before any kernel call. If the CPU lacks
// AVX2 the scalar bindings from kernel.go stay in place; the fallback is not
// optional, a binary carrying the vector kernels must still produce correct
// results on older hardware.
func init() {
	if noSIMDEnv() {
		return
	}

	if archsimd.X86.AVX2() {
		activeStrategy = StrategyTuned

		sumImpl = sumTunedAVX2
		sumVectorImpl = sumVectorAVX2
		sumTunedImpl = sumTunedAVX2
		sumWideImpl = sumWideAVX2
	}
}

// HardwareVectorCapable reports whether the CPU supports the AVX2
// instruction set the vector kernels target.
func HardwareVectorCapable() bool {
	return archsimd.X86.AVX2()
}

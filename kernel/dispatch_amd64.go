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

//go:build amd64 && !goexperiment.simd

package kernel

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the vector kernels are not compiled in, so the
// scalar bindings from kernel.go stand. The CPU is still probed so callers
// can tell "hardware cannot vectorize" apart from "build cannot vectorize"
// in their reports.

var hwAVX2 bool

func init() {
	hwAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
}

// HardwareVectorCapable reports whether the CPU supports the AVX2+FMA
// instruction set the vector kernels target, independent of whether this
// binary was built with them.
func HardwareVectorCapable() bool {
	return hwAVX2
}

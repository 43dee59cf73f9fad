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

//go:build !amd64

package kernel

// Non-amd64 targets have no vector kernels; the scalar bindings from
// kernel.go stand.

// HardwareVectorCapable reports whether the CPU supports the AVX2
// instruction set the vector kernels target. Always false off amd64.
func HardwareVectorCapable() bool {
	return false
}

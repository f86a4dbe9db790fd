// Copyright 2025 go-highway Authors
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

package algo

import "github.com/ajroetker/hwystat/hwy"

// Function types for generic Transform operations.
type (
	// VecFunc64 is a lane-parallel operation on float64 vectors.
	VecFunc64 func(hwy.Vec[float64]) hwy.Vec[float64]

	// ScalarFunc64 is a scalar operation on a single float64.
	ScalarFunc64 func(float64) float64
)

// Transform64 applies an operation to each element of input, storing results in output.
//
// Inputs with at least one full vector go through simd via Apply. Shorter
// inputs use scalar for every element; the two functions may disagree in
// the last bits, so callers that need one path for all lengths should call
// Apply directly.
//
// Example usage:
//
//	Transform64(input, output,
//	    func(x hwy.Vec[float64]) hwy.Vec[float64] { return hwy.MulAdd(x, x, x) },
//	    func(x float64) float64 { return x*x + x },
//	)
func Transform64(input, output []float64, simd VecFunc64, scalar ScalarFunc64) {
	n := min(len(input), len(output))
	if n < hwy.MaxLanes[float64]() {
		for i := range n {
			output[i] = scalar(input[i])
		}
		return
	}
	Apply(input[:n], output[:n], simd)
}

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

// Package algo provides algorithm utilities for lane-parallel operations.
// This package corresponds to Google Highway's hwy/contrib/algo directory.
//
// # Transform API
//
// The Transform functions apply operations to entire slices in a zero-allocation,
// batched manner similar to C++ Highway's std::transform.
//
//   - Apply(in, out, fn): full vectors plus a masked tail, all through fn
//   - Transform64(input, output, simdFunc, scalarFunc): Apply for inputs of at
//     least one vector, scalarFunc per element otherwise
//
// # Scans
//
// DecayScan evaluates res ← decay·res + gain·x over a slice in vector-wide
// blocks. Exponential moving averages are the main caller.
//
// # Example Usage
//
//	import "github.com/ajroetker/hwystat/hwy/contrib/algo"
//
//	func Squares(input []float64) []float64 {
//	    output := make([]float64, len(input))
//	    algo.Transform64(input, output,
//	        func(x hwy.Vec[float64]) hwy.Vec[float64] { return hwy.Mul(x, x) },
//	        func(x float64) float64 { return x * x },
//	    )
//	    return output
//	}
package algo

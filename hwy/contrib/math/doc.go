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

// Package math provides lane-parallel transcendental functions for float64.
// This package corresponds to Google Highway's hwy/contrib/math directory.
//
// # Kernels
//
// Two kernels work directly on the IEEE-754 bit layout:
//   - Pow2Vec(x) - 2^x by splitting x into integer and fractional parts
//     from the exponent and fraction fields, with a rational minimax
//     approximation for the fraction
//   - Log2Vec(x) - log2(x) from the exponent field plus an odd polynomial
//     in s = (f-1)/(f+1)
//
// ExpVec and LogVec change base around them for use with algo.Apply.
// Pow2Scalar and Log2Scalar run the same kernels on a single value.
//
// # Slice functions
//
// Everything else is a change of base around the two kernels:
//   - Exp2(in, out), Exp(in, out), Pow(base, in, out)
//   - Log2(in, out), Log(in, out), Log10(in, out)
//
// Inputs shorter than one vector go through the standard library instead.
//
// # Example Usage
//
//	import "github.com/ajroetker/hwystat/hwy/contrib/math"
//
//	returns := make([]float64, len(logReturns))
//	math.Exp(logReturns, returns)
package math

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

// Package stats computes NaN-aware descriptive statistics over float64
// slices with the lane-parallel reductions in hwy/contrib/reduce.
//
// NaN elements never contribute to a sum, and the count of valid elements
// replaces the slice length in every mean. Pairwise statistics skip index i
// whenever x[i]*y[i] is NaN, for all of their co-sums at once. Inputs
// shorter than one vector use the scalar kernels in hwy/contrib/ref.
//
// Example:
//
//	s := stats.Describe(prices, false)
//	fmt.Println(s.Mean, s.Std, s.ArgMax)
package stats

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

// Package contrib holds the kernels and statistics built on package hwy.
// This package has been restructured to align with Google Highway's C++ organization.
//
// # Subpackages
//
//   - ieee754: bit-level classification of float64 values and lane NaN masks
//   - ref: scalar reference implementations of every kernel
//   - reduce: masked, NaN-aware sums over one or two series
//   - algo: Apply/Transform64 over slices and the blocked DecayScan
//   - math: 2^x and log2(x) kernels and their change-of-base relatives
//   - stats: mean, variance, moments, extrema, pairwise statistics and EMA
//   - workerpool: a reusable pool for describing many series at once
//
// Every kernel produces the same result, up to the order of floating-point
// additions, at any width accepted by hwy.ForceWidth. The ref package is
// the oracle the tests compare against.
//
// # Example
//
//	import "github.com/ajroetker/hwystat/hwy/contrib/stats"
//
//	sum := stats.Describe(series, false)
//	corr := stats.Corr(x, y)
package contrib

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

// Package ref is the scalar reference for every kernel in hwy/contrib.
//
// Each function is a plain per-element loop over the input with NaN
// checks on the value being accumulated. The lane-parallel kernels fall
// back to these loops for inputs shorter than one vector, and the tests
// compare the two paths against each other.
//
// The "Len" variants also return the valid length: the number of elements
// whose accumulated value was not NaN.
package ref

import "math"

// Sum returns the sum of the non-NaN elements of data.
func Sum(data []float64) float64 {
	var res float64
	for _, x := range data {
		if !math.IsNaN(x) {
			res += x
		}
	}
	return res
}

// SumLen returns the sum of the non-NaN elements of data and their count.
func SumLen(data []float64) (float64, int) {
	var res float64
	valid := len(data)
	for _, x := range data {
		if math.IsNaN(x) {
			valid--
			continue
		}
		res += x
	}
	return res, valid
}

// UnarySum returns the sum of f(x) over data, skipping NaN results.
func UnarySum(f func(float64) float64, data []float64) float64 {
	var res float64
	for _, x := range data {
		if tmp := f(x); !math.IsNaN(tmp) {
			res += tmp
		}
	}
	return res
}

// UnarySumLen is UnarySum plus the number of non-NaN results.
func UnarySumLen(f func(float64) float64, data []float64) (float64, int) {
	var res float64
	valid := len(data)
	for _, x := range data {
		tmp := f(x)
		if math.IsNaN(tmp) {
			valid--
			continue
		}
		res += tmp
	}
	return res, valid
}

// SubUnarySum returns the sum of f(x - sub) over data, skipping NaN results.
func SubUnarySum(f func(float64) float64, data []float64, sub float64) float64 {
	var res float64
	for _, x := range data {
		if tmp := f(x - sub); !math.IsNaN(tmp) {
			res += tmp
		}
	}
	return res
}

// SubUnarySumLen is SubUnarySum plus the number of non-NaN results.
func SubUnarySumLen(f func(float64) float64, data []float64, sub float64) (float64, int) {
	var res float64
	valid := len(data)
	for _, x := range data {
		tmp := f(x - sub)
		if math.IsNaN(tmp) {
			valid--
			continue
		}
		res += tmp
	}
	return res, valid
}

// BinarySum returns the sum of f(x[i], y[i]), skipping NaN results.
// Only the first min(len(x), len(y)) pairs are read.
func BinarySum(f func(x, y float64) float64, x, y []float64) float64 {
	n := min(len(x), len(y))
	var res float64
	for i := range n {
		if tmp := f(x[i], y[i]); !math.IsNaN(tmp) {
			res += tmp
		}
	}
	return res
}

// BinarySumLen is BinarySum plus the number of non-NaN results.
func BinarySumLen(f func(x, y float64) float64, x, y []float64) (float64, int) {
	n := min(len(x), len(y))
	var res float64
	valid := n
	for i := range n {
		tmp := f(x[i], y[i])
		if math.IsNaN(tmp) {
			valid--
			continue
		}
		res += tmp
	}
	return res, valid
}

// SubBinarySum returns the sum of f(x[i]-xSub, y[i]-ySub), skipping NaN
// results. Each term is added exactly once.
func SubBinarySum(f func(x, y float64) float64, x []float64, xSub float64, y []float64, ySub float64) float64 {
	n := min(len(x), len(y))
	var res float64
	for i := range n {
		if tmp := f(x[i]-xSub, y[i]-ySub); !math.IsNaN(tmp) {
			res += tmp
		}
	}
	return res
}

// SubBinarySumLen is SubBinarySum plus the number of non-NaN results.
func SubBinarySumLen(f func(x, y float64) float64, x []float64, xSub float64, y []float64, ySub float64) (float64, int) {
	n := min(len(x), len(y))
	var res float64
	valid := n
	for i := range n {
		tmp := f(x[i]-xSub, y[i]-ySub)
		if math.IsNaN(tmp) {
			valid--
			continue
		}
		res += tmp
	}
	return res, valid
}

// Mean returns the mean of the non-NaN elements of data.
// An empty or all-NaN input yields NaN (0/0).
func Mean(data []float64) float64 {
	sum, valid := SumLen(data)
	return sum / float64(valid)
}

// UnaryMean returns the mean of the non-NaN values of f(x).
func UnaryMean(f func(float64) float64, data []float64) float64 {
	sum, valid := UnarySumLen(f, data)
	return sum / float64(valid)
}

// SubUnaryMean returns the mean of the non-NaN values of f(x - sub).
func SubUnaryMean(f func(float64) float64, data []float64, sub float64) float64 {
	sum, valid := SubUnarySumLen(f, data, sub)
	return sum / float64(valid)
}

// BinaryMean returns the mean of the non-NaN values of f(x[i], y[i]).
func BinaryMean(f func(x, y float64) float64, x, y []float64) float64 {
	sum, valid := BinarySumLen(f, x, y)
	return sum / float64(valid)
}

// SubBinaryMean returns the mean of the non-NaN values of f(x[i]-xSub, y[i]-ySub).
func SubBinaryMean(f func(x, y float64) float64, x []float64, xSub float64, y []float64, ySub float64) float64 {
	sum, valid := SubBinarySumLen(f, x, xSub, y, ySub)
	return sum / float64(valid)
}

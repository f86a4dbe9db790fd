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

package stats

import (
	"math"

	"github.com/ajroetker/hwystat/hwy/contrib/reduce"
)

// Mean returns the mean of the non-NaN elements of data.
func Mean(data []float64) float64 {
	return reduce.Mean(data)
}

// Var returns (Σx² - (Σx)²/n) / (n - d) over the non-NaN elements, where
// d is 0 when bias is true and 1 otherwise.
func Var(data []float64, bias bool) float64 {
	sum, valid := reduce.SumLen(data)
	n := float64(valid)
	up := reduce.UnarySum(reduce.Square{}, data) - sum*sum/n
	if bias {
		return up / n
	}
	return up / (n - 1)
}

// Std returns the square root of Var.
func Std(data []float64, bias bool) float64 {
	return math.Sqrt(Var(data, bias))
}

// Skew returns Σ(x-μ)³ / sqrt((Σx² - nμ²)³ / n).
func Skew(data []float64) float64 {
	sum, valid := reduce.SumLen(data)
	n := float64(valid)
	avg := sum / n
	up := reduce.SubUnarySum(reduce.Cube{}, data, avg)
	down := reduce.UnarySum(reduce.Square{}, data) - avg*avg*n
	return up / math.Sqrt(down*down*down/n)
}

// Kurt returns n·Σ(x-μ)⁴ / (Σx² - nμ²)².
func Kurt(data []float64) float64 {
	sum, valid := reduce.SumLen(data)
	n := float64(valid)
	avg := sum / n
	up := reduce.SubUnarySum(reduce.Fourth{}, data, avg)
	down := reduce.UnarySum(reduce.Square{}, data) - avg*avg*n
	return n * up / (down * down)
}

// Dot returns the mean of x[i]*y[i] over the pairs whose product is not NaN.
func Dot(x, y []float64) float64 {
	return reduce.BinaryMean(reduce.Product{}, x, y)
}

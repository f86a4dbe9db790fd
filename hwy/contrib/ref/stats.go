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

package ref

import "math"

func square(x float64) float64 {
	return x * x
}

func cube(x float64) float64 {
	return x * x * x
}

func fourth(x float64) float64 {
	return square(square(x))
}

func product(x, y float64) float64 {
	return x * y
}

// Min returns the smallest element of data. NaN elements are ignored;
// an empty or all-NaN input yields +Inf.
func Min(data []float64) float64 {
	res := math.Inf(1)
	for _, x := range data {
		if res > x {
			res = x
		}
	}
	return res
}

// Max returns the largest element of data. NaN elements are ignored;
// an empty or all-NaN input yields -Inf.
func Max(data []float64) float64 {
	res := math.Inf(-1)
	for _, x := range data {
		if res < x {
			res = x
		}
	}
	return res
}

// IMin returns the index of the first occurrence of the smallest element,
// or -1 when no element is below +Inf (empty, all NaN, or all +Inf).
func IMin(data []float64) int {
	res := math.Inf(1)
	index := -1
	for i, x := range data {
		if res > x {
			res = x
			index = i
		}
	}
	return index
}

// IMax returns the index of the first occurrence of the largest element,
// or -1 when no element is above -Inf.
func IMax(data []float64) int {
	res := math.Inf(-1)
	index := -1
	for i, x := range data {
		if res < x {
			res = x
			index = i
		}
	}
	return index
}

// Var returns the variance of the non-NaN elements of data:
//
//	(Σx² - (Σx)²/n) / (n - d)
//
// where n is the valid length and d is 0 when bias is true, 1 otherwise.
func Var(data []float64, bias bool) float64 {
	sum, valid := SumLen(data)
	n := float64(valid)
	up := UnarySum(square, data) - sum*sum/n
	if bias {
		return up / n
	}
	return up / (n - 1)
}

// Std returns the square root of Var.
func Std(data []float64, bias bool) float64 {
	return math.Sqrt(Var(data, bias))
}

// Dot returns the mean of x[i]*y[i] over the pairs whose product is not NaN.
func Dot(x, y []float64) float64 {
	return BinaryMean(product, x, y)
}

// Covar returns the covariance of x and y. A pair is skipped when x[i]*y[i]
// is NaN; the skip applies to every co-sum.
func Covar(x, y []float64, bias bool) float64 {
	n := min(len(x), len(y))
	valid := n
	var xSum, ySum, mulSum float64
	for i := range n {
		mul := x[i] * y[i]
		if math.IsNaN(mul) {
			valid--
			continue
		}
		mulSum += mul
		xSum += x[i]
		ySum += y[i]
	}
	vl := float64(valid)
	res := mulSum - xSum*ySum/vl
	if bias {
		return res / vl
	}
	return res / (vl - 1)
}

// Corr returns the Pearson correlation of x and y under the same pair
// skipping rule as Covar.
func Corr(x, y []float64) float64 {
	n := min(len(x), len(y))
	valid := n
	var xSum, ySum, xSqSum, ySqSum, mulSum float64
	for i := range n {
		mul := x[i] * y[i]
		if math.IsNaN(mul) {
			valid--
			continue
		}
		mulSum += mul
		xSum += x[i]
		ySum += y[i]
		xSqSum += x[i] * x[i]
		ySqSum += y[i] * y[i]
	}
	vl := float64(valid)
	return (mulSum*vl - xSum*ySum) /
		math.Sqrt((xSqSum*vl-xSum*xSum)*(ySqSum*vl-ySum*ySum))
}

// Beta returns the regression slope of y on x under the same pair skipping
// rule as Covar.
func Beta(x, y []float64) float64 {
	n := min(len(x), len(y))
	valid := n
	var xSum, ySum, xSqSum, mulSum float64
	for i := range n {
		mul := x[i] * y[i]
		if math.IsNaN(mul) {
			valid--
			continue
		}
		mulSum += mul
		xSum += x[i]
		ySum += y[i]
		xSqSum += x[i] * x[i]
	}
	vl := float64(valid)
	return (mulSum*vl - xSum*ySum) / (xSqSum*vl - xSum*xSum)
}

// Skew returns Σ(x-μ)³ / sqrt((Σx² - nμ²)³ / n) over the non-NaN elements.
func Skew(data []float64) float64 {
	sum, valid := SumLen(data)
	n := float64(valid)
	avg := sum / n
	up := SubUnarySum(cube, data, avg)
	down := UnarySum(square, data) - avg*avg*n
	return up / math.Sqrt(cube(down)/n)
}

// Kurt returns n·Σ(x-μ)⁴ / (Σx² - nμ²)² over the non-NaN elements.
func Kurt(data []float64) float64 {
	sum, valid := SumLen(data)
	n := float64(valid)
	avg := sum / n
	up := SubUnarySum(fourth, data, avg)
	down := UnarySum(square, data) - avg*avg*n
	return n * up / (down * down)
}

// EMA returns the exponential moving average of data[n:k] seeded with the
// mean of data[:n], using the smoothing factor β = 2/(n+1):
//
//	res ← (1-β)·res + β·data[i]    for i in [n, k)
//
// k is clamped to len(data) and n to k. NaN elements after the seed window
// propagate.
func EMA(data []float64, n, k int) float64 {
	k = max(0, min(k, len(data)))
	n = max(0, min(n, k))
	beta := 2 / float64(n+1)
	decay := 1 - beta
	res := Mean(data[:n])
	for i := n; i < k; i++ {
		res = decay*res + beta*data[i]
	}
	return res
}

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

// Package reduce implements the NaN-aware lane-parallel reduction engine.
//
// Every reduction walks its input in groups of hwy.MaxLanes[float64]()
// elements. Each group is transformed by the pointwise op, its NaN lanes
// are found from the bit pattern, and only the remaining lanes are added
// to a vector accumulator. The remainder is loaded zero-filled under a
// tail mask and accumulated with the mask "active and not NaN". A single
// horizontal sum in fixed lane order produces the result, so identical
// inputs always give bit-identical outputs.
//
// Inputs shorter than one vector use the scalar loops in package ref.
// The "Len" variants also return the valid length, the number of
// accumulated values that were not NaN.
package reduce

import (
	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/hwy/contrib/ieee754"
	"github.com/ajroetker/hwystat/hwy/contrib/ref"
)

// Sum returns the sum of the non-NaN elements of data.
//
// Example:
//
//	data := []float64{1, math.NaN(), 3}
//	result := Sum(data)  // 4
func Sum(data []float64) float64 {
	sum, _ := unaryReduce(Identity{}, data, 0)
	return sum
}

// SumLen returns the sum of the non-NaN elements of data and their count.
func SumLen(data []float64) (float64, int) {
	return unaryReduce(Identity{}, data, 0)
}

// UnarySum returns the sum of f(x) over data, skipping NaN results.
func UnarySum[F Unary](f F, data []float64) float64 {
	sum, _ := unaryReduce(f, data, 0)
	return sum
}

// UnarySumLen is UnarySum plus the number of non-NaN results.
func UnarySumLen[F Unary](f F, data []float64) (float64, int) {
	return unaryReduce(f, data, 0)
}

// SubUnarySum returns the sum of f(x - sub) over data, skipping NaN results.
func SubUnarySum[F Unary](f F, data []float64, sub float64) float64 {
	sum, _ := unaryReduce(f, data, sub)
	return sum
}

// SubUnarySumLen is SubUnarySum plus the number of non-NaN results.
func SubUnarySumLen[F Unary](f F, data []float64, sub float64) (float64, int) {
	return unaryReduce(f, data, sub)
}

// BinarySum returns the sum of f(x[i], y[i]), skipping NaN results.
// Only the first min(len(x), len(y)) pairs are read.
func BinarySum[F Binary](f F, x, y []float64) float64 {
	sum, _ := binaryReduce(f, x, 0, y, 0)
	return sum
}

// BinarySumLen is BinarySum plus the number of non-NaN results.
func BinarySumLen[F Binary](f F, x, y []float64) (float64, int) {
	return binaryReduce(f, x, 0, y, 0)
}

// SubBinarySum returns the sum of f(x[i]-xSub, y[i]-ySub), skipping NaN
// results.
func SubBinarySum[F Binary](f F, x []float64, xSub float64, y []float64, ySub float64) float64 {
	sum, _ := binaryReduce(f, x, xSub, y, ySub)
	return sum
}

// SubBinarySumLen is SubBinarySum plus the number of non-NaN results.
func SubBinarySumLen[F Binary](f F, x []float64, xSub float64, y []float64, ySub float64) (float64, int) {
	return binaryReduce(f, x, xSub, y, ySub)
}

// Mean returns the mean of the non-NaN elements of data.
// An empty or all-NaN input yields NaN.
func Mean(data []float64) float64 {
	sum, valid := SumLen(data)
	return sum / float64(valid)
}

// UnaryMean returns the mean of the non-NaN values of f(x).
func UnaryMean[F Unary](f F, data []float64) float64 {
	sum, valid := UnarySumLen(f, data)
	return sum / float64(valid)
}

// SubUnaryMean returns the mean of the non-NaN values of f(x - sub).
func SubUnaryMean[F Unary](f F, data []float64, sub float64) float64 {
	sum, valid := SubUnarySumLen(f, data, sub)
	return sum / float64(valid)
}

// BinaryMean returns the mean of the non-NaN values of f(x[i], y[i]).
func BinaryMean[F Binary](f F, x, y []float64) float64 {
	sum, valid := BinarySumLen(f, x, y)
	return sum / float64(valid)
}

// SubBinaryMean returns the mean of the non-NaN values of f(x[i]-xSub, y[i]-ySub).
func SubBinaryMean[F Binary](f F, x []float64, xSub float64, y []float64, ySub float64) float64 {
	sum, valid := SubBinarySumLen(f, x, xSub, y, ySub)
	return sum / float64(valid)
}

// unaryReduce sums f(x - sub) over the non-NaN results. Subtracting zero
// leaves every input unchanged, so the plain variants pass sub = 0.
func unaryReduce[F Unary](f F, data []float64, sub float64) (float64, int) {
	n := len(data)
	lanes := hwy.MaxLanes[float64]()

	// For small slices, use scalar implementation
	if n < lanes {
		if sub == 0 {
			return ref.UnarySumLen(f.Apply, data)
		}
		return ref.SubUnarySumLen(f.Apply, data, sub)
	}

	acc := hwy.Zero[float64]()
	subVec := hwy.Set(sub)
	valid := n

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		v := f.ApplyVec(hwy.Sub(hwy.Load(data[i:]), subVec))
		nan := ieee754.NaNMask(v)
		acc = hwy.MaskAdd(hwy.MaskNot(nan), acc, v)
		valid -= nan.CountTrue()
	}

	// Handle tail with a zero-filled masked load
	if remaining := n - i; remaining > 0 {
		active := hwy.TailMask[float64](remaining)
		v := f.ApplyVec(hwy.Sub(hwy.MaskLoad(active, data[i:]), subVec))
		ok := ieee754.ValidMask(active, v)
		acc = hwy.MaskAdd(ok, acc, v)
		valid -= remaining - ok.CountTrue()
	}

	return hwy.ReduceSum(acc), valid
}

// binaryReduce sums f(x[i]-xSub, y[i]-ySub) over the non-NaN results.
func binaryReduce[F Binary](f F, x []float64, xSub float64, y []float64, ySub float64) (float64, int) {
	n := min(len(x), len(y))
	lanes := hwy.MaxLanes[float64]()

	if n < lanes {
		if xSub == 0 && ySub == 0 {
			return ref.BinarySumLen(f.Apply, x[:n], y[:n])
		}
		return ref.SubBinarySumLen(f.Apply, x[:n], xSub, y[:n], ySub)
	}

	acc := hwy.Zero[float64]()
	xSubVec, ySubVec := hwy.Set(xSub), hwy.Set(ySub)
	valid := n

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vx := hwy.Sub(hwy.Load(x[i:]), xSubVec)
		vy := hwy.Sub(hwy.Load(y[i:]), ySubVec)
		v := f.ApplyVec(vx, vy)
		nan := ieee754.NaNMask(v)
		acc = hwy.MaskAdd(hwy.MaskNot(nan), acc, v)
		valid -= nan.CountTrue()
	}

	if remaining := n - i; remaining > 0 {
		active := hwy.TailMask[float64](remaining)
		vx := hwy.Sub(hwy.MaskLoad(active, x[i:n]), xSubVec)
		vy := hwy.Sub(hwy.MaskLoad(active, y[i:n]), ySubVec)
		v := f.ApplyVec(vx, vy)
		ok := ieee754.ValidMask(active, v)
		acc = hwy.MaskAdd(ok, acc, v)
		valid -= remaining - ok.CountTrue()
	}

	return hwy.ReduceSum(acc), valid
}

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

	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/hwy/contrib/ieee754"
	"github.com/ajroetker/hwystat/hwy/contrib/ref"
)

// coSums holds the sums shared by Covar, Corr and Beta.
type coSums struct {
	x, y, xx, yy, xy float64
	valid            int
}

// pairSums accumulates every co-sum in one pass. A pair is skipped in all
// sums at once when x[i]*y[i] is NaN. Requires at least one full vector.
func pairSums(x, y []float64) coSums {
	n := min(len(x), len(y))
	lanes := hwy.MaxLanes[float64]()

	sx, sy := hwy.Zero[float64](), hwy.Zero[float64]()
	sxx, syy, sxy := hwy.Zero[float64](), hwy.Zero[float64](), hwy.Zero[float64]()
	valid := n

	accumulate := func(ok hwy.Mask[float64], vx, vy, mul hwy.Vec[float64]) {
		sxy = hwy.MaskAdd(ok, sxy, mul)
		sx = hwy.MaskAdd(ok, sx, vx)
		sy = hwy.MaskAdd(ok, sy, vy)
		sxx = hwy.MaskAdd(ok, sxx, hwy.Mul(vx, vx))
		syy = hwy.MaskAdd(ok, syy, hwy.Mul(vy, vy))
	}

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vx, vy := hwy.Load(x[i:]), hwy.Load(y[i:])
		mul := hwy.Mul(vx, vy)
		nan := ieee754.NaNMask(mul)
		accumulate(hwy.MaskNot(nan), vx, vy, mul)
		valid -= nan.CountTrue()
	}

	if remaining := n - i; remaining > 0 {
		active := hwy.TailMask[float64](remaining)
		vx := hwy.MaskLoad(active, x[i:n])
		vy := hwy.MaskLoad(active, y[i:n])
		mul := hwy.Mul(vx, vy)
		ok := ieee754.ValidMask(active, mul)
		accumulate(ok, vx, vy, mul)
		valid -= remaining - ok.CountTrue()
	}

	return coSums{
		x:     hwy.ReduceSum(sx),
		y:     hwy.ReduceSum(sy),
		xx:    hwy.ReduceSum(sxx),
		yy:    hwy.ReduceSum(syy),
		xy:    hwy.ReduceSum(sxy),
		valid: valid,
	}
}

// Covar returns the covariance of x and y over the pairs whose product is
// not NaN. Only the first min(len(x), len(y)) pairs are used.
func Covar(x, y []float64, bias bool) float64 {
	if min(len(x), len(y)) < hwy.MaxLanes[float64]() {
		return ref.Covar(x, y, bias)
	}
	s := pairSums(x, y)
	vl := float64(s.valid)
	res := s.xy - s.x*s.y/vl
	if bias {
		return res / vl
	}
	return res / (vl - 1)
}

// Corr returns the Pearson correlation of x and y.
func Corr(x, y []float64) float64 {
	if min(len(x), len(y)) < hwy.MaxLanes[float64]() {
		return ref.Corr(x, y)
	}
	s := pairSums(x, y)
	vl := float64(s.valid)
	return (s.xy*vl - s.x*s.y) /
		math.Sqrt((s.xx*vl-s.x*s.x)*(s.yy*vl-s.y*s.y))
}

// Beta returns the least-squares slope of y regressed on x.
func Beta(x, y []float64) float64 {
	if min(len(x), len(y)) < hwy.MaxLanes[float64]() {
		return ref.Beta(x, y)
	}
	s := pairSums(x, y)
	vl := float64(s.valid)
	return (s.xy*vl - s.x*s.y) / (s.xx*vl - s.x*s.x)
}

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
	"github.com/ajroetker/hwystat/hwy/contrib/ref"
)

// Min returns the smallest non-NaN element of data, or +Inf if there is none.
func Min(data []float64) float64 {
	n := len(data)
	lanes := hwy.MaxLanes[float64]()
	if n < lanes {
		return ref.Min(data)
	}

	// hwy.Min returns its second operand when the first is NaN.
	inf := hwy.Set(math.Inf(1))
	acc := inf
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		acc = hwy.Min(hwy.Load(data[i:]), acc)
	}
	if remaining := n - i; remaining > 0 {
		active := hwy.TailMask[float64](remaining)
		acc = hwy.Min(hwy.IfThenElse(active, hwy.Load(data[i:]), inf), acc)
	}
	return hwy.ReduceMin(acc)
}

// Max returns the largest non-NaN element of data, or -Inf if there is none.
func Max(data []float64) float64 {
	n := len(data)
	lanes := hwy.MaxLanes[float64]()
	if n < lanes {
		return ref.Max(data)
	}

	negInf := hwy.Set(math.Inf(-1))
	acc := negInf
	var i int
	for i = 0; i+lanes <= n; i += lanes {
		acc = hwy.Max(hwy.Load(data[i:]), acc)
	}
	if remaining := n - i; remaining > 0 {
		active := hwy.TailMask[float64](remaining)
		acc = hwy.Max(hwy.IfThenElse(active, hwy.Load(data[i:]), negInf), acc)
	}
	return hwy.ReduceMax(acc)
}

// IMin returns the index of the first occurrence of the smallest element of
// data, or -1 when no element is below +Inf. NaN elements are ignored.
func IMin(data []float64) int {
	if len(data) < hwy.MaxLanes[float64]() {
		return ref.IMin(data)
	}
	return argMin(data, false)
}

// IMax returns the index of the first occurrence of the largest element of
// data, or -1 when no element is above -Inf. NaN elements are ignored.
func IMax(data []float64) int {
	if len(data) < hwy.MaxLanes[float64]() {
		return ref.IMax(data)
	}
	return argMin(data, true)
}

// argMin tracks the smallest value and its index per lane, over -x when
// negate is set. The strict compare is false for NaN and keeps the earliest
// index among equal values in a lane; the final scan picks the lowest index
// across lanes.
func argMin(data []float64, negate bool) int {
	n := len(data)
	lanes := hwy.MaxLanes[float64]()

	inf := hwy.Set(math.Inf(1))
	best := inf
	bestIdx := hwy.Set[int64](-1)
	idx := hwy.Iota[int64]()
	step := hwy.Set(int64(lanes))

	update := func(v hwy.Vec[float64]) {
		if negate {
			v = hwy.Neg(v)
		}
		m := hwy.LessThan(v, best)
		best = hwy.IfThenElse(m, v, best)
		bestIdx = hwy.IfThenElse(hwy.RebindMask[int64](m), idx, bestIdx)
		idx = hwy.Add(idx, step)
	}

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		update(hwy.Load(data[i:]))
	}
	if remaining := n - i; remaining > 0 {
		// Negating NaN keeps it NaN, so the padding never wins.
		update(hwy.IfThenElse(hwy.TailMask[float64](remaining), hwy.Load(data[i:]), hwy.Set(math.NaN())))
	}

	index := -1
	res := math.Inf(1)
	for j := range lanes {
		id := int(hwy.GetLane(bestIdx, j))
		if id < 0 {
			continue
		}
		v := hwy.GetLane(best, j)
		if v < res || (v == res && id < index) {
			res, index = v, id
		}
	}
	return index
}

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

package algo

import (
	"math"

	"github.com/ajroetker/hwystat/hwy"
)

// DecayScanMinBlocks is the number of full vectors an input needs before
// DecayScan uses the blocked path.
const DecayScanMinBlocks = 4

// smallestNormal is the least positive normal float64.
const smallestNormal = 0x1p-1022

// maxLanes bounds the lane count of any supported width.
const maxLanes = 16

// DecayScan evaluates the linear recurrence
//
//	res ← decay·res + gain·data[i]    for i in [0, len(data))
//
// starting from res = seed, and returns the final res.
//
// The blocked path unrolls the recurrence over groups of W lanes. Lane j
// of a block weighs its element by gain·decay^(W-1-j), which is the factor
// it accumulates before the end of the block. The carry vector starts as
// seed/W in every lane and is scaled by decay^W before each block is added,
// so after the last block its horizontal sum is the recurrence value at the
// block boundary. The remainder block is zero-padded, which scales every
// term by decay^(W-rem) too many; dividing by that factor gives the result.
//
// Inputs shorter than DecayScanMinBlocks vectors, and decays whose W-th
// power is zero or subnormal, use the sequential loop. NaN elements propagate.
//
// Example:
//
//	// EMA of prices[n:] seeded with the mean of prices[:n]
//	beta := 2 / float64(n+1)
//	ema := DecayScan(prices[n:], mean, 1-beta, beta)
func DecayScan(data []float64, seed, decay, gain float64) float64 {
	n := len(data)
	lanes := hwy.MaxLanes[float64]()
	if n < DecayScanMinBlocks*lanes {
		return decayScanSeq(data, seed, decay, gain)
	}

	// powers[j] = decay^j for j in [0, lanes]
	var powers [maxLanes + 1]float64
	p := 1.0
	for j := 0; j <= lanes; j++ {
		powers[j] = p
		p *= decay
	}
	if math.Abs(powers[lanes]) < smallestNormal {
		return decayScanSeq(data, seed, decay, gain)
	}

	var weights [maxLanes]float64
	for j := range lanes {
		weights[j] = gain * powers[lanes-1-j]
	}
	w := hwy.Load(weights[:lanes])
	blockDecay := hwy.Set(powers[lanes])
	carry := hwy.Set(seed / float64(lanes))

	i := 0
	for ; i+lanes <= n; i += lanes {
		carry = hwy.MulAdd(carry, blockDecay, hwy.Mul(w, hwy.Load(data[i:])))
	}

	// The tail block always runs; with no remainder it adds zeros and the
	// division below undoes the extra decay^W.
	remaining := n - i
	tail := hwy.MaskLoad(hwy.TailMask[float64](remaining), data[i:])
	carry = hwy.MulAdd(carry, blockDecay, hwy.Mul(w, tail))

	return hwy.ReduceSum(carry) / powers[lanes-remaining]
}

func decayScanSeq(data []float64, seed, decay, gain float64) float64 {
	res := seed
	for _, x := range data {
		res = decay*res + gain*x
	}
	return res
}

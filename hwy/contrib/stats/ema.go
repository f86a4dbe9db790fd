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
	"github.com/ajroetker/hwystat/hwy/contrib/algo"
	"github.com/ajroetker/hwystat/hwy/contrib/reduce"
)

// EMA returns the exponential moving average of data[n:k], seeded with the
// mean of data[:n] and smoothed with β = 2/(n+1):
//
//	res ← (1-β)·res + β·data[i]    for i in [n, k)
//
// k is clamped to len(data) and n to k. NaN in the seed window is skipped
// by the mean; NaN after it propagates.
func EMA(data []float64, n, k int) float64 {
	k = max(0, min(k, len(data)))
	n = max(0, min(n, k))
	beta := 2 / float64(n+1)
	seed := reduce.Mean(data[:n])
	return algo.DecayScan(data[n:k], seed, 1-beta, beta)
}

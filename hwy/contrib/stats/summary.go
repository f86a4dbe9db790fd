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
	"github.com/ajroetker/hwystat/hwy/contrib/reduce"
	"github.com/ajroetker/hwystat/hwy/contrib/workerpool"
)

// Summary describes a single series.
type Summary struct {
	Count  int     `json:"count"`
	Valid  int     `json:"valid"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	ArgMin int     `json:"argmin"`
	ArgMax int     `json:"argmax"`
	Skew   float64 `json:"skew"`
	Kurt   float64 `json:"kurt"`
}

// Describe computes every single-series statistic of data. bias selects
// the population (true) or sample (false) variance.
func Describe(data []float64, bias bool) Summary {
	sum, valid := reduce.SumLen(data)
	return Summary{
		Count:  len(data),
		Valid:  valid,
		Sum:    sum,
		Mean:   sum / float64(valid),
		Var:    Var(data, bias),
		Std:    Std(data, bias),
		Min:    Min(data),
		Max:    Max(data),
		ArgMin: IMin(data),
		ArgMax: IMax(data),
		Skew:   Skew(data),
		Kurt:   Kurt(data),
	}
}

// DescribeAll describes every series on pool. Results are in input order
// and equal to calling Describe on each series.
func DescribeAll(pool *workerpool.Pool, series [][]float64, bias bool) []Summary {
	return workerpool.Map(pool, series, func(data []float64) Summary {
		return Describe(data, bias)
	})
}

// PairSummary describes the relationship between two series.
type PairSummary struct {
	Count int     `json:"count"`
	Covar float64 `json:"covar"`
	Corr  float64 `json:"corr"`
	Beta  float64 `json:"beta"`
	Dot   float64 `json:"dot"`
}

// Pair computes the pairwise statistics of x and y over their common prefix.
func Pair(x, y []float64, bias bool) PairSummary {
	return PairSummary{
		Count: min(len(x), len(y)),
		Covar: Covar(x, y, bias),
		Corr:  Corr(x, y),
		Beta:  Beta(x, y),
		Dot:   Dot(x, y),
	}
}

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

package math

import (
	stdmath "math"

	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/hwy/contrib/algo"
)

// The slice functions below write f(in[i]) to out[i] for the first
// min(len(in), len(out)) elements. Inputs shorter than one vector use the
// standard library, so short and long inputs agree only to about 1e-13
// relative.

// Exp2 computes 2^x for each element.
func Exp2(in, out []float64) {
	algo.Transform64(in, out, Pow2Vec, stdmath.Exp2)
}

// Exp computes e^x for each element as 2^(x·log2 e).
func Exp(in, out []float64) {
	algo.Transform64(in, out, ExpVec, stdmath.Exp)
}

// Pow computes base^x for each element as 2^(x·log2 base).
//
// base must be positive and finite; other bases give NaN on the vector
// path.
func Pow(base float64, in, out []float64) {
	scale := hwy.Set(stdmath.Log2(base))
	algo.Transform64(in, out, func(x hwy.Vec[float64]) hwy.Vec[float64] {
		return Pow2Vec(hwy.Mul(x, scale))
	}, func(x float64) float64 {
		return stdmath.Pow(base, x)
	})
}

// Log2 computes log2(x) for each element.
func Log2(in, out []float64) {
	algo.Transform64(in, out, Log2Vec, stdmath.Log2)
}

// Log computes the natural logarithm of each element as log2(x)/log2(e).
func Log(in, out []float64) {
	algo.Transform64(in, out, LogVec, stdmath.Log)
}

// Log10 computes log10(x) for each element as log2(x)/log2(10).
func Log10(in, out []float64) {
	scale := hwy.Set(log210)
	algo.Transform64(in, out, func(x hwy.Vec[float64]) hwy.Vec[float64] {
		return hwy.Div(Log2Vec(x), scale)
	}, stdmath.Log10)
}

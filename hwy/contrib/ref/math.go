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

// Exp2 sets out[i] = 2^in[i].
func Exp2(in, out []float64) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = math.Exp2(in[i])
	}
}

// Exp sets out[i] = e^in[i].
func Exp(in, out []float64) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = math.Exp(in[i])
	}
}

// Pow sets out[i] = base^in[i].
func Pow(base float64, in, out []float64) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = math.Pow(base, in[i])
	}
}

// Log2 sets out[i] = log2(in[i]).
func Log2(in, out []float64) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = math.Log2(in[i])
	}
}

// Log sets out[i] = ln(in[i]).
func Log(in, out []float64) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = math.Log(in[i])
	}
}

// Log10 sets out[i] = log10(in[i]).
func Log10(in, out []float64) {
	n := min(len(in), len(out))
	for i := range n {
		out[i] = math.Log10(in[i])
	}
}

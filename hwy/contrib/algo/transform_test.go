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
	"testing"

	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/internal/testutil"
)

const benchSize = 1024

func square(x hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Mul(x, x)
}

func TestApply(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		for _, n := range testutil.Lengths {
			if n > 1000 {
				continue
			}
			in := testutil.DeterministicUniform(int64(n), -5, 5, n)
			out := make([]float64, n)
			Apply(in, out, square)
			for i := range in {
				if want := in[i] * in[i]; out[i] != want {
					t.Fatalf("n=%d Apply[%d]: got %v, want %v", n, i, out[i], want)
				}
			}
		}
	})
}

func TestApplyLeavesOutputTail(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		in := []float64{1, 2, 3}
		out := []float64{0, 0, 0, -7, -7}
		Apply(in, out, square)
		want := []float64{1, 4, 9, -7, -7}
		for i := range want {
			if out[i] != want[i] {
				t.Errorf("out[%d]: got %v, want %v", i, out[i], want[i])
			}
		}
	})
}

func TestTransform64(t *testing.T) {
	scalarCalls := 0
	scalar := func(x float64) float64 {
		scalarCalls++
		return x * x
	}

	tests := []struct {
		name       string
		n          int
		wantScalar bool
	}{
		{"shorter than one vector", 3, true},
		{"exactly one vector", 8, false},
		{"with tail", 21, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer hwy.ForceWidth(64)()
			scalarCalls = 0
			in := testutil.DeterministicUniform(7, -3, 3, tt.n)
			out := make([]float64, tt.n)
			Transform64(in, out, square, scalar)
			if got := scalarCalls > 0; got != tt.wantScalar {
				t.Errorf("scalar path used: got %v, want %v", got, tt.wantScalar)
			}
			for i := range in {
				if want := in[i] * in[i]; out[i] != want {
					t.Errorf("out[%d]: got %v, want %v", i, out[i], want)
				}
			}
		})
	}
}

func TestTransform64NaNPropagates(t *testing.T) {
	in := []float64{1, math.NaN(), 3, 4, 5, 6, 7, 8, 9, math.NaN()}
	out := make([]float64, len(in))
	Transform64(in, out, square, func(x float64) float64 { return x * x })
	if !math.IsNaN(out[1]) || !math.IsNaN(out[9]) {
		t.Errorf("NaN lanes should stay NaN: %v", out)
	}
	if out[2] != 9 {
		t.Errorf("out[2]: got %v, want 9", out[2])
	}
}

func BenchmarkApply(b *testing.B) {
	in := testutil.DeterministicUniform(1, -1, 1, benchSize)
	out := make([]float64, benchSize)
	for b.Loop() {
		Apply(in, out, square)
	}
}

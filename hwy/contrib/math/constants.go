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

import stdmath "math"

// Minimax coefficients for R(r) = Σ c[i]·r^(2i), with 2^r ≈ (R+r)/(R-r)
// on r ∈ [0, 1). Stored as bit patterns so the table is bit-exact.
var pow2Coeffs = [7]float64{
	stdmath.Float64frombits(0x40071547652b82fe),
	stdmath.Float64frombits(0x3fbd9303fea2f72e),
	stdmath.Float64frombits(0xbf4e50096ddced00),
	stdmath.Float64frombits(0x3ee63144f2a26823),
	stdmath.Float64frombits(0xbe810f4ee1b45d09),
	stdmath.Float64frombits(0x3e1a79b6ef2e5c08),
	stdmath.Float64frombits(0xbdb3c3b324a10f23),
}

// Minimax coefficients for log2(f) ≈ Σ a[i]·s^(2i+1), s = (f-1)/(f+1),
// f ∈ [1, 2).
var log2Coeffs = [7]float64{
	stdmath.Float64frombits(0x40071547652bc40c),
	stdmath.Float64frombits(0x3feec709d8c635d6),
	stdmath.Float64frombits(0x3fe2776e3a8c7fdf),
	stdmath.Float64frombits(0x3fda60ab57139605),
	stdmath.Float64frombits(0x3fd49892aaf11053),
	stdmath.Float64frombits(0x3fcf99fd730a2573),
	stdmath.Float64frombits(0x3fd4360e9afd45df),
}

// Change-of-base constants.
var (
	log2E  = stdmath.Float64frombits(0x3ff71547652b82fe) // log2(e)
	log210 = stdmath.Float64frombits(0x400a934f0979a371) // log2(10)
)

const (
	// pow2OverflowExp is the unbiased exponent of the smallest |x| for
	// which 2^x leaves the float64 range (|x| ≥ 1024).
	pow2OverflowExp = 10

	// tinyExpMask selects the exponent bits above the lowest one.
	tinyExpMask uint64 = 0x7fe0000000000000

	// magnitudeFracMask keeps the sign and fraction bits.
	magnitudeFracMask uint64 = 0x800fffffffffffff
)

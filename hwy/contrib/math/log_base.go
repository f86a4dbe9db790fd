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
	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/hwy/contrib/ieee754"
)

// Log2Vec computes log2(x) for each lane.
//
// Algorithm: split x = 2^k · f with f ∈ [1,2) from the exponent and
// fraction fields, then log2(x) = k + R(s) with s = (f-1)/(f+1) and R an
// odd polynomial in s.
//
// Special cases:
//
//	Log2Vec(±0) = -Inf
//	Log2Vec(x) = -Inf for positive subnormal x
//	Log2Vec(x) = NaN for x < 0, including -Inf and negative subnormals
//	Log2Vec(+Inf) = +Inf
//	Log2Vec(NaN) = NaN (bits 0x7ff8000000000001)
//
// Accuracy: within 1e-11 absolute for normal inputs.
func Log2Vec(v hwy.Vec[float64]) hwy.Vec[float64] {
	bits := hwy.BitCastF64ToU64(v)
	expMask := hwy.Set(ieee754.ExponentMask)
	one := hwy.Set(1.0)

	// The sign bit lands above the exponent, so negative lanes get k > 1024
	// here; they are replaced below.
	biased := hwy.ShiftRight(bits, ieee754.FractionBits)
	allOnes := hwy.Equal(biased, hwy.Set[uint64](ieee754.MaxExponent))
	kept := hwy.And(bits, hwy.Set(magnitudeFracMask))
	posInf := hwy.MaskAnd(allOnes, hwy.TestBitsNone(kept, hwy.Set(^uint64(0))))
	k := hwy.ConvertToFloat64(hwy.Sub(hwy.BitCastU64ToI64(biased), hwy.Set[int64](ieee754.Bias)))

	f := hwy.BitCastU64ToF64(hwy.Or(kept, hwy.Set(ieee754.OneBits)))
	s := hwy.Div(hwy.Sub(f, one), hwy.Add(f, one))
	s2 := hwy.Mul(s, s)
	sum := hwy.Mul(s, hwy.Set(log2Coeffs[0]))
	for i := 1; i < len(log2Coeffs); i++ {
		s = hwy.Mul(s, s2)
		sum = hwy.MulAdd(hwy.Set(log2Coeffs[i]), s, sum)
	}
	out := hwy.Add(sum, k)

	tiny := hwy.TestBitsNone(bits, expMask)
	neg := hwy.TestBits(bits, hwy.Set(ieee754.SignMask))
	nonZero := hwy.TestBits(bits, hwy.Set(^ieee754.SignMask))
	invalid := hwy.MaskOr(hwy.MaskAnd(neg, nonZero), allOnes)

	out = hwy.IfThenElse(hwy.RebindMask[float64](tiny), hwy.Set(ieee754.FromBits(ieee754.NegInfBits)), out)
	out = hwy.IfThenElse(hwy.RebindMask[float64](invalid), hwy.Set(ieee754.FromBits(ieee754.QuietNaNBits)), out)
	out = hwy.IfThenElse(hwy.RebindMask[float64](posInf), hwy.Set(ieee754.FromBits(ieee754.PosInfBits)), out)
	return out
}

// Log2Scalar computes log2(x) with the same kernel as Log2Vec.
func Log2Scalar(x float64) float64 {
	return hwy.GetLane(Log2Vec(hwy.Set(x)), 0)
}

// LogVec computes the natural logarithm of each lane as Log2Vec(x)/log2 e.
func LogVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Div(Log2Vec(v), hwy.Set(log2E))
}

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

// Pow2Vec computes 2^x for each lane.
//
// Algorithm:
//  1. Split |x| into an integer part k and a fraction r ∈ [0,1) directly
//     from the bits: shift the fraction field left by the unbiased
//     exponent, so the bits that cross into the exponent field are k and
//     the bits left behind are r.
//  2. For negative x with r ≠ 0, evaluate 2^(1-r) instead and take one
//     more off the exponent, so the polynomial only sees [0, 1).
//  3. 2^r ≈ (R+r)/(R-r) with R(r) = Σ c[i]·r^(2i).
//  4. Add k to the exponent field (subtract it for negative x).
//
// Special cases:
//
//	Pow2Vec(+Inf) = +Inf
//	Pow2Vec(-Inf) = 0
//	Pow2Vec(NaN) = NaN (bits 0x7ff8000000000001)
//	Pow2Vec(x) = +Inf for x ≥ 1024
//	Pow2Vec(x) = 0 when the result would be subnormal or smaller
//
// Integer inputs are exact. Other inputs are usually within 1 ulp; the
// rational form (R+r)/(R-r) puts a small fraction of them at 2 ulp.
func Pow2Vec(v hwy.Vec[float64]) hwy.Vec[float64] {
	bits := hwy.BitCastF64ToU64(v)
	signMask := hwy.Set(ieee754.SignMask)
	expMask := hwy.Set(ieee754.ExponentMask)
	fracMask := hwy.Set(ieee754.FractionMask)
	one := hwy.Set(1.0)
	zero := hwy.Zero[float64]()

	neg := hwy.TestBits(bits, signMask)
	special := hwy.Equal(hwy.And(bits, expMask), expMask)

	// Unbiased exponent of |x| ≥ 1; zero for |x| < 1.
	e := hwy.ShiftRight(hwy.And(bits, expMask), ieee754.FractionBits)
	large := hwy.GreaterEqual(e, hwy.Set[uint64](ieee754.Bias))
	e = hwy.IfThenElseZero(large, hwy.Sub(e, hwy.Set[uint64](ieee754.Bias)))
	overflow := hwy.GreaterEqual(e, hwy.Set[uint64](pow2OverflowExp))

	mag := hwy.AndNot(signMask, bits)
	mag = hwy.IfThenElse(large, hwy.And(mag, fracMask), mag)
	isNaN := hwy.MaskAnd(special, hwy.TestBits(mag, fracMask))

	shifted := hwy.ShiftLeftVar(mag, e)
	intBits := hwy.IfThenElseZero(large, hwy.And(shifted, expMask))
	rBits := hwy.IfThenElse(large,
		hwy.Or(hwy.And(shifted, fracMask), hwy.Set(ieee754.OneBits)),
		shifted)

	largeF := hwy.RebindMask[float64](large)
	negF := hwy.RebindMask[float64](neg)

	r := hwy.BitCastU64ToF64(rBits)
	r = hwy.IfThenElse(largeF, hwy.Sub(r, one), r)
	flipF := hwy.MaskAnd(negF, hwy.NotEqual(r, zero))
	r = hwy.IfThenElse(flipF, hwy.Sub(one, r), r)

	r2 := hwy.Mul(r, r)
	sum := hwy.MulAdd(r2, hwy.Set(pow2Coeffs[1]), hwy.Set(pow2Coeffs[0]))
	p := r2
	for i := 2; i < len(pow2Coeffs); i++ {
		p = hwy.Mul(p, r2)
		sum = hwy.MulAdd(p, hwy.Set(pow2Coeffs[i]), sum)
	}
	res := hwy.Div(hwy.Add(sum, r), hwy.Sub(sum, r))

	// Patch the exponent field by k.
	resBits := hwy.BitCastF64ToU64(res)
	k := hwy.Add(intBits, hwy.ShiftLeftVar(hwy.Set(ieee754.ExponentOne), e))
	resBits = hwy.IfThenElse(hwy.MaskAndNot(large, neg), hwy.Add(resBits, k), resBits)
	largeNeg := hwy.MaskAnd(large, neg)
	resBits = hwy.IfThenElse(largeNeg, hwy.Sub(resBits, k), resBits)

	flip := hwy.RebindMask[uint64](flipF)
	tinyExp := hwy.Set(tinyExpMask)
	underflow := hwy.MaskOr(
		hwy.MaskAnd(hwy.MaskAnd(large, flip), hwy.TestBitsNone(resBits, tinyExp)),
		hwy.MaskAnd(hwy.MaskAndNot(largeNeg, flip), hwy.TestBitsNone(resBits, expMask)),
	)
	underflow = hwy.MaskOr(underflow, hwy.MaskAnd(overflow, neg))
	resBits = hwy.IfThenElse(flip, hwy.Sub(resBits, hwy.Set(ieee754.ExponentOne)), resBits)

	out := hwy.BitCastU64ToF64(resBits)
	out = hwy.IfThenElse(hwy.RebindMask[float64](overflow), hwy.Set(ieee754.FromBits(ieee754.PosInfBits)), out)
	out = hwy.IfThenElse(hwy.RebindMask[float64](underflow), zero, out)
	out = hwy.IfThenElse(hwy.RebindMask[float64](isNaN), hwy.Set(ieee754.FromBits(ieee754.QuietNaNBits)), out)
	return out
}

// Pow2Scalar computes 2^x with the same kernel as Pow2Vec.
func Pow2Scalar(x float64) float64 {
	return hwy.GetLane(Pow2Vec(hwy.Set(x)), 0)
}

// ExpVec computes e^x for each lane as Pow2Vec(x·log2 e).
func ExpVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return Pow2Vec(hwy.Mul(v, hwy.Set(log2E)))
}

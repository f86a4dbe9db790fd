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

package ieee754

import "github.com/ajroetker/hwystat/hwy"

// Class is the IEEE-754 category of a float64.
type Class int

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinite
	NaN
)

// String returns the lower-case name of the class.
func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	default:
		return "unknown"
	}
}

// Classify returns the category of x from its exponent and fraction fields.
func Classify(x float64) Class {
	b := Bits(x)
	exp, frac := Exponent(b), Fraction(b)
	switch {
	case exp == MaxExponent && frac != 0:
		return NaN
	case exp == MaxExponent:
		return Infinite
	case exp == 0 && frac == 0:
		return Zero
	case exp == 0:
		return Subnormal
	default:
		return Normal
	}
}

// IsNaN reports whether x is a NaN: exponent all ones and fraction non-zero.
func IsNaN(x float64) bool {
	b := Bits(x)
	return b&ExponentMask == ExponentMask && b&FractionMask != 0
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func IsInf(x float64, sign int) bool {
	b := Bits(x)
	switch {
	case sign > 0:
		return b == PosInfBits
	case sign < 0:
		return b == NegInfBits
	default:
		return b&^SignMask == PosInfBits
	}
}

// IsZero reports whether x is +0 or -0.
func IsZero(x float64) bool {
	return Bits(x)&^SignMask == 0
}

// IsSubnormal reports whether x is a non-zero value with a zero exponent field.
func IsSubnormal(x float64) bool {
	return Classify(x) == Subnormal
}

// SignBit reports whether the sign bit of x is set, including for -0 and NaN.
func SignBit(x float64) bool {
	return Sign(Bits(x)) == 1
}

// NaNMask returns the lanes of v holding a NaN, computed from the bit
// pattern rather than a self-comparison.
func NaNMask(v hwy.Vec[float64]) hwy.Mask[float64] {
	b := hwy.BitCastF64ToU64(v)
	expMask := hwy.Set(ExponentMask)
	allOnes := hwy.Equal(hwy.And(b, expMask), expMask)
	hasFrac := hwy.TestBits(b, hwy.Set(FractionMask))
	return hwy.RebindMask[float64](hwy.MaskAnd(allOnes, hasFrac))
}

// ValidMask returns the lanes of v selected by active that do not hold a NaN.
func ValidMask(active hwy.Mask[float64], v hwy.Vec[float64]) hwy.Mask[float64] {
	return hwy.MaskAndNot(active, NaNMask(v))
}

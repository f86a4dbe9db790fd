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

// Package ieee754 isolates every reinterpretation of a float64 as its
// IEEE-754 binary64 bit pattern: field masks, field accessors, the special
// value classifier and its lane-parallel form.
//
// Layout of a binary64 value:
//
//	bit 63      sign
//	bits 52..62 biased exponent (bias 1023)
//	bits 0..51  fraction
package ieee754

import "math"

const (
	// SignMask selects the sign bit.
	SignMask uint64 = 0x8000000000000000

	// ExponentMask selects the 11 exponent bits.
	ExponentMask uint64 = 0x7ff0000000000000

	// FractionMask selects the 52 fraction bits.
	FractionMask uint64 = 0x000fffffffffffff

	// FractionBits is the width of the fraction field.
	FractionBits = 52

	// Bias is the exponent bias.
	Bias = 1023

	// MaxExponent is the biased exponent of infinities and NaNs.
	MaxExponent = 0x7ff

	// ExponentOne is the exponent field increment: adding it to the bits of
	// a normal value doubles it.
	ExponentOne uint64 = 0x0010000000000000

	// OneBits is the bit pattern of 1.0.
	OneBits uint64 = 0x3ff0000000000000

	// QuietNaNBits is the quiet NaN the kernels emit for NaN results.
	QuietNaNBits uint64 = 0x7ff8000000000001

	// PosInfBits is the bit pattern of +Inf.
	PosInfBits uint64 = 0x7ff0000000000000

	// NegInfBits is the bit pattern of -Inf.
	NegInfBits uint64 = 0xfff0000000000000
)

// Bits returns the IEEE-754 bit pattern of x.
func Bits(x float64) uint64 {
	return math.Float64bits(x)
}

// FromBits returns the float64 with bit pattern b.
func FromBits(b uint64) float64 {
	return math.Float64frombits(b)
}

// Sign returns the sign bit of b (0 or 1).
func Sign(b uint64) uint64 {
	return b >> 63
}

// Exponent returns the raw biased exponent field of b.
func Exponent(b uint64) uint64 {
	return (b & ExponentMask) >> FractionBits
}

// UnbiasedExponent returns the exponent field of b minus the bias.
// The result is only meaningful for normal numbers.
func UnbiasedExponent(b uint64) int {
	return int(Exponent(b)) - Bias
}

// Fraction returns the fraction field of b.
func Fraction(b uint64) uint64 {
	return b & FractionMask
}

// WithExponent replaces the biased exponent field of b with e.
func WithExponent(b uint64, e uint64) uint64 {
	return b&^ExponentMask | (e<<FractionBits)&ExponentMask
}

// Quiet returns the quiet NaN with the fixed payload used by the kernels.
func Quiet() float64 {
	return math.Float64frombits(QuietNaNBits)
}

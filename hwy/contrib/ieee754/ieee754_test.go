package ieee754

import (
	"math"
	"testing"

	"github.com/ajroetker/hwystat/hwy"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		x    float64
		want Class
	}{
		{0, Zero},
		{math.Copysign(0, -1), Zero},
		{math.SmallestNonzeroFloat64, Subnormal},
		{-math.SmallestNonzeroFloat64, Subnormal},
		{1, Normal},
		{-math.MaxFloat64, Normal},
		{math.Inf(1), Infinite},
		{math.Inf(-1), Infinite},
		{math.NaN(), NaN},
		{FromBits(QuietNaNBits), NaN},
		{FromBits(0xfff0000000000001), NaN},
	}
	for _, tt := range tests {
		if got := Classify(tt.x); got != tt.want {
			t.Errorf("Classify(%v [%016x]) = %v, want %v", tt.x, Bits(tt.x), got, tt.want)
		}
	}
}

func TestPredicatesMatchMath(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), 1, -1, 1e-310, math.Inf(1), math.Inf(-1), math.NaN(), Quiet(), 3.5e300}
	for _, x := range values {
		if got, want := IsNaN(x), math.IsNaN(x); got != want {
			t.Errorf("IsNaN(%v) = %v, want %v", x, got, want)
		}
		for _, sign := range []int{-1, 0, 1} {
			if got, want := IsInf(x, sign), math.IsInf(x, sign); got != want {
				t.Errorf("IsInf(%v, %d) = %v, want %v", x, sign, got, want)
			}
		}
		if got, want := SignBit(x), math.Signbit(x); got != want {
			t.Errorf("SignBit(%v) = %v, want %v", x, got, want)
		}
	}
	if !IsZero(math.Copysign(0, -1)) || IsZero(1e-310) {
		t.Error("IsZero misclassified")
	}
	if !IsSubnormal(1e-310) || IsSubnormal(0) {
		t.Error("IsSubnormal misclassified")
	}
}

func TestFields(t *testing.T) {
	b := Bits(-6.0) // -1.5 * 2^2
	if Sign(b) != 1 {
		t.Errorf("Sign: got %d", Sign(b))
	}
	if Exponent(b) != Bias+2 {
		t.Errorf("Exponent: got %d", Exponent(b))
	}
	if UnbiasedExponent(b) != 2 {
		t.Errorf("UnbiasedExponent: got %d", UnbiasedExponent(b))
	}
	if Fraction(b) != 1<<51 {
		t.Errorf("Fraction: got %x", Fraction(b))
	}
	if got := FromBits(WithExponent(b, Bias)); got != -1.5 {
		t.Errorf("WithExponent: got %v, want -1.5", got)
	}
	if got := FromBits(Bits(3) + ExponentOne); got != 6 {
		t.Errorf("ExponentOne: got %v, want 6", got)
	}
	if FromBits(OneBits) != 1 || FromBits(PosInfBits) != math.Inf(1) || FromBits(NegInfBits) != math.Inf(-1) {
		t.Error("bit constants do not decode to their values")
	}
	if Bits(Quiet()) != QuietNaNBits {
		t.Errorf("Quiet: got %016x", Bits(Quiet()))
	}
}

func TestNaNMask(t *testing.T) {
	defer hwy.ForceWidth(64)()

	v := hwy.Load([]float64{1, math.NaN(), math.Inf(1), FromBits(0xfff8000000000000), 0, Quiet(), math.Inf(-1), -2})
	if got := NaNMask(v).Bits(); got != 0b0010_1010 {
		t.Errorf("NaNMask: got %08b, want 00101010", got)
	}

	active := hwy.TailMask[float64](4)
	if got := ValidMask(active, v).Bits(); got != 0b0101 {
		t.Errorf("ValidMask: got %04b, want 0101", got)
	}
}

func TestNaNMaskMatchesSelfCompare(t *testing.T) {
	patterns := []uint64{
		0, SignMask, OneBits, PosInfBits, NegInfBits, QuietNaNBits,
		0x7ff0000000000001, // signaling NaN, smallest payload
		0x7fffffffffffffff,
		0xfff0000000000001,
		0x7fefffffffffffff, // largest finite
		0x0000000000000001, // smallest subnormal
		0x000fffffffffffff,
		0x800fffffffffffff,
		0x7ff8000000000000,
		0xfff8000000000000,
		0x3ff8000000000000,
	}
	for _, width := range []int{8, 16, 32, 64} {
		restore := hwy.ForceWidth(width)
		lanes := hwy.MaxLanes[float64]()
		buf := make([]float64, lanes)
		for start := 0; start < len(patterns); start += lanes {
			for i := range buf {
				buf[i] = FromBits(patterns[(start+i)%len(patterns)])
			}
			v := hwy.Load(buf)
			if got, want := NaNMask(v).Bits(), hwy.IsNaN(v).Bits(); got != want {
				t.Errorf("width %d offset %d: NaNMask %b, IsNaN %b", width, start, got, want)
			}
		}
		restore()
	}
}

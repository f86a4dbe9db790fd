package ref

import (
	"math"
	"testing"
)

var nan = math.NaN()

func approxEqual(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b))
}

func TestSums(t *testing.T) {
	data := []float64{1, nan, 3}

	if got := Sum(data); got != 4 {
		t.Errorf("Sum: got %v, want 4", got)
	}
	if got, n := SumLen(data); got != 4 || n != 2 {
		t.Errorf("SumLen: got (%v, %d), want (4, 2)", got, n)
	}
	if got := Mean(data); got != 2 {
		t.Errorf("Mean: got %v, want 2", got)
	}
	if got, n := UnarySumLen(square, data); got != 10 || n != 2 {
		t.Errorf("UnarySumLen: got (%v, %d), want (10, 2)", got, n)
	}
	if got := UnaryMean(square, data); got != 5 {
		t.Errorf("UnaryMean: got %v, want 5", got)
	}
	if got, n := SubUnarySumLen(square, data, 2); got != 2 || n != 2 {
		t.Errorf("SubUnarySumLen: got (%v, %d), want (2, 2)", got, n)
	}
	if got := SubUnaryMean(square, data, 2); got != 1 {
		t.Errorf("SubUnaryMean: got %v, want 1", got)
	}
}

func TestBinarySums(t *testing.T) {
	x := []float64{2, 3, 5}
	y := []float64{1, 1, nan}

	if got, n := BinarySumLen(product, x, y); got != 5 || n != 2 {
		t.Errorf("BinarySumLen: got (%v, %d), want (5, 2)", got, n)
	}
	if got := BinaryMean(product, x, y); got != 2.5 {
		t.Errorf("BinaryMean: got %v, want 2.5", got)
	}
	// Each term is added once and the NaN pair is skipped.
	if got := SubBinarySum(product, x, 1, y, 0); got != 3 {
		t.Errorf("SubBinarySum: got %v, want 3", got)
	}
	if got, n := SubBinarySumLen(product, x, 1, y, 0); got != 3 || n != 2 {
		t.Errorf("SubBinarySumLen: got (%v, %d), want (3, 2)", got, n)
	}
	if got := SubBinaryMean(product, x, 1, y, 0); got != 1.5 {
		t.Errorf("SubBinaryMean: got %v, want 1.5", got)
	}
	// Mismatched lengths read the common prefix.
	if got := BinarySum(product, x, y[:1]); got != 2 {
		t.Errorf("BinarySum prefix: got %v, want 2", got)
	}
}

func TestEmpty(t *testing.T) {
	if got, n := SumLen(nil); got != 0 || n != 0 {
		t.Errorf("SumLen(nil): got (%v, %d)", got, n)
	}
	if !math.IsNaN(Mean(nil)) {
		t.Error("Mean(nil) should be NaN")
	}
	if !math.IsInf(Min(nil), 1) || !math.IsInf(Max(nil), -1) {
		t.Error("Min/Max of empty input should be +Inf/-Inf")
	}
	if IMin(nil) != -1 || IMax(nil) != -1 {
		t.Error("IMin/IMax of empty input should be -1")
	}
}

func TestMinMax(t *testing.T) {
	data := []float64{3, 1, nan, 1, 7, 7}
	if got := Min(data); got != 1 {
		t.Errorf("Min: got %v", got)
	}
	if got := Max(data); got != 7 {
		t.Errorf("Max: got %v", got)
	}
	if got := IMin(data); got != 1 {
		t.Errorf("IMin: got %d, want 1", got)
	}
	if got := IMax(data); got != 4 {
		t.Errorf("IMax: got %d, want 4", got)
	}

	allNaN := []float64{nan, nan}
	if !math.IsInf(Min(allNaN), 1) || !math.IsInf(Max(allNaN), -1) {
		t.Error("all-NaN Min/Max should be +Inf/-Inf")
	}
	if IMin(allNaN) != -1 || IMax(allNaN) != -1 {
		t.Error("all-NaN IMin/IMax should be -1")
	}
}

func TestVar(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Var(data, true); got != 4 {
		t.Errorf("Var biased: got %v, want 4", got)
	}
	if got := Var(data, false); !approxEqual(got, 32.0/7, 1e-15) {
		t.Errorf("Var unbiased: got %v, want %v", got, 32.0/7)
	}
	if got := Std(data, true); got != 2 {
		t.Errorf("Std: got %v, want 2", got)
	}
	if got := Var(append(data, nan), true); got != 4 {
		t.Errorf("Var with NaN: got %v, want 4", got)
	}
}

func TestPairStats(t *testing.T) {
	x := []float64{1, 2, 3, nan}
	y := []float64{2, 4, 6, 1}

	if got := Covar(x, y, true); !approxEqual(got, 4.0/3, 1e-15) {
		t.Errorf("Covar biased: got %v", got)
	}
	if got := Covar(x, y, false); got != 2 {
		t.Errorf("Covar unbiased: got %v, want 2", got)
	}
	if got := Corr(x, y); got != 1 {
		t.Errorf("Corr: got %v, want 1", got)
	}
	if got := Beta(x, y); got != 2 {
		t.Errorf("Beta: got %v, want 2", got)
	}
	if got := Dot(x, y); !approxEqual(got, 28.0/3, 1e-15) {
		t.Errorf("Dot: got %v", got)
	}
}

func TestMoments(t *testing.T) {
	if got := Skew([]float64{1, 2, 3}); got != 0 {
		t.Errorf("Skew symmetric: got %v, want 0", got)
	}
	if got := Kurt([]float64{1, 2, 3, nan}); got != 1.5 {
		t.Errorf("Kurt: got %v, want 1.5", got)
	}
	if got := Skew([]float64{1, 1, 10}); got <= 0 {
		t.Errorf("Skew right-tailed: got %v, want > 0", got)
	}
}

func TestEMA(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	if got := EMA(data, 2, 5); !approxEqual(got, 4.5, 1e-15) {
		t.Errorf("EMA: got %v, want 4.5", got)
	}
	if got := EMA(data, 2, 2); got != 1.5 {
		t.Errorf("EMA empty window: got %v, want seed 1.5", got)
	}
	if got := EMA(data, 2, 100); !approxEqual(got, 4.5, 1e-15) {
		t.Errorf("EMA clamped: got %v, want 4.5", got)
	}
}

func TestTranscendentals(t *testing.T) {
	in := []float64{0, 1, 2, -1}
	out := make([]float64, len(in))

	tests := []struct {
		name string
		fn   func(in, out []float64)
		want func(float64) float64
	}{
		{"Exp2", Exp2, math.Exp2},
		{"Exp", Exp, math.Exp},
		{"Pow3", func(in, out []float64) { Pow(3, in, out) }, func(x float64) float64 { return math.Pow(3, x) }},
		{"Log2", Log2, math.Log2},
		{"Log", Log, math.Log},
		{"Log10", Log10, math.Log10},
	}
	for _, tt := range tests {
		tt.fn(in, out)
		for i, x := range in {
			if want := tt.want(x); !approxEqual(out[i], want, 0) {
				t.Errorf("%s(%v): got %v, want %v", tt.name, x, out[i], want)
			}
		}
	}
}

package reduce

import (
	"fmt"
	"math"
	"testing"

	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/hwy/contrib/ref"
	"github.com/ajroetker/hwystat/internal/testutil"
)

const tol = 1e-12

func TestSumSimple(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		data := []float64{1, math.NaN(), 3}
		if got := Sum(data); got != 4 {
			t.Errorf("Sum: got %v, want 4", got)
		}
		if got, n := SumLen(data); got != 4 || n != 2 {
			t.Errorf("SumLen: got (%v, %d), want (4, 2)", got, n)
		}
		if got := Mean(data); got != 2 {
			t.Errorf("Mean: got %v, want 2", got)
		}
	})
}

func TestSumEmpty(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		if got, n := SumLen(nil); got != 0 || n != 0 {
			t.Errorf("SumLen(nil): got (%v, %d), want (0, 0)", got, n)
		}
		if !math.IsNaN(Mean(nil)) {
			t.Error("Mean(nil) should be NaN")
		}
		allNaN := testutil.WithNaNs(make([]float64, 20), 1, 0)
		if got, n := SumLen(allNaN); got != 0 || n != 0 {
			t.Errorf("SumLen(all NaN): got (%v, %d), want (0, 0)", got, n)
		}
	})
}

func TestTailNaNExcluded(t *testing.T) {
	defer hwy.ForceWidth(64)()

	// Nine elements: one full vector and a one-lane tail holding NaN.
	data := []float64{1, 1, 1, 1, 1, 1, 1, 1, math.NaN()}
	if got, n := SumLen(data); got != 8 || n != 8 {
		t.Errorf("SumLen: got (%v, %d), want (8, 8)", got, n)
	}
	// A NaN-producing op on the zero-filled inactive lanes must not count.
	recip := UnaryFunc{
		Scalar: func(x float64) float64 { return 0 / x },
		Vec: func(v hwy.Vec[float64]) hwy.Vec[float64] {
			return hwy.Div(hwy.Zero[float64](), v)
		},
	}
	if got, n := UnarySumLen(recip, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}); got != 0 || n != 9 {
		t.Errorf("UnarySumLen(0/x): got (%v, %d), want (0, 9)", got, n)
	}
}

func TestMatchesScalarReference(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		for _, n := range testutil.Lengths {
			x := testutil.WithNaNs(testutil.DeterministicUniform(1, 0.5, 1.5, n), 13, 5)
			y := testutil.WithNaNs(testutil.DeterministicUniform(2, 0.5, 1.5, n), 17, 3)
			name := fmt.Sprintf("n=%d", n)

			checkLen := func(op string, got float64, gotN int, want float64, wantN int) {
				t.Helper()
				testutil.RequireRelClose(t, name+" "+op, got, want, tol)
				if gotN != wantN {
					t.Errorf("%s %s: valid length %d, want %d", name, op, gotN, wantN)
				}
			}

			got, gotN := SumLen(x)
			want, wantN := ref.SumLen(x)
			checkLen("SumLen", got, gotN, want, wantN)

			got, gotN = UnarySumLen(Square{}, x)
			want, wantN = ref.UnarySumLen(Square{}.Apply, x)
			checkLen("UnarySumLen(Square)", got, gotN, want, wantN)

			got, gotN = UnarySumLen(Cube{}, x)
			want, wantN = ref.UnarySumLen(Cube{}.Apply, x)
			checkLen("UnarySumLen(Cube)", got, gotN, want, wantN)

			got, gotN = SubUnarySumLen(Fourth{}, x, 0.25)
			want, wantN = ref.SubUnarySumLen(Fourth{}.Apply, x, 0.25)
			checkLen("SubUnarySumLen(Fourth)", got, gotN, want, wantN)

			got, gotN = BinarySumLen(Product{}, x, y)
			want, wantN = ref.BinarySumLen(Product{}.Apply, x, y)
			checkLen("BinarySumLen(Product)", got, gotN, want, wantN)

			got, gotN = SubBinarySumLen(Product{}, x, 0.1, y, 0.2)
			want, wantN = ref.SubBinarySumLen(Product{}.Apply, x, 0.1, y, 0.2)
			checkLen("SubBinarySumLen(Product)", got, gotN, want, wantN)

			testutil.RequireRelClose(t, name+" Sum", Sum(x), ref.Sum(x), tol)
			testutil.RequireRelClose(t, name+" UnarySum", UnarySum(Square{}, x), ref.UnarySum(Square{}.Apply, x), tol)
			testutil.RequireRelClose(t, name+" SubUnarySum", SubUnarySum(Square{}, x, 1), ref.SubUnarySum(Square{}.Apply, x, 1), tol)
			testutil.RequireRelClose(t, name+" BinarySum", BinarySum(Product{}, x, y), ref.BinarySum(Product{}.Apply, x, y), tol)
			testutil.RequireRelClose(t, name+" SubBinarySum", SubBinarySum(Product{}, x, 1, y, 1), ref.SubBinarySum(Product{}.Apply, x, 1, y, 1), tol)

			testutil.RequireRelClose(t, name+" Mean", Mean(x), ref.Mean(x), tol)
			testutil.RequireRelClose(t, name+" UnaryMean", UnaryMean(Square{}, x), ref.UnaryMean(Square{}.Apply, x), tol)
			testutil.RequireRelClose(t, name+" SubUnaryMean", SubUnaryMean(Square{}, x, 1), ref.SubUnaryMean(Square{}.Apply, x, 1), tol)
			testutil.RequireRelClose(t, name+" BinaryMean", BinaryMean(Product{}, x, y), ref.BinaryMean(Product{}.Apply, x, y), tol)
			testutil.RequireRelClose(t, name+" SubBinaryMean", SubBinaryMean(Product{}, x, 1, y, 1), ref.SubBinaryMean(Product{}.Apply, x, 1, y, 1), tol)
		}
	})
}

func TestSubBinarySumAddsOnce(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		x := []float64{2, 3, 5, 2, 3, 5, 2, 3, 5, 2}
		y := []float64{1, 1, math.NaN(), 1, 1, math.NaN(), 1, 1, math.NaN(), 1}
		// (x-1)*y over non-NaN pairs: 1+2+1+2+1+2+1.
		if got, n := SubBinarySumLen(Product{}, x, 1, y, 0); got != 10 || n != 7 {
			t.Errorf("SubBinarySumLen: got (%v, %d), want (10, 7)", got, n)
		}
	})
}

func TestMismatchedLengths(t *testing.T) {
	testutil.ForEachWidth(t, func(t *testing.T) {
		x := testutil.DeterministicUniform(3, 0, 1, 40)
		y := testutil.DeterministicUniform(4, 0, 1, 25)
		got, n := BinarySumLen(Product{}, x, y)
		want, wantN := ref.BinarySumLen(Product{}.Apply, x[:25], y)
		if n != wantN || !testutil.RelClose(got, want, tol) {
			t.Errorf("got (%v, %d), want (%v, %d)", got, n, want, wantN)
		}
	})
}

func TestPurity(t *testing.T) {
	x := testutil.WithNaNs(testutil.DeterministicUniform(5, -1, 1, 1003), 7, 0)
	first := Sum(x)
	for range 3 {
		if got := Sum(x); math.Float64bits(got) != math.Float64bits(first) {
			t.Fatalf("Sum not bit-identical: %v vs %v", got, first)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	for _, n := range []int{1000, 100000} {
		x := testutil.WithNaNs(testutil.DeterministicUniform(1, 0, 1, n), 11, 0)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = Sum(x)
			}
		})
	}
}

func BenchmarkSumScalar(b *testing.B) {
	x := testutil.WithNaNs(testutil.DeterministicUniform(1, 0, 1, 100000), 11, 0)
	for b.Loop() {
		_ = ref.Sum(x)
	}
}

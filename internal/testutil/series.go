// Package testutil holds deterministic inputs and tolerance helpers shared
// by the kernel tests.
package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/hwystat/hwy"
)

// Widths are the lane-group widths in bytes every kernel is tested at:
// 1, 2, 4 and 8 float64 lanes.
var Widths = []int{8, 16, 32, 64}

// Lengths cover empty input, less than one vector, exactly one vector,
// one vector plus a tail, and long inputs.
var Lengths = []int{0, 1, 7, 8, 9, 1000, 100000}

// DeterministicUniform returns length values drawn uniformly from [lo, hi)
// with a fixed seed.
func DeterministicUniform(seed int64, lo, hi float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// WithNaNs returns a copy of data with every k-th element, starting at
// offset, replaced by NaN. k <= 0 returns an unmodified copy.
func WithNaNs(data []float64, k, offset int) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	if k <= 0 {
		return out
	}
	for i := offset; i < len(out); i += k {
		out[i] = math.NaN()
	}
	return out
}

// RelClose reports whether got and want agree within tol relative to
// max(1, |want|). NaNs match NaNs and infinities must be equal.
func RelClose(got, want, tol float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if math.IsInf(got, 0) || math.IsInf(want, 0) {
		return got == want
	}
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}

// RequireRelClose fails t if got and want are not RelClose.
func RequireRelClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if !RelClose(got, want, tol) {
		t.Errorf("%s: got %v, want %v (tol %g)", name, got, want, tol)
	}
}

// ForEachWidth runs fn as a subtest at every entry of Widths, restoring the
// dispatch width afterwards.
func ForEachWidth(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, w := range Widths {
		t.Run(fmt.Sprintf("width=%d", w), func(t *testing.T) {
			defer hwy.ForceWidth(w)()
			fn(t)
		})
	}
}

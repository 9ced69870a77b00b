package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-series/series"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSeriesNearlyEqual fails t if got and want differ in shape or if
// any sample pair exceeds eps (absolute tolerance).
func RequireSeriesNearlyEqual(t *testing.T, got, want *series.Series, eps float64) {
	t.Helper()
	if got.Len() != want.Len() || got.Channels() != want.Channels() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Len(), got.Channels(), want.Len(), want.Channels())
	}
	for ti := range got.Len() {
		for c := range got.Channels() {
			diff := math.Abs(got.At(ti, c) - want.At(ti, c))
			if diff > eps {
				t.Fatalf("sample (%d, %d): got %v, want %v (diff %v > eps %v)", ti, c, got.At(ti, c), want.At(ti, c), diff, eps)
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

package metrics

import (
	"math"
	"strings"
	"testing"
)

func TestErrorHistogramRecord(t *testing.T) {
	tests := []struct {
		name       string
		predicted  int
		actual     int
		wantBucket int
	}{
		{"exact", 3, 3, 0},
		{"over by one", 4, 3, 1},
		{"under by two", 1, 3, 2},
		{"largest bucket", 0, 5, 5},
		{"clamped", 9, 0, 5},
		{"clamped negative", -4, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h ErrorHistogram
			h.Record(tt.predicted, tt.actual)
			if h.N != 1 {
				t.Errorf("N = %d, want 1", h.N)
			}
			if h.Buckets[tt.wantBucket] != 1 {
				t.Errorf("Buckets = %v, want 1 in bucket %d", h.Buckets, tt.wantBucket)
			}
		})
	}
}

func TestErrorHistogramMergeAndCumulative(t *testing.T) {
	var a, b ErrorHistogram
	a.Record(1, 1)
	a.Record(2, 1)
	b.Record(3, 3)
	b.Record(5, 1)

	a.Merge(b)
	if a.N != 4 {
		t.Fatalf("N = %d, want 4", a.N)
	}
	want := [HistogramBuckets]int{2, 1, 0, 0, 1, 0}
	if a.Buckets != want {
		t.Errorf("Buckets = %v, want %v", a.Buckets, want)
	}

	cumulative := a.Cumulative()
	wantCum := []float64{0.5, 0.75, 0.75, 0.75, 1, 1}
	for i := range wantCum {
		if math.Abs(cumulative[i]-wantCum[i]) > 1e-12 {
			t.Errorf("Cumulative()[%d] = %v, want %v", i, cumulative[i], wantCum[i])
		}
	}
	if a.ExactShare() != 0.5 {
		t.Errorf("ExactShare() = %v, want 0.5", a.ExactShare())
	}
	if !strings.Contains(a.String(), "diff=1:  75%") {
		t.Errorf("String() = %q", a.String())
	}

	a.Reset()
	if a.N != 0 || a.Cumulative() != nil {
		t.Error("Reset should clear the histogram")
	}
}

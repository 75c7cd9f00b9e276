package metrics

import (
	"fmt"
	"strings"
)

// HistogramBuckets is the number of error buckets of an ErrorHistogram.
// The last bucket collects every error at or above HistogramBuckets-1.
const HistogramBuckets = 6

// ErrorHistogram counts validation predictions by absolute error.
// Bucket i holds the predictions that missed the actual target by exactly
// i, with larger errors clamped into the last bucket.
type ErrorHistogram struct {
	Buckets [HistogramBuckets]int
	N       int
}

// Record adds one (predicted, actual) pair.
func (h *ErrorHistogram) Record(predicted, actual int) {
	diff := predicted - actual
	if diff < 0 {
		diff = -diff
	}
	if diff >= HistogramBuckets {
		diff = HistogramBuckets - 1
	}
	h.Buckets[diff]++
	h.N++
}

// Merge adds every count of other into h.
func (h *ErrorHistogram) Merge(other ErrorHistogram) {
	for i, c := range other.Buckets {
		h.Buckets[i] += c
	}
	h.N += other.N
}

// Reset zeroes every count.
func (h *ErrorHistogram) Reset() {
	*h = ErrorHistogram{}
}

// Cumulative returns, for each bucket i, the share of recorded predictions
// whose error is at most i. It returns nil when nothing was recorded.
func (h ErrorHistogram) Cumulative() []float64 {
	if h.N == 0 {
		return nil
	}
	shares := make([]float64, HistogramBuckets)
	running := 0
	for i, c := range h.Buckets {
		running += c
		shares[i] = float64(running) / float64(h.N)
	}
	return shares
}

// ExactShare returns the share of predictions with zero error.
func (h ErrorHistogram) ExactShare() float64 {
	if h.N == 0 {
		return 0
	}
	return float64(h.Buckets[0]) / float64(h.N)
}

// String renders the counts followed by the cumulative percentages, one
// bucket per line.
func (h ErrorHistogram) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", h.Buckets)
	for i, share := range h.Cumulative() {
		fmt.Fprintf(&b, "diff=%d:  %g%%\n", i, 100*share)
	}
	return b.String()
}

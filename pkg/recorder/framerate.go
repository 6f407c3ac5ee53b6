package recorder

import (
	"math"
	"sort"
)

// MedianFrameRate estimates the effective frame rate from buffered
// timestamps: the reciprocal of the median inter-frame interval in
// seconds. Returns ErrEmptyBuffer when nothing is buffered. A single
// buffered frame yields NaN, since no interval exists; callers must
// treat a non-finite rate as unusable for opening a sink.
func (r *Recorder) MedianFrameRate() (float64, error) {
	if len(r.frames) == 0 {
		r.log.Error("No frames to estimate rate from for %s", r.path)
		return 0, ErrEmptyBuffer
	}
	return medianRate(r.timestamps()), nil
}

// medianRate computes 1 / median(diff(ts) in seconds). The source
// series is kept in arrival order; only the diff sequence is sorted to
// find its median, so noisy or out-of-order timestamps flow through
// unmodified (the median diff may be zero or negative).
func medianRate(ts []int64) float64 {
	diffs := make([]float64, 0, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		diffs = append(diffs, float64(ts[i]-ts[i-1])/1e9)
	}
	return 1 / median(diffs)
}

// median returns NaN for an empty sequence.
func median(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	s := make([]float64, len(v))
	copy(s, v)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

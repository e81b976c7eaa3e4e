package encoding

import "math"

// RelativeMean encodes a window by where its mean sits inside a fixed
// amplitude range [min, max], binned into c equal categories. A coarse,
// amplitude-aware companion to ordinal coding: two windows with the same
// rank order but different levels get different symbols.
type RelativeMean struct {
	c        int
	min, max float64
}

// NewRelativeMean builds the codec for amplitude range [min, max).
//
// Errors: ErrCategories (c < 2), ErrBadRange (min ≥ max).
func NewRelativeMean(c int, min, max float64) (RelativeMean, error) {
	if c < 2 {
		return RelativeMean{}, ErrCategories
	}
	if min >= max {
		return RelativeMean{}, ErrBadRange
	}
	return RelativeMean{c: c, min: min, max: max}, nil
}

// Cardinality returns c.
func (r RelativeMean) Cardinality() int64 { return int64(r.c) }

// EncodeWindow bins (mean(window) - min) / (max - min) into [1, c],
// clamping means outside the configured range to the edge categories.
//
// Errors: ErrEmptyData.
func (r RelativeMean) EncodeWindow(window []float64) (int64, error) {
	if len(window) == 0 {
		return 0, ErrEmptyData
	}
	sum := 0.0
	for _, x := range window {
		sum += x
	}
	return int64(binUnit((sum/float64(len(window))-r.min)/(r.max-r.min), r.c)), nil
}

// FirstDifference encodes a window by the mean magnitude of its
// successive differences, normalized into a fixed range and binned into
// c categories — a roughness statistic complementing RelativeMean's
// level statistic.
type FirstDifference struct {
	c        int
	min, max float64
}

// NewFirstDifference builds the codec; [min, max) bounds the expected
// mean |Δx| statistic.
//
// Errors: ErrCategories (c < 2), ErrBadRange (min ≥ max).
func NewFirstDifference(c int, min, max float64) (FirstDifference, error) {
	if c < 2 {
		return FirstDifference{}, ErrCategories
	}
	if min >= max {
		return FirstDifference{}, ErrBadRange
	}
	return FirstDifference{c: c, min: min, max: max}, nil
}

// Cardinality returns c.
func (f FirstDifference) Cardinality() int64 { return int64(f.c) }

// EncodeWindow bins mean(|window[i+1]-window[i]|) into [1, c]. Windows
// need at least two elements to have a first difference.
//
// Errors: ErrWindowLength when len(window) < 2.
func (f FirstDifference) EncodeWindow(window []float64) (int64, error) {
	if len(window) < 2 {
		return 0, ErrWindowLength
	}
	sum := 0.0
	for i := 1; i < len(window); i++ {
		sum += math.Abs(window[i] - window[i-1])
	}
	mean := sum / float64(len(window)-1)
	return int64(binUnit((mean-f.min)/(f.max-f.min), f.c)), nil
}

// binUnit maps y ∈ [0, 1] (clamped) to a category in [1, c].
func binUnit(y float64, c int) int {
	z := int(math.Floor(y*float64(c))) + 1
	if z > c {
		z = c
	}
	if z < 1 {
		z = 1
	}
	return z
}

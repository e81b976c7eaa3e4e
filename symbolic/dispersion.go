package symbolic

import (
	"github.com/katalvlaran/infodyn/encoding"
	"github.com/katalvlaran/infodyn/outcome"
)

// DispersionSpace counts dispersion patterns: the series is Gaussian-CDF
// encoded into c categories (moments fitted on the full series, once),
// then length-m, lag-τ windows of categories are packed into one of cᵐ
// symbols.
//
// SkipEncoding treats the input as already-encoded categories in [1, c]
// (e.g. output of a different symbolization); the alphabet size c must
// still be explicit — there is no way to infer it from data alone.
type DispersionSpace struct {
	c            int
	m            int
	tau          int
	total        int64
	skipEncoding bool
}

// NewDispersionSpace builds a dispersion outcome space with c categories,
// embedding dimension m, and delay τ.
//
// Errors: encoding.ErrCategories (c < 2), ErrBadEmbedding,
// encoding.ErrAlphabetOverflow (cᵐ does not fit int64).
func NewDispersionSpace(c, m, tau int) (DispersionSpace, error) {
	if c < 2 {
		return DispersionSpace{}, encoding.ErrCategories
	}
	if err := validateEmbedding(m, tau); err != nil {
		return DispersionSpace{}, err
	}
	total, err := encoding.AlphabetSize(c, m)
	if err != nil {
		return DispersionSpace{}, err
	}
	return DispersionSpace{c: c, m: m, tau: tau, total: total}, nil
}

// NewDispersionSpaceSkipEncoding builds a space over pre-encoded
// category series. c must name the alphabet the categories came from.
//
// Errors: ErrNoAlphabet (c < 2 — the defining mistake this constructor
// guards against), ErrBadEmbedding, encoding.ErrAlphabetOverflow.
func NewDispersionSpaceSkipEncoding(c, m, tau int) (DispersionSpace, error) {
	if c < 2 {
		return DispersionSpace{}, ErrNoAlphabet
	}
	if err := validateEmbedding(m, tau); err != nil {
		return DispersionSpace{}, err
	}
	total, err := encoding.AlphabetSize(c, m)
	if err != nil {
		return DispersionSpace{}, err
	}
	return DispersionSpace{c: c, m: m, tau: tau, total: total, skipEncoding: true}, nil
}

// Categories returns c.
func (s DispersionSpace) Categories() int { return s.c }

// TotalOutcomes returns cᵐ, fixed at construction.
func (s DispersionSpace) TotalOutcomes() int64 { return s.total }

// CountSeries tallies dispersion patterns over x. Under SkipEncoding the
// samples must already be integer categories in [1, c]; otherwise the
// whole series is symbolized first (constant series map to category 1).
//
// Errors: ErrSeriesTooShort, ErrCategoryRange (skip-encoding input
// outside the declared alphabet).
//
// Complexity: O(n·m).
func (s DispersionSpace) CountSeries(x []float64, mode outcome.CountMode) (outcome.Counts, error) {
	w := windowCount(len(x), s.m, s.tau)
	if w == 0 {
		return outcome.Counts{}, ErrSeriesTooShort
	}

	cats := make([]int, len(x))
	if s.skipEncoding {
		for i, v := range x {
			z := int(v)
			if float64(z) != v || z < 1 || z > s.c {
				return outcome.Counts{}, ErrCategoryRange
			}
			cats[i] = z
		}
	} else {
		encoded, err := encoding.EncodeSeries(s.c, x)
		if err != nil {
			return outcome.Counts{}, err
		}
		cats = encoded
	}

	window := make([]int, s.m)
	symbols := make([]int64, w)
	for i := 0; i < w; i++ {
		for k := 0; k < s.m; k++ {
			window[k] = cats[i+k*s.tau]
		}
		sym, err := encoding.CombineBase(window, s.c)
		if err != nil {
			return outcome.Counts{}, err
		}
		symbols[i] = sym
	}
	return outcome.CountSymbols(symbols, mode, s.TotalOutcomes())
}

// MissingPatterns returns the category vectors of the cᵐ alphabet that
// never occur in x, in lexicographic order. The count of missing
// patterns is itself a complexity indicator for short series.
//
// Errors: as CountSeries.
func (s DispersionSpace) MissingPatterns(x []float64) ([][]int, error) {
	counts, err := s.CountSeries(x, outcome.PositiveOnly)
	if err != nil {
		return nil, err
	}
	var missing [][]int
	for _, sym := range counts.Missing(s.TotalOutcomes()) {
		pattern, err := encoding.SplitBase(sym, s.c, s.m)
		if err != nil {
			return nil, err
		}
		missing = append(missing, pattern)
	}
	return missing, nil
}

package symbolic

import (
	"github.com/katalvlaran/infodyn/encoding"
	"github.com/katalvlaran/infodyn/outcome"
)

// SwapSpace counts bubble-sort swap totals: every delay window is
// condensed to the number of adjacent transpositions needed to sort it.
// The alphabet {0, …, m(m-1)/2} depends only on m, never on the data's
// value range — a coarser, relabeling-invariant cousin of ordinal
// patterns (ties, however, do change the count).
type SwapSpace struct {
	m   int
	tau int
}

// NewSwapSpace builds a swap-count outcome space.
//
// Errors: ErrBadEmbedding.
func NewSwapSpace(m, tau int) (SwapSpace, error) {
	if err := validateEmbedding(m, tau); err != nil {
		return SwapSpace{}, err
	}
	return SwapSpace{m: m, tau: tau}, nil
}

// TotalOutcomes returns m(m-1)/2 + 1.
func (s SwapSpace) TotalOutcomes() int64 { return int64(s.m*(s.m-1)/2 + 1) }

// CountSeries tallies swap counts over every delay window. Outcome
// symbol k corresponds to k-1 swaps.
//
// Errors: ErrSeriesTooShort.
//
// Complexity: O(n·m²) — windows are short, the quadratic count is cheap.
func (s SwapSpace) CountSeries(x []float64, mode outcome.CountMode) (outcome.Counts, error) {
	w := windowCount(len(x), s.m, s.tau)
	if w == 0 {
		return outcome.Counts{}, ErrSeriesTooShort
	}

	window := make([]float64, s.m)
	symbols := make([]int64, w)
	for i := 0; i < w; i++ {
		for k := 0; k < s.m; k++ {
			window[k] = x[i+k*s.tau]
		}
		symbols[i] = int64(encoding.SwapCount(window)) + 1
	}
	return outcome.CountSymbols(symbols, mode, s.TotalOutcomes())
}

// Swaps converts an outcome symbol back to its swap count.
func (s SwapSpace) Swaps(sym int64) (int, error) {
	if sym < 1 || sym > s.TotalOutcomes() {
		return 0, encoding.ErrSymbolRange
	}
	return int(sym - 1), nil
}

package symbolic

import (
	"github.com/katalvlaran/infodyn/lehmer"
	"github.com/katalvlaran/infodyn/outcome"
)

// OrdinalSpace counts ordinal patterns: each delay window is ranked and
// Lehmer-coded into one of m! symbols. A value type, freely copyable;
// construction validates once, CountSeries never mutates the receiver.
type OrdinalSpace struct {
	m    int
	tau  int
	tie  lehmer.TieBreak
	seed int64
}

// NewOrdinalSpace builds an ordinal outcome space with embedding
// dimension m and delay τ. Seed feeds the tie-breaking RNG under
// TieRandom (0 ⇒ fixed default stream); it is ignored under TieFirst.
//
// Errors: ErrBadEmbedding, lehmer.ErrOrder for m > lehmer.MaxOrder.
func NewOrdinalSpace(m, tau int, tie lehmer.TieBreak, seed int64) (OrdinalSpace, error) {
	if err := validateEmbedding(m, tau); err != nil {
		return OrdinalSpace{}, err
	}
	if m > lehmer.MaxOrder {
		return OrdinalSpace{}, lehmer.ErrOrder
	}
	return OrdinalSpace{m: m, tau: tau, tie: tie, seed: seed}, nil
}

// TotalOutcomes returns m!.
func (s OrdinalSpace) TotalOutcomes() int64 { return lehmer.Factorial(s.m) }

// CountSeries tallies the ordinal pattern of every delay window of x.
// A fresh RNG is derived from Seed per call, so identical calls produce
// identical counts even under random tie-breaking.
//
// Errors: ErrSeriesTooShort.
//
// Complexity: O(n·m log m) time; scratch buffers are reused across
// windows, so allocation stays O(n + m).
func (s OrdinalSpace) CountSeries(x []float64, mode outcome.CountMode) (outcome.Counts, error) {
	w := windowCount(len(x), s.m, s.tau)
	if w == 0 {
		return outcome.Counts{}, ErrSeriesTooShort
	}

	rng := lehmer.NewRand(s.seed)
	window := make([]float64, s.m)
	perm := make([]int, s.m)
	symbols := make([]int64, w)
	for i := 0; i < w; i++ {
		for k := 0; k < s.m; k++ {
			window[k] = x[i+k*s.tau]
		}
		lehmer.RankInto(window, s.tie, rng, perm)
		sym, err := lehmer.Encode(perm)
		if err != nil {
			return outcome.Counts{}, err
		}
		symbols[i] = sym
	}
	return outcome.CountSymbols(symbols, mode, s.TotalOutcomes())
}

// Pattern decodes a symbol back into its rank permutation.
func (s OrdinalSpace) Pattern(sym int64) ([]int, error) {
	return lehmer.Decode(sym, s.m)
}

package encoding

import (
	"math/rand"

	"github.com/katalvlaran/infodyn/lehmer"
)

// Ordinal encodes a length-m window by its rank permutation: the window
// is ranked (ties broken per the configured policy), and the permutation
// is mapped to its Lehmer symbol in [1, m!]. Exact and bijective at the
// permutation level — Decode restores the full rank order.
type Ordinal struct {
	m   int
	tie lehmer.TieBreak
	rng *rand.Rand
}

// NewOrdinal builds an ordinal codec of order m. rng is consulted only
// under TieRandom; nil selects the fixed default stream (seed policy in
// package lehmer).
//
// Errors: lehmer.ErrOrder for m outside [2, lehmer.MaxOrder].
func NewOrdinal(m int, tie lehmer.TieBreak, rng *rand.Rand) (Ordinal, error) {
	if m < 2 || m > lehmer.MaxOrder {
		return Ordinal{}, lehmer.ErrOrder
	}
	return Ordinal{m: m, tie: tie, rng: rng}, nil
}

// Order returns the pattern length m.
func (o Ordinal) Order() int { return o.m }

// Cardinality returns m!, the size of the ordinal alphabet.
func (o Ordinal) Cardinality() int64 { return lehmer.Factorial(o.m) }

// EncodeWindow ranks the window and returns its Lehmer symbol.
//
// Errors: ErrWindowLength when len(window) != m.
//
// Complexity: O(m log m) ranking + O(m²) encoding.
func (o Ordinal) EncodeWindow(window []float64) (int64, error) {
	if len(window) != o.m {
		return 0, ErrWindowLength
	}
	perm := lehmer.Rank(window, o.tie, o.rng)
	return lehmer.Encode(perm)
}

// DecodeSymbol restores the rank permutation behind a symbol.
//
// Errors: lehmer.ErrSymbolRange.
func (o Ordinal) DecodeSymbol(s int64) ([]int, error) {
	return lehmer.Decode(s, o.m)
}

// Package lehmer - ordinal ranking of real-valued windows.
//
// This file turns a window of floats into the permutation describing its
// sort order, which Encode then maps to a compact symbol. It centralizes
// the tie-breaking policy and its RNG plumbing:
//   - Determinism: same seed ⇒ identical rankings across platforms.
//   - No ambient randomness: every randomized path takes an explicit
//     *rand.Rand; nil falls back to a fixed default seed.
package lehmer

import (
	"math/rand"
	"sort"
)

// TieBreak selects how equal values are ordered during ranking.
type TieBreak int

const (
	// TieRandom breaks each tie with a uniform coin flip. This is the
	// default: deterministic tie-breaking biases ordinal-pattern
	// statistics on data with repeated values.
	TieRandom TieBreak = iota

	// TieFirst keeps the earlier element first (stable order). Use when
	// reproducibility without a seed matters more than unbiasedness.
	TieFirst
)

// defaultRankSeed is the fixed seed used when callers pass a nil RNG.
// Arbitrary but stable, so default behavior stays reproducible.
const defaultRankSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for tie-breaking and other
// randomized paths. Policy: seed==0 ⇒ defaultRankSeed; otherwise the
// provided seed verbatim.
//
// math/rand.Rand is not goroutine-safe; create one per worker.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRankSeed
	}
	return rand.New(rand.NewSource(s))
}

// Rank returns the permutation p of 1..len(window) such that p[i] is the
// 1-based rank of window[i] within the window — the ordinal pattern of
// the window. Ties are resolved per tb; rng is consulted only
// for TieRandom and may be nil (default deterministic stream).
//
// Complexity: O(m log m) time, O(m) memory.
func Rank(window []float64, tb TieBreak, rng *rand.Rand) []int {
	perm := make([]int, len(window))
	RankInto(window, tb, rng, perm)
	return perm
}

// RankInto is the allocation-free variant of Rank: it writes the rank
// permutation into perm, which must have len(window) elements. Intended
// for hot loops scanning many windows; the caller owns perm and must not
// reuse it across concurrent invocations.
func RankInto(window []float64, tb TieBreak, rng *rand.Rand, perm []int) {
	m := len(window)
	if len(perm) != m {
		panic("lehmer: RankInto scratch length mismatch")
	}

	r := rng
	// idx[k] is the index into window of the k-th smallest value.
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := window[idx[a]], window[idx[b]]
		if va != vb {
			return va < vb
		}
		if tb == TieFirst {
			return idx[a] < idx[b]
		}
		if r == nil {
			r = NewRand(0)
		}
		return r.Intn(2) == 0
	})
	for k, i := range idx {
		perm[i] = k + 1
	}
}

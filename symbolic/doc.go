// Package symbolic turns one-dimensional time series into discrete
// outcome distributions via delay embedding: sample i is windowed with
// samples i, i+τ, …, i+(m-1)τ, and each window is condensed to a symbol.
//
// 🚀 Three outcome spaces:
//
//   - OrdinalSpace    — the window's rank permutation, Lehmer-coded.
//     Alphabet: m! patterns. Ties break randomly by default (seeded).
//   - DispersionSpace — each sample Gaussian-CDF-encoded into c
//     categories first, then windows of categories packed base-c.
//     Alphabet: cᵐ patterns; MissingPatterns enumerates the absent ones.
//   - SwapSpace       — the bubble-sort swap count of the window.
//     Alphabet: m(m-1)/2 + 1 outcomes, independent of value range.
//
// ✨ Guarantees:
//   - PositiveOnly counting (default) yields strictly positive
//     probabilities — absent patterns are omitted, not zero-padded;
//     FullAlphabet mode pads on explicit request.
//   - All randomness is seeded: same Seed ⇒ identical counts.
//   - Embedding windows that exceed the series length fail fast with
//     ErrSeriesTooShort; no partial tallies escape.
//
// ⚙️ Usage:
//
//	sp, _ := symbolic.NewOrdinalSpace(3, 1, lehmer.TieRandom, 42)
//	counts, _ := sp.CountSeries(x, outcome.PositiveOnly)
//	probs, _ := outcome.Estimate(nil, counts)
//
// Performance: one pass over the series, O(n·m log m) for ordinal and
// O(n·m) for dispersion/swap spaces.
package symbolic

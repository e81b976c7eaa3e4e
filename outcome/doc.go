// Package outcome defines the counting and probability layer every
// outcome space feeds into: raw symbol tallies, normalized probability
// mass functions, and the estimators between them.
//
// 🚀 The pipeline:
//
//	symbols ──▶ Counts (ordered outcomes + tallies)
//	        ──▶ Estimate (relative frequency / Bayesian smoothing)
//	        ──▶ Probabilities (sums to 1, entries in [0,1])
//
// ✨ Contracts:
//   - Counts keeps an explicit, ascending-ordered outcome list; tallies
//     are non-negative and aligned index-for-index with the outcomes.
//   - Probabilities validates normalization within NormTolerance.
//   - CountSymbols supports two modes: PositiveOnly (absent outcomes are
//     omitted, the default) and FullAlphabet (zero-padded to the space's
//     total cardinality) — callers choose, spaces never guess.
//   - Estimators form a closed set: RelativeFrequency and
//     BayesianSmoothing{Alpha}. Unknown estimators cannot be expressed.
//
// Ownership: Counts and Probabilities belong to the caller that
// requested them; nothing here caches or shares state across calls.
package outcome

// Package lehmer provides a bijective codec between permutations and
// integers via the factorial number system, plus the ordinal ranking
// step that turns a window of real values into a permutation.
//
// 🚀 What is a Lehmer code?
//
//	Every permutation of 1..m has a unique vector of inversion counts —
//	its Lehmer code — which reads as a number in the factorial base.
//	That gives a bijection between the m! permutations and the integers
//	1..m! (we keep symbols 1-based). Ordinal-pattern analysis uses this
//	to label the rank order of each embedding window with one small int.
//
// ✨ Key features:
//   - Encode: permutation → symbol in [1, m!], O(m²) inversion counting
//   - Decode: symbol → permutation, exact inverse, O(m²)
//   - Rank / RankInto: window of floats → rank permutation, with
//     configurable tie-breaking (random by default — see below)
//
// ⚠️ Tie-breaking:
//
//	Repeated values in a window make its rank order ambiguous. Breaking
//	ties deterministically (first-come wins) biases pattern statistics on
//	plateaued data, so the default comparator flips a seeded coin instead.
//	Pass TieFirst when you need stability over unbiasedness.
//
// Performance:
//
//   - Encode/Decode: O(m²) time, O(m) memory — m stays small (≤ 13)
//     because m! outcomes are enumerated downstream anyway.
//
// See example_test.go for round-trip usage.
package lehmer

// Package binning discretizes multivariate point sets onto a rectangular
// grid — the workhorse partition behind histograms and transfer
// operators.
//
// 🚀 What is grid binning?
//
//	Fix a partition per dimension (a bin count, a bin width, or explicit
//	edges), compute per-dimension minima and edge lengths once from the
//	data, then map every point to an integer bin tuple by floor
//	division. Visited tuples become outcomes; tuples nobody hit are only
//	materialized when the caller asks for the full alphabet.
//
// ✨ Key features:
//   - Three partition specs: Bins(n…), Widths(w…), Edges(e…)
//   - Flat 1-based outcome symbols with an exact TupleOf inverse
//   - Sparse (PositiveOnly) or exhaustive (FullAlphabet) counting
//   - Precise mode (default): minima and edge lengths carried in
//     extended precision (math/big) so points lying exactly on an
//     intended bin boundary never misclassify from floating-point error
//
// ⚠️ Fast mode:
//
//	Options{Precise: false} trades the big-float arithmetic for plain
//	float64 floor division. Faster, but liable to misclassify boundary
//	points; the transfer-operator engine warns when fed a fast grid,
//	because silent misclassification there corrupts the Markov matrix.
//
// Performance:
//
//   - Fit: O(n·d) over n points in d dimensions.
//   - BinOf: O(d) (O(d·log e) with explicit edges).
package binning

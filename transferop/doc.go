// Package transferop approximates the transfer (Perron–Frobenius)
// operator of a dynamical system from an observed trajectory, and
// derives its invariant measure — the stationary distribution over the
// visited partition elements.
//
// 🚀 Two build paths:
//
//   - Build            — rectangular partition (a binning.Grid): every
//     sample maps to a bin; consecutive samples define transitions;
//     per-bin transition counts are row-normalized into a sparse
//     row-stochastic matrix over the visited bins.
//   - BuildTriangulated — simplex partition over the trajectory points:
//     each simplex's forward image (vertex indices shifted one step) is
//     deterministically subsampled in barycentric coordinates, and the
//     fraction of subsamples landing in each simplex estimates the
//     transition weight. A documented fractional-overlap approximation,
//     trading exact polytope intersection for tractability.
//
// ✨ The solve:
//
//	InvariantMeasure runs power iteration ρ ← ρ·P from a seeded random
//	start, renormalizing against floating-point drift, until the
//	relative change drops below tolerance or the iteration cap hits.
//	The last iterate is returned either way; the accompanying
//	InvariantReport says which case occurred — callers are never left
//	guessing whether the solve converged.
//
// ⚠️ Boundary conditions:
//
//	The final trajectory sample has no successor. Circular (default)
//	wires it to the first visited bin; Random draws a successor
//	uniformly from the visited bins (seeded). No other policy exists;
//	unknown values fail fast.
//
// ⚠️ Precision:
//
//	A fast-mode (non-precise) grid can silently misclassify boundary
//	points, which here corrupts the Markov matrix. Build emits a
//	warning through Options.Warnf (nil ⇒ silent) when handed one.
//
// Determinism: identical seeds reproduce bit-identical operators and
// invariant measures; different seeds converge to the same stationary
// distribution within tolerance.
package transferop

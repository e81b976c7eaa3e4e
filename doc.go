// Package infodyn is your in-memory toolbox for turning raw time series
// and spatial arrays into probability distributions — and distributions
// into entropies, extropies and complexity measures.
//
// 🚀 What is infodyn?
//
//	A numerical library for nonlinear dynamics & time-series analysis:
//		• Symbol codecs: ordinal patterns (Lehmer codes), Gaussian-CDF binning,
//		  relative-mean & first-difference categorization
//		• Outcome spaces: rectangular/grid binning, dispersion patterns,
//		  bubble-sort swap counts, plus N-dimensional stencil generalizations
//		• Probability estimation: relative frequency & Bayesian smoothing
//		• Information measures: Shannon, Rényi, Tsallis, Curado, extropy,
//		  Lempel–Ziv complexity — one uniform evaluation protocol
//		• Transfer operators: empirical Perron–Frobenius matrices over bins
//		  or simplices, with power-iteration invariant measures
//
// ✨ Why choose infodyn?
//
//   - Reproducible by construction – every randomized path takes an explicit seed
//   - Fail fast – configuration and domain errors surface before any work is lost
//   - Pure Go + gonum – no cgo, no hidden global state
//   - Extensible – plug any Codec into any outcome space, any Measure into any PMF
//
// Under the hood, everything is organized into focused subpackages:
//
//	lehmer/     — bijective permutation ↔ integer codec, ordinal ranking
//	encoding/   — scalar & window codecs (Gaussian-CDF, relative, ordinal)
//	outcome/    — Counts, Probabilities, estimators, the Space contract
//	binning/    — rectangular/grid outcome space (precise & fast modes)
//	symbolic/   — delay-embedded ordinal / dispersion / swap spaces
//	stencil/    — spatial outcome spaces over N-D arrays
//	measure/    — the Evaluate / Maximum / Normalized measure protocol
//	transferop/ — transfer-operator build + invariant-measure solve
//	wavelet/    — per-scale relative energies of MODWT coefficients
//
// Quick sketch:
//
//	series ──▶ outcome space ──▶ Counts ──▶ Probabilities ──▶ Measure
//
// Dive into each package's doc.go for contracts, complexity notes, and
// worked examples.
//
//	go get github.com/katalvlaran/infodyn
package infodyn

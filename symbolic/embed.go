// Package symbolic - delay-embedding helpers and sentinel errors.
package symbolic

import "errors"

// Sentinel errors for embedding-based outcome spaces.
var (
	// ErrBadEmbedding indicates m < 2 or τ < 1.
	ErrBadEmbedding = errors.New("symbolic: embedding requires m ≥ 2 and τ ≥ 1")
	// ErrSeriesTooShort indicates the embedding window exceeds the series.
	ErrSeriesTooShort = errors.New("symbolic: series shorter than embedding window (m-1)·τ + 1")
	// ErrNoAlphabet indicates skip-encoding without an explicit category count.
	ErrNoAlphabet = errors.New("symbolic: skip-encoding requires an explicit alphabet size c")
	// ErrCategoryRange indicates a pre-encoded category outside [1, c].
	ErrCategoryRange = errors.New("symbolic: pre-encoded category outside [1, c]")
)

// windowCount returns the number of length-m, lag-τ windows a series of
// length n admits, or 0 when the embedding does not fit.
func windowCount(n, m, tau int) int {
	w := n - (m-1)*tau
	if w < 0 {
		return 0
	}
	return w
}

// validateEmbedding is the shared m/τ fail-fast check.
func validateEmbedding(m, tau int) error {
	if m < 2 || tau < 1 {
		return ErrBadEmbedding
	}
	return nil
}

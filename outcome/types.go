// Package outcome - core types, contracts, and sentinel errors.
package outcome

import "errors"

// NormTolerance is the absolute tolerance under which a probability
// vector counts as normalized.
const NormTolerance = 1e-9

// Sentinel errors for the counting and probability layer.
var (
	// ErrLengthMismatch indicates outcomes and tallies of differing length.
	ErrLengthMismatch = errors.New("outcome: outcomes and counts must have equal length")
	// ErrNegativeCount indicates a tally below zero.
	ErrNegativeCount = errors.New("outcome: counts must be non-negative")
	// ErrEmptyCounts indicates no observations to normalize.
	ErrEmptyCounts = errors.New("outcome: cannot normalize empty counts")
	// ErrNotNormalized indicates probabilities that do not sum to 1.
	ErrNotNormalized = errors.New("outcome: probabilities must sum to 1")
	// ErrProbabilityRange indicates an entry outside [0, 1].
	ErrProbabilityRange = errors.New("outcome: probability entries must lie in [0, 1]")
	// ErrBadAlpha indicates a non-positive smoothing strength.
	ErrBadAlpha = errors.New("outcome: Bayesian smoothing requires alpha > 0")
	// ErrAlphabetSize indicates a full-alphabet request without a usable
	// total cardinality.
	ErrAlphabetSize = errors.New("outcome: full-alphabet counting needs total outcomes ≥ observed outcomes")
)

// CountMode selects how absent outcomes are materialized.
type CountMode int

const (
	// PositiveOnly keeps only outcomes observed at least once — counts
	// stay sparse and every downstream probability is strictly positive.
	PositiveOnly CountMode = iota

	// FullAlphabet pads the result with every possible outcome of the
	// space, zero tallies included. Requires the space to have a finite,
	// enumerable alphabet.
	FullAlphabet
)

// SeriesSpace is the outcome-space contract over one-dimensional series:
// enumerate the possible outcomes and count the realized ones.
type SeriesSpace interface {
	// TotalOutcomes reports the size of the full outcome alphabet.
	TotalOutcomes() int64
	// CountSeries tallies outcome occurrences over x per the mode.
	CountSeries(x []float64, mode CountMode) (Counts, error)
}

// PointSpace is the outcome-space contract over multivariate point sets
// (rows are samples). Implemented by rectangular binning.
type PointSpace interface {
	// BinOf maps a single point to its outcome symbol.
	BinOf(point []float64) (int64, error)
	// CountPoints tallies bin occupancy over the point set.
	CountPoints(points [][]float64, mode CountMode) (Counts, error)
}

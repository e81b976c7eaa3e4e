// Package binning - partition specs, options, and sentinel errors.
package binning

import "errors"

// Sentinel errors for grid construction and use.
var (
	// ErrNoPoints indicates an empty point set where a data-fitted
	// partition was requested.
	ErrNoPoints = errors.New("binning: point set must be non-empty")
	// ErrDimensionMismatch indicates a point or spec whose dimensionality
	// differs from the grid's.
	ErrDimensionMismatch = errors.New("binning: dimensionality mismatch")
	// ErrBadBins indicates a bin count < 1.
	ErrBadBins = errors.New("binning: bin count must be ≥ 1 per dimension")
	// ErrBadWidth indicates a non-positive bin width.
	ErrBadWidth = errors.New("binning: bin width must be > 0 per dimension")
	// ErrBadEdges indicates fewer than two edges or a non-increasing edge
	// sequence in some dimension.
	ErrBadEdges = errors.New("binning: each dimension needs ≥ 2 strictly increasing edges")
	// ErrOutOfRange indicates a point outside the grid's coverage.
	ErrOutOfRange = errors.New("binning: point outside the binned range")
	// ErrSymbolRange indicates a flat symbol outside [1, TotalOutcomes].
	ErrSymbolRange = errors.New("binning: symbol out of range")
)

// bigPrec is the mantissa precision for extended-precision boundary
// arithmetic in precise mode.
const bigPrec = 128

// Spec declares the partition of one grid, one entry per dimension.
// The set is closed: FixedBins, FixedWidths, ExplicitEdges.
type Spec interface {
	dims() int
	validate() error
}

// FixedBins partitions each dimension's data range into N[d] equal bins.
type FixedBins struct{ N []int }

// FixedWidths partitions each dimension into bins of width W[d], anchored
// at the data minimum; the bin count follows from the data range.
type FixedWidths struct{ W []float64 }

// ExplicitEdges partitions each dimension by the given edge sequence;
// bin i spans [E[d][i], E[d][i+1]).
type ExplicitEdges struct{ E [][]float64 }

func (s FixedBins) dims() int   { return len(s.N) }
func (s FixedWidths) dims() int { return len(s.W) }
func (s ExplicitEdges) dims() int {
	return len(s.E)
}

func (s FixedBins) validate() error {
	if len(s.N) == 0 {
		return ErrDimensionMismatch
	}
	for _, n := range s.N {
		if n < 1 {
			return ErrBadBins
		}
	}
	return nil
}

func (s FixedWidths) validate() error {
	if len(s.W) == 0 {
		return ErrDimensionMismatch
	}
	for _, w := range s.W {
		if w <= 0 {
			return ErrBadWidth
		}
	}
	return nil
}

func (s ExplicitEdges) validate() error {
	if len(s.E) == 0 {
		return ErrDimensionMismatch
	}
	for _, edges := range s.E {
		if len(edges) < 2 {
			return ErrBadEdges
		}
		for i := 1; i < len(edges); i++ {
			if edges[i] <= edges[i-1] {
				return ErrBadEdges
			}
		}
	}
	return nil
}

// Options tunes grid construction.
type Options struct {
	// Precise selects extended-precision min/edge-length arithmetic so
	// boundary points classify exactly. Fast mode (false) is documented
	// as liable to misclassify points sitting on bin boundaries.
	Precise bool
}

// DefaultOptions returns the recommended settings: Precise=true.
func DefaultOptions() Options {
	return Options{Precise: true}
}

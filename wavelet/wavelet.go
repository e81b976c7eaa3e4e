// Package wavelet post-processes wavelet-transform output into
// per-scale relative energies — the probability-like weights consumed
// by time-scale entropy estimators.
//
// The transform itself (e.g. a maximal-overlap DWT) is an external
// collaborator; this package only takes its coefficient matrix, one row
// per scale, and computes energy_at_scale / total_energy. The result is
// a valid probability vector over scales.
package wavelet

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/infodyn/outcome"
)

var (
	// ErrEmptyCoefficients indicates a coefficient matrix with no scales
	// or an empty scale row.
	ErrEmptyCoefficients = errors.New("wavelet: coefficient matrix must have at least one non-empty scale")
	// ErrZeroEnergy indicates an all-zero coefficient matrix; relative
	// energies are undefined.
	ErrZeroEnergy = errors.New("wavelet: total energy is zero")
)

// RelativeEnergies reduces a coefficient matrix (rows are scales) to the
// fraction of total energy carried per scale. Energies are sums of
// squared coefficients.
//
// Errors: ErrEmptyCoefficients, ErrZeroEnergy.
//
// Complexity: O(scales · samples).
func RelativeEnergies(coeffs [][]float64) (outcome.Probabilities, error) {
	if len(coeffs) == 0 {
		return outcome.Probabilities{}, ErrEmptyCoefficients
	}
	energies := make([]float64, len(coeffs))
	for s, row := range coeffs {
		if len(row) == 0 {
			return outcome.Probabilities{}, ErrEmptyCoefficients
		}
		energies[s] = floats.Dot(row, row)
	}
	if floats.Sum(energies) == 0 {
		return outcome.Probabilities{}, ErrZeroEnergy
	}
	return outcome.Normalize(energies)
}

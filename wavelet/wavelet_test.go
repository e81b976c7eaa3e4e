package wavelet_test

import (
	"testing"

	"github.com/katalvlaran/infodyn/wavelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelativeEnergies splits energy across scales proportionally to
// summed squared coefficients.
func TestRelativeEnergies(t *testing.T) {
	coeffs := [][]float64{
		{1, 1, 1, 1}, // energy 4
		{2, 0, 0, 0}, // energy 4
		{0, 0, 0, 0}, // energy 0
	}
	p, err := wavelet.RelativeEnergies(coeffs)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, []float64{0.5, 0.5, 0}, p.P)
}

// TestRelativeEnergies_Degenerate covers the error taxonomy.
func TestRelativeEnergies_Degenerate(t *testing.T) {
	_, err := wavelet.RelativeEnergies(nil)
	assert.ErrorIs(t, err, wavelet.ErrEmptyCoefficients)

	_, err = wavelet.RelativeEnergies([][]float64{{1}, {}})
	assert.ErrorIs(t, err, wavelet.ErrEmptyCoefficients)

	_, err = wavelet.RelativeEnergies([][]float64{{0, 0}, {0}})
	assert.ErrorIs(t, err, wavelet.ErrZeroEnergy)
}

package encoding_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/infodyn/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGaussianCDF_ReferenceSeries pins the canonical regression: the
// series below with c=5 must symbolize to [3 3 3 2 5 3 1] under moments
// fitted on the full series (sample standard deviation).
func TestGaussianCDF_ReferenceSeries(t *testing.T) {
	x := []float64{0.1, 0.4, 0.7, -2.1, 8.0, 0.9, -5.2}

	symbols, err := encoding.EncodeSeries(5, x)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 2, 5, 3, 1}, symbols)
}

// TestGaussianCDF_Construction exercises parameter validation.
func TestGaussianCDF_Construction(t *testing.T) {
	_, err := encoding.NewGaussianCDF(1, 0, 1)
	assert.ErrorIs(t, err, encoding.ErrCategories, "c must be ≥ 2")

	_, err = encoding.NewGaussianCDF(3, 0, 0)
	assert.ErrorIs(t, err, encoding.ErrZeroVariance, "σ == 0 is undefined")

	_, err = encoding.FitGaussianCDF(3, nil)
	assert.ErrorIs(t, err, encoding.ErrEmptyData)

	_, err = encoding.FitGaussianCDF(3, []float64{2, 2, 2, 2})
	assert.ErrorIs(t, err, encoding.ErrZeroVariance, "constant data has σ == 0")
}

// TestGaussianCDF_EncodeBounds checks clamping at both tails: far-out
// values must land in categories 1 and c, never outside.
func TestGaussianCDF_EncodeBounds(t *testing.T) {
	g, err := encoding.NewGaussianCDF(4, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, g.Encode(-50), "deep left tail is category 1")
	assert.Equal(t, 4, g.Encode(50), "deep right tail is category c")
	assert.Equal(t, 3, g.Encode(0.001), "just above the mean crosses Φ=0.5")
}

// TestGaussianCDF_DecodeInterval verifies the lossy inverse returns the
// correct [lo, hi) quantile subinterval and rejects bad symbols.
func TestGaussianCDF_DecodeInterval(t *testing.T) {
	g, err := encoding.NewGaussianCDF(5, 0, 1)
	require.NoError(t, err)

	lo, hi, err := g.Decode(3)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, lo, 1e-15)
	assert.Less(t, hi, 0.6, "hi excludes the right endpoint")
	assert.Greater(t, hi, 0.6-1e-9)
	assert.Equal(t, 0.6, math.Nextafter(hi, math.Inf(1)), "hi sits exactly one ulp below z/c")

	_, _, err = g.Decode(0)
	assert.ErrorIs(t, err, encoding.ErrSymbolRange)
	_, _, err = g.Decode(6)
	assert.ErrorIs(t, err, encoding.ErrSymbolRange)
}

// TestEncodeSeries_Constant documents the σ==0 special case: constant
// sequences symbolize to all-ones instead of erroring.
func TestEncodeSeries_Constant(t *testing.T) {
	symbols, err := encoding.EncodeSeries(4, []float64{7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, symbols)
}

package symbolic_test

import (
	"testing"

	"github.com/katalvlaran/infodyn/encoding"
	"github.com/katalvlaran/infodyn/lehmer"
	"github.com/katalvlaran/infodyn/outcome"
	"github.com/katalvlaran/infodyn/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrdinalSpace_MonotoneSeries has a single pattern: every window of
// a strictly increasing series is the identity permutation.
func TestOrdinalSpace_MonotoneSeries(t *testing.T) {
	sp, err := symbolic.NewOrdinalSpace(3, 1, lehmer.TieFirst, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(6), sp.TotalOutcomes())

	x := []float64{1, 2, 3, 4, 5, 6, 7}
	c, err := sp.CountSeries(x, outcome.PositiveOnly)
	require.NoError(t, err)
	require.Len(t, c.Outcomes, 1, "monotone series has one ordinal pattern")
	assert.Equal(t, int64(1), c.Outcomes[0], "the identity pattern is symbol 1")
	assert.Equal(t, 5, c.N[0], "n-(m-1)τ = 5 windows")

	perm, err := sp.Pattern(c.Outcomes[0])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, perm)
}

// TestOrdinalSpace_Alternating distinguishes up-down from down-up
// windows and checks probability normalization.
func TestOrdinalSpace_Alternating(t *testing.T) {
	sp, err := symbolic.NewOrdinalSpace(2, 1, lehmer.TieFirst, 0)
	require.NoError(t, err)

	x := []float64{0, 1, 0, 1, 0, 1, 0}
	p, err := outcome.Distribution(sp, x, nil, outcome.PositiveOnly)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	require.Len(t, p.P, 2)
	assert.InDelta(t, 0.5, p.P[0], 1e-12, "rises and falls are balanced")
	assert.InDelta(t, 0.5, p.P[1], 1e-12)
}

// TestOrdinalSpace_SeedReproducibility pins the seed-reproducibility
// contract: same seed ⇒ identical counts on tie-heavy data; different
// seeds may disagree.
func TestOrdinalSpace_SeedReproducibility(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	sp, err := symbolic.NewOrdinalSpace(3, 1, lehmer.TieRandom, 99)
	require.NoError(t, err)

	a, err := sp.CountSeries(x, outcome.FullAlphabet)
	require.NoError(t, err)
	b, err := sp.CountSeries(x, outcome.FullAlphabet)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce identical counts")
}

// TestOrdinalSpace_Errors covers embedding validation and short series.
func TestOrdinalSpace_Errors(t *testing.T) {
	_, err := symbolic.NewOrdinalSpace(1, 1, lehmer.TieFirst, 0)
	assert.ErrorIs(t, err, symbolic.ErrBadEmbedding)
	_, err = symbolic.NewOrdinalSpace(3, 0, lehmer.TieFirst, 0)
	assert.ErrorIs(t, err, symbolic.ErrBadEmbedding)
	_, err = symbolic.NewOrdinalSpace(lehmer.MaxOrder+1, 1, lehmer.TieFirst, 0)
	assert.ErrorIs(t, err, lehmer.ErrOrder)

	sp, err := symbolic.NewOrdinalSpace(4, 3, lehmer.TieFirst, 0)
	require.NoError(t, err)
	_, err = sp.CountSeries([]float64{1, 2, 3, 4, 5}, outcome.PositiveOnly)
	assert.ErrorIs(t, err, symbolic.ErrSeriesTooShort, "(m-1)τ+1 = 10 > 5")
}

// TestDispersionSpace_MissingPatternScenario pins the reference case:
// the pre-discretized sequence below with c=3, m=2 misses exactly one of
// the 9 possible patterns — (2,2).
func TestDispersionSpace_MissingPatternScenario(t *testing.T) {
	sp, err := symbolic.NewDispersionSpaceSkipEncoding(3, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), sp.TotalOutcomes())

	x := []float64{3, 2, 1, 1, 1, 2, 3, 3, 2, 1, 3, 1}
	missing, err := sp.MissingPatterns(x)
	require.NoError(t, err)
	require.Len(t, missing, 1, "exactly one pattern never occurs")
	assert.Equal(t, []int{2, 2}, missing[0])
}

// TestDispersionSpace_PositiveOnly guarantees strictly positive
// probabilities in the default mode and zero padding only on request.
func TestDispersionSpace_PositiveOnly(t *testing.T) {
	sp, err := symbolic.NewDispersionSpaceSkipEncoding(3, 2, 1)
	require.NoError(t, err)
	x := []float64{3, 2, 1, 1, 1, 2, 3, 3, 2, 1, 3, 1}

	p, err := outcome.Distribution(sp, x, nil, outcome.PositiveOnly)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Len(t, p.P, 8, "8 of 9 patterns occur")
	for _, v := range p.P {
		assert.Greater(t, v, 0.0, "absent patterns are omitted, not zeroed")
	}

	full, err := sp.CountSeries(x, outcome.FullAlphabet)
	require.NoError(t, err)
	assert.Len(t, full.Outcomes, 9, "padded alphabet on explicit request")
}

// TestDispersionSpace_GaussianEncoding runs the full pipeline (moments
// fitted on the series) and checks normalization only — symbol identity
// is covered by the encoding package.
func TestDispersionSpace_GaussianEncoding(t *testing.T) {
	sp, err := symbolic.NewDispersionSpace(3, 2, 2)
	require.NoError(t, err)

	x := []float64{0.1, 0.4, 0.7, -2.1, 8.0, 0.9, -5.2, 1.1, 0.2, -0.3}
	p, err := outcome.Distribution(sp, x, nil, outcome.PositiveOnly)
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

// TestDispersionSpace_SkipEncodingValidation covers the skip-encoding
// error taxonomy: absent alphabet at construction, alien categories at
// computation.
func TestDispersionSpace_SkipEncodingValidation(t *testing.T) {
	_, err := symbolic.NewDispersionSpaceSkipEncoding(0, 2, 1)
	assert.ErrorIs(t, err, symbolic.ErrNoAlphabet)

	sp, err := symbolic.NewDispersionSpaceSkipEncoding(2, 2, 1)
	require.NoError(t, err)
	_, err = sp.CountSeries([]float64{1, 2, 3}, outcome.PositiveOnly)
	assert.ErrorIs(t, err, symbolic.ErrCategoryRange, "category 3 exceeds c=2")
	_, err = sp.CountSeries([]float64{1, 1.5}, outcome.PositiveOnly)
	assert.ErrorIs(t, err, symbolic.ErrCategoryRange, "non-integer input under skip-encoding")
}

// TestSwapSpace_Counts checks swap tallies on a short series.
func TestSwapSpace_Counts(t *testing.T) {
	sp, err := symbolic.NewSwapSpace(3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sp.TotalOutcomes(), "alphabet {0,1,2,3}")

	// Windows of (3,1,2,1): (3,1,2)→2 swaps, (1,2,1)→1 swap.
	c, err := sp.CountSeries([]float64{3, 1, 2, 1}, outcome.PositiveOnly)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, c.Outcomes, "symbols are swapcount+1")
	assert.Equal(t, []int{1, 1}, c.N)

	swaps, err := sp.Swaps(c.Outcomes[1])
	require.NoError(t, err)
	assert.Equal(t, 2, swaps)

	_, err = sp.CountSeries([]float64{1, 2}, outcome.PositiveOnly)
	assert.ErrorIs(t, err, symbolic.ErrSeriesTooShort)
}

// TestDispersionSpace_AlphabetOverflow rejects c, m combinations whose
// c^m pattern alphabet would wrap the int64 symbol range; a wrapped
// total would poison missing-pattern and full-alphabet accounting.
func TestDispersionSpace_AlphabetOverflow(t *testing.T) {
	_, err := symbolic.NewDispersionSpace(10, 20, 1)
	assert.ErrorIs(t, err, encoding.ErrAlphabetOverflow)
	_, err = symbolic.NewDispersionSpaceSkipEncoding(10, 20, 1)
	assert.ErrorIs(t, err, encoding.ErrAlphabetOverflow)

	sp, err := symbolic.NewDispersionSpace(3, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(81), sp.TotalOutcomes())
}

package encoding

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// GaussianCDF bins a scalar by its quantile under a fitted normal
// distribution: y = Φ((x-μ)/σ), category z = ⌊y·c⌋ + 1 ∈ [1, c].
//
// The moments are fixed at construction (either supplied or fitted once
// from a dataset via FitGaussianCDF) so repeated Encode calls never
// recompute statistics. Immutable after construction.
type GaussianCDF struct {
	c      int
	normal distuv.Normal
}

// NewGaussianCDF builds a codec with explicit moments.
//
// Errors:
//   - ErrCategories   — c < 2.
//   - ErrZeroVariance — sigma ≤ 0.
func NewGaussianCDF(c int, mu, sigma float64) (GaussianCDF, error) {
	if c < 2 {
		return GaussianCDF{}, ErrCategories
	}
	if sigma <= 0 {
		return GaussianCDF{}, ErrZeroVariance
	}
	return GaussianCDF{c: c, normal: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// FitGaussianCDF computes μ and the sample standard deviation of data
// once, up front, and builds the codec from them.
//
// Errors:
//   - ErrCategories   — c < 2.
//   - ErrEmptyData    — len(data) == 0.
//   - ErrZeroVariance — constant data (σ == 0); callers wanting the
//     all-category-1 convention should use EncodeSeries instead.
//
// Complexity: O(n) over the dataset.
func FitGaussianCDF(c int, data []float64) (GaussianCDF, error) {
	if c < 2 {
		return GaussianCDF{}, ErrCategories
	}
	if len(data) == 0 {
		return GaussianCDF{}, ErrEmptyData
	}
	mu, sigma := stat.MeanStdDev(data, nil)
	if sigma == 0 || math.IsNaN(sigma) {
		return GaussianCDF{}, ErrZeroVariance
	}
	return GaussianCDF{c: c, normal: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// Categories returns the category count c.
func (g GaussianCDF) Categories() int { return g.c }

// Encode maps x to its category in [1, c]. The y == 1 endpoint (x = +∞
// in the limit) maps to category c via clamping.
//
// Complexity: O(1).
func (g GaussianCDF) Encode(x float64) int {
	y := g.normal.CDF(x)
	z := int(math.Floor(y*float64(g.c))) + 1
	if z > g.c {
		z = g.c
	}
	if z < 1 {
		z = 1
	}
	return z
}

// Decode returns the [lo, hi) subinterval of [0, 1) that category z could
// have come from. This inverse is lossy: the exact quantile inside the
// interval is discarded by Encode.
//
// Errors: ErrSymbolRange when z ∉ [1, c].
func (g GaussianCDF) Decode(z int) (lo, hi float64, err error) {
	if z < 1 || z > g.c {
		return 0, 0, ErrSymbolRange
	}
	lo = float64(z-1) / float64(g.c)
	// One ULP below z/c so the interval stays right-open.
	hi = math.Nextafter(float64(z)/float64(g.c), math.Inf(-1))
	return lo, hi, nil
}

// EncodeSeries symbolizes a whole series with moments fitted on that
// series. Constant sequences (σ == 0) are mapped to all-ones — the
// documented special case for data where CDF encoding is undefined.
//
// Errors: ErrCategories, ErrEmptyData.
//
// Complexity: O(n).
func EncodeSeries(c int, data []float64) ([]int, error) {
	g, err := FitGaussianCDF(c, data)
	if err != nil {
		if err == ErrZeroVariance {
			out := make([]int, len(data))
			for i := range out {
				out[i] = 1
			}
			return out, nil
		}
		return nil, err
	}
	out := make([]int, len(data))
	for i, x := range data {
		out[i] = g.Encode(x)
	}
	return out, nil
}

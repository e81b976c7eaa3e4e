package measure

import (
	"math"

	"github.com/katalvlaran/infodyn/outcome"
)

// Shannon is the Shannon entropy -Σ pᵢ log_b pᵢ.
type Shannon struct {
	base float64
}

// NewShannon builds the measure for logarithm base b (2 for bits, e for
// nats).
//
// Errors: ErrBadParameter for b ≤ 0 or b == 1.
func NewShannon(base float64) (Shannon, error) {
	if !validBase(base) {
		return Shannon{}, ErrBadParameter
	}
	return Shannon{base: base}, nil
}

// Name implements Measure.
func (Shannon) Name() string { return "Shannon" }

// Evaluate computes -Σ p log_b p, skipping zero entries (0·log 0 → 0).
func (s Shannon) Evaluate(p outcome.Probabilities) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	h := 0.0
	for _, v := range p.P {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}
	return logBase(h, s.base), nil
}

// Maximum is log_b L, attained at the uniform distribution.
func (s Shannon) Maximum(L int) (float64, error) {
	if L < 1 {
		return 0, ErrBadSupport
	}
	return logBase(math.Log(float64(L)), s.base), nil
}

// ShannonExtropy is the complementary-event dual of Shannon entropy:
// J = -Σ (1-pᵢ) log_b (1-pᵢ).
type ShannonExtropy struct {
	base float64
}

// NewShannonExtropy builds the extropy for logarithm base b.
//
// Errors: ErrBadParameter for b ≤ 0 or b == 1.
func NewShannonExtropy(base float64) (ShannonExtropy, error) {
	if !validBase(base) {
		return ShannonExtropy{}, ErrBadParameter
	}
	return ShannonExtropy{base: base}, nil
}

// Name implements Measure.
func (ShannonExtropy) Name() string { return "ShannonExtropy" }

// Evaluate computes -Σ (1-p) log_b (1-p). Entries with p == 1 contribute
// their limit, 0, mirroring the zero-entry convention.
func (e ShannonExtropy) Evaluate(p outcome.Probabilities) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	j := 0.0
	for _, v := range p.P {
		q := 1 - v
		if q > 0 {
			j -= q * math.Log(q)
		}
	}
	return logBase(j, e.base), nil
}

// Maximum is (L-1)·log_b(L/(L-1)), the extropy of the uniform
// distribution; 0 for L == 1.
func (e ShannonExtropy) Maximum(L int) (float64, error) {
	if L < 1 {
		return 0, ErrBadSupport
	}
	if L == 1 {
		return 0, nil
	}
	l := float64(L)
	return logBase((l-1)*math.Log(l/(l-1)), e.base), nil
}

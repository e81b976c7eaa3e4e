package measure

import (
	"math"

	"github.com/katalvlaran/infodyn/outcome"
)

// Renyi is the Rényi entropy of order q: (1-q)⁻¹ log_b Σ pᵢᑫ.
// The q → 1 limit is Shannon entropy — use that measure directly; q == 1
// is rejected here rather than silently substituted.
type Renyi struct {
	q    float64
	base float64
}

// NewRenyi builds the measure for order q and logarithm base b.
//
// Errors: ErrBadParameter for q ≤ 0, q == 1, or an invalid base.
func NewRenyi(q, base float64) (Renyi, error) {
	if q <= 0 || q == 1 || !validBase(base) {
		return Renyi{}, ErrBadParameter
	}
	return Renyi{q: q, base: base}, nil
}

// Name implements Measure.
func (Renyi) Name() string { return "Renyi" }

// Evaluate computes (1-q)⁻¹ log_b Σ pᑫ over the positive entries.
func (r Renyi) Evaluate(p outcome.Probabilities) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range p.P {
		if v > 0 {
			sum += math.Pow(v, r.q)
		}
	}
	return logBase(math.Log(sum), r.base) / (1 - r.q), nil
}

// Maximum is log_b L for every order q, attained at uniformity.
func (r Renyi) Maximum(L int) (float64, error) {
	if L < 1 {
		return 0, ErrBadSupport
	}
	return logBase(math.Log(float64(L)), r.base), nil
}

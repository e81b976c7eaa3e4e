package measure

import (
	"math"

	"github.com/katalvlaran/infodyn/outcome"
)

// Tsallis is the Tsallis entropy S_q = k(q-1)⁻¹ (1 - Σ pᵢᑫ), with
// Boltzmann-like scale k. The q → 1 limit is k times Shannon entropy in
// nats; q == 1 is rejected, not substituted.
type Tsallis struct {
	q float64
	k float64
}

// NewTsallis builds the measure for order q and scale k.
//
// Errors: ErrBadParameter for q ≤ 0, q == 1, or k ≤ 0.
func NewTsallis(q, k float64) (Tsallis, error) {
	if q <= 0 || q == 1 || k <= 0 {
		return Tsallis{}, ErrBadParameter
	}
	return Tsallis{q: q, k: k}, nil
}

// Name implements Measure.
func (Tsallis) Name() string { return "Tsallis" }

// Evaluate computes k(q-1)⁻¹ (1 - Σ pᑫ) over the positive entries.
func (t Tsallis) Evaluate(p outcome.Probabilities) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range p.P {
		if v > 0 {
			sum += math.Pow(v, t.q)
		}
	}
	return t.k / (t.q - 1) * (1 - sum), nil
}

// Maximum is k(L^(1-q) - 1)/(1-q), the Tsallis entropy of the uniform
// distribution over L outcomes.
func (t Tsallis) Maximum(L int) (float64, error) {
	if L < 1 {
		return 0, ErrBadSupport
	}
	l := float64(L)
	return t.k * (math.Pow(l, 1-t.q) - 1) / (1 - t.q), nil
}

// Curado is the Curado entropy Σ (1 - e^(-b·pᵢ)) + e^(-b) - 1 with
// shape parameter b > 0. Not log-based; no base parameter.
type Curado struct {
	b float64
}

// NewCurado builds the measure for shape b.
//
// Errors: ErrBadParameter for b ≤ 0.
func NewCurado(b float64) (Curado, error) {
	if b <= 0 {
		return Curado{}, ErrBadParameter
	}
	return Curado{b: b}, nil
}

// Name implements Measure.
func (Curado) Name() string { return "Curado" }

// Evaluate computes Σ (1 - e^(-b·p)) + e^(-b) - 1; zero entries
// contribute 1 - e⁰ = 0 and are skipped outright.
func (c Curado) Evaluate(p outcome.Probabilities) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range p.P {
		if v > 0 {
			sum += 1 - math.Exp(-c.b*v)
		}
	}
	return sum + math.Exp(-c.b) - 1, nil
}

// Maximum is L(1 - e^(-b/L)) + e^(-b) - 1, attained at uniformity.
func (c Curado) Maximum(L int) (float64, error) {
	if L < 1 {
		return 0, ErrBadSupport
	}
	l := float64(L)
	return l*(1-math.Exp(-c.b/l)) + math.Exp(-c.b) - 1, nil
}

// Kaniadakis is the κ-deformed entropy -Σ pᵢ·(pᵢ^κ - pᵢ^(-κ))/(2κ).
// No closed-form maximum is known for general κ and support size;
// Maximum reports ErrNoMaximum rather than guessing.
type Kaniadakis struct {
	kappa float64
}

// NewKaniadakis builds the measure for deformation κ ∈ (0, 1).
//
// Errors: ErrBadParameter for κ outside (0, 1).
func NewKaniadakis(kappa float64) (Kaniadakis, error) {
	if kappa <= 0 || kappa >= 1 {
		return Kaniadakis{}, ErrBadParameter
	}
	return Kaniadakis{kappa: kappa}, nil
}

// Name implements Measure.
func (Kaniadakis) Name() string { return "Kaniadakis" }

// Evaluate computes -Σ p·(p^κ - p^(-κ))/(2κ) over the positive entries.
func (k Kaniadakis) Evaluate(p outcome.Probabilities) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range p.P {
		if v > 0 {
			sum -= v * (math.Pow(v, k.kappa) - math.Pow(v, -k.kappa)) / (2 * k.kappa)
		}
	}
	return sum, nil
}

// Maximum has no known closed form: the explicit not-implemented signal
// required by the protocol, never a wrong number.
func (Kaniadakis) Maximum(L int) (float64, error) {
	if L < 1 {
		return 0, ErrBadSupport
	}
	return 0, ErrNoMaximum
}

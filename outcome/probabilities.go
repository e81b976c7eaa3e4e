package outcome

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Probabilities is a normalized probability mass function, optionally
// still tagged with the outcomes that produced it (Outcomes may be nil
// for label-free use). Invariants: entries in [0, 1], sum 1 within
// NormTolerance, len(Outcomes) == len(P) when tagged.
type Probabilities struct {
	Outcomes []int64
	P        []float64
}

// Validate checks the Probabilities invariants.
func (p Probabilities) Validate() error {
	if p.Outcomes != nil && len(p.Outcomes) != len(p.P) {
		return ErrLengthMismatch
	}
	if len(p.P) == 0 {
		return ErrEmptyCounts
	}
	for _, v := range p.P {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return ErrProbabilityRange
		}
	}
	if math.Abs(floats.Sum(p.P)-1) > NormTolerance {
		return ErrNotNormalized
	}
	return nil
}

// Estimator converts raw counts into probabilities. The set is closed:
// RelativeFrequency and BayesianSmoothing are the only variants.
type Estimator interface {
	estimate(c Counts) (Probabilities, error)
}

// RelativeFrequency is the maximum-likelihood estimator: pᵢ = nᵢ / N.
type RelativeFrequency struct{}

// BayesianSmoothing regularizes with additive pseudo-counts:
// pᵢ = (nᵢ + α) / (N + α·L), L the number of listed outcomes. Pulls the
// estimate toward uniform; α must be positive.
type BayesianSmoothing struct {
	Alpha float64
}

func (RelativeFrequency) estimate(c Counts) (Probabilities, error) {
	total := c.Total()
	if total == 0 {
		return Probabilities{}, ErrEmptyCounts
	}
	p := Probabilities{Outcomes: c.Outcomes, P: make([]float64, len(c.N))}
	for i, n := range c.N {
		p.P[i] = float64(n) / float64(total)
	}
	return p, nil
}

func (b BayesianSmoothing) estimate(c Counts) (Probabilities, error) {
	if b.Alpha <= 0 {
		return Probabilities{}, ErrBadAlpha
	}
	total := c.Total()
	if total == 0 && len(c.N) == 0 {
		return Probabilities{}, ErrEmptyCounts
	}
	l := float64(len(c.N))
	denom := float64(total) + b.Alpha*l
	p := Probabilities{Outcomes: c.Outcomes, P: make([]float64, len(c.N))}
	for i, n := range c.N {
		p.P[i] = (float64(n) + b.Alpha) / denom
	}
	return p, nil
}

// Estimate converts counts into a normalized PMF under the given
// estimator (nil ⇒ RelativeFrequency). The result always passes
// Validate; any violation of the Counts invariants fails fast.
func Estimate(est Estimator, c Counts) (Probabilities, error) {
	if err := c.Validate(); err != nil {
		return Probabilities{}, err
	}
	if est == nil {
		est = RelativeFrequency{}
	}
	p, err := est.estimate(c)
	if err != nil {
		return Probabilities{}, err
	}
	return p, p.Validate()
}

// Normalize rescales a non-negative weight vector to sum to 1 in place
// and returns it as Probabilities. Shared by the invariant-measure
// solver, which renormalizes iterates repeatedly.
//
// Errors: ErrEmptyCounts on empty input, ErrProbabilityRange on negative
// or non-finite weights, ErrNotNormalized when the weights sum to 0.
func Normalize(w []float64) (Probabilities, error) {
	if len(w) == 0 {
		return Probabilities{}, ErrEmptyCounts
	}
	for _, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Probabilities{}, ErrProbabilityRange
		}
	}
	sum := floats.Sum(w)
	if sum == 0 {
		return Probabilities{}, ErrNotNormalized
	}
	floats.Scale(1/sum, w)
	return Probabilities{P: w}, nil
}

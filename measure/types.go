// Package measure - protocol contract and sentinel errors.
package measure

import (
	"errors"
	"math"

	"github.com/katalvlaran/infodyn/outcome"
)

// Sentinel errors for measure construction and evaluation.
var (
	// ErrBadParameter indicates an invalid measure parameter (base ≤ 0 or
	// base == 1, order q ≤ 0 or q == 1 where the limit form is a
	// different measure, non-positive scale, …).
	ErrBadParameter = errors.New("measure: invalid measure parameter")
	// ErrNoMaximum indicates a measure with no known closed-form supremum
	// for the requested support size.
	ErrNoMaximum = errors.New("measure: no known maximum for this measure")
	// ErrBadSupport indicates a support size L < 1.
	ErrBadSupport = errors.New("measure: support size L must be ≥ 1")
	// ErrZeroMaximum indicates normalization against a zero maximum
	// (support size 1 for most measures).
	ErrZeroMaximum = errors.New("measure: maximum is zero, normalized value undefined")
	// ErrEmptySequence indicates an empty symbol sequence.
	ErrEmptySequence = errors.New("measure: symbol sequence must be non-empty")
)

// Measure is the uniform evaluation protocol. Implementations are
// immutable parameter bundles carrying no data; the set is closed by
// convention — new measures are new types in this package.
type Measure interface {
	// Name identifies the measure in diagnostics.
	Name() string
	// Evaluate computes the measure on a validated PMF, skipping
	// zero-probability entries.
	Evaluate(p outcome.Probabilities) (float64, error)
	// Maximum returns the supremum over PMFs with support size L, or
	// ErrNoMaximum when no closed form is known.
	Maximum(L int) (float64, error)
}

// Normalized computes Evaluate(p) / Maximum(L). Defined only when the
// measure has a maximum for L and that maximum is nonzero.
func Normalized(m Measure, p outcome.Probabilities, L int) (float64, error) {
	max, err := m.Maximum(L)
	if err != nil {
		return 0, err
	}
	if max == 0 {
		return 0, ErrZeroMaximum
	}
	v, err := m.Evaluate(p)
	if err != nil {
		return 0, err
	}
	return v / max, nil
}

// logBase converts a natural logarithm into base b. All log-based
// measures funnel through this, which is what makes the base-scaling
// law (value·ln b invariant across bases) hold exactly.
func logBase(ln, b float64) float64 {
	return ln / math.Log(b)
}

// validBase reports whether b is a legal logarithm base.
func validBase(b float64) bool {
	return b > 0 && b != 1
}

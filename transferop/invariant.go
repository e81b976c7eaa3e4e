package transferop

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/infodyn/outcome"
)

// InvariantMeasure estimates the stationary distribution ρ = ρ·P by
// power iteration from a seeded random start.
//
// The iteration runs up to opts.NMax steps; convergence is declared
// when the relative change ‖ρ′−ρ‖₂ / ‖ρ‖₂ drops below opts.Tolerance.
// Floating-point drift is corrected on a schedule derived from
// opts.Delta: whenever the mass deviates from 1 by more than Delta, the
// vector is renormalized before continuing. After the loop, entries
// below Tolerance/N are treated as numerical noise and zeroed, and the
// vector is renormalized one final time.
//
// Non-convergence is NOT an error: the report carries Converged=false
// together with the final residual, and the returned measure is the
// best available estimate. Callers that need a guarantee must inspect
// the report.
//
// Complexity: O(NMax · nnz(P)).
func (op *TransferOperator) InvariantMeasure(opts SolveOptions) (outcome.Probabilities, InvariantReport, error) {
	var report InvariantReport
	if opts.NMax < 1 || opts.Tolerance <= 0 || opts.Delta <= 0 {
		return outcome.Probabilities{}, report, ErrBadSolveOptions
	}
	n := len(op.bins)
	if n == 0 {
		return outcome.Probabilities{}, report, ErrShortTrajectory
	}

	rng := rngFromSeed(opts.Seed, streamSolve)
	rho := make([]float64, n)
	for i := range rho {
		rho[i] = rng.Float64()
	}
	floats.Scale(1/floats.Sum(rho), rho)

	next := make([]float64, n)
	interval := max(1, int(float64(opts.NMax)*opts.Delta))
	report.Residual = math.Inf(1)
	for it := 1; it <= opts.NMax; it++ {
		op.propagate(rho, next)
		report.Iterations = it
		report.Residual = floats.Distance(next, rho, 2) / floats.Norm(rho, 2)
		rho, next = next, rho
		if report.Residual < opts.Tolerance {
			report.Converged = true
			break
		}
		if it%interval == 0 {
			if sum := floats.Sum(rho); math.Abs(sum-1) > opts.Delta {
				floats.Scale(1/sum, rho)
			}
		}
	}

	// Noise floor: entries the iteration cannot distinguish from zero.
	floor := opts.Tolerance / float64(n)
	for i, v := range rho {
		if v < floor {
			rho[i] = 0
		}
	}
	floats.Scale(1/floats.Sum(rho), rho)

	p := outcome.Probabilities{Outcomes: op.Bins(), P: rho}
	if err := p.Validate(); err != nil {
		return outcome.Probabilities{}, report, err
	}
	return p, report, nil
}

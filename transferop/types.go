// Package transferop - options, boundary policies, and sentinel errors.
package transferop

import "errors"

// Sentinel errors for operator construction and the invariant solve.
var (
	// ErrShortTrajectory indicates fewer than two samples — no
	// transition can be formed.
	ErrShortTrajectory = errors.New("transferop: trajectory must contain at least two samples")
	// ErrBadBoundary indicates an unknown boundary-condition policy.
	ErrBadBoundary = errors.New("transferop: unknown boundary condition, want Circular or Random")
	// ErrBadSolveOptions indicates a non-positive iteration cap,
	// tolerance, or drift threshold.
	ErrBadSolveOptions = errors.New("transferop: NMax, Tolerance and Delta must all be positive")
	// ErrBadSimplices indicates simplex index lists of the wrong arity or
	// indexing past the usable trajectory range.
	ErrBadSimplices = errors.New("transferop: simplices must list dim+1 distinct vertex indices within the trajectory")
	// ErrDegenerateSimplex indicates a simplex with (numerically) zero
	// volume whose barycentric system cannot be solved.
	ErrDegenerateSimplex = errors.New("transferop: degenerate simplex, barycentric coordinates undefined")
	// ErrOutsidePartition indicates a forward image that left the
	// partition entirely, so no transition weight can be estimated.
	ErrOutsidePartition = errors.New("transferop: simplex image lies outside the partition")
	// ErrBadSubdivision indicates a barycentric subdivision level < 1.
	ErrBadSubdivision = errors.New("transferop: subdivision level must be ≥ 1")
)

// Boundary fixes the successor of the final trajectory sample.
type Boundary int

const (
	// Circular wires the last sample to the very first bin visited —
	// the deterministic default (reproducible without an RNG).
	Circular Boundary = iota

	// Random draws the successor uniformly from the visited bins,
	// using the seeded build RNG.
	Random
)

// Options tunes operator construction.
type Options struct {
	// Boundary names the successor policy for the final sample.
	Boundary Boundary
	// Seed feeds the build RNG (Random boundary). 0 ⇒ fixed default seed.
	Seed int64
	// Warnf receives non-fatal precision warnings (fast-mode grids).
	// nil disables warning delivery; computation proceeds either way.
	Warnf func(format string, args ...any)
}

// DefaultOptions returns the recommended build settings:
// Circular boundary, default seed, no warning sink.
func DefaultOptions() Options {
	return Options{Boundary: Circular}
}

// SolveOptions tunes the power-iteration invariant-measure solve.
type SolveOptions struct {
	// NMax caps the number of ρ·P products.
	NMax int
	// Tolerance is the relative-change convergence threshold, and also
	// sets the post-solve noise floor (entries < Tolerance/N drop to 0).
	Tolerance float64
	// Delta bounds tolerated column-sum drift between renormalizations;
	// it also paces how often drift is checked.
	Delta float64
	// Seed feeds the initial random distribution. 0 ⇒ fixed default
	// seed, making the default solve fully deterministic.
	Seed int64
}

// DefaultSolveOptions returns the standard solver settings:
// NMax=200, Tolerance=1e-8, Delta=1e-8, deterministic default seed.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{NMax: 200, Tolerance: 1e-8, Delta: 1e-8}
}

// InvariantReport describes how the solve ended. The distribution is
// returned in both cases; Converged distinguishes "met tolerance" from
// "hit the iteration cap with the best-effort iterate".
type InvariantReport struct {
	Converged  bool
	Iterations int
	Residual   float64
}

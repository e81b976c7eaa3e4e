package transferop_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/infodyn/binning"
	"github.com/katalvlaran/infodyn/transferop"
)

// rowSums collects the row sums of the dense export.
func rowSums(op *transferop.TransferOperator) []float64 {
	d := op.Dense()
	n, _ := d.Dims()
	sums := make([]float64, n)
	for i := 0; i < n; i++ {
		sums[i] = floats.Sum(d.RawRowView(i))
	}
	return sums
}

func TestBuildFromSymbols_CircularBoundary(t *testing.T) {
	// 1→1, 1→2, 2→2, then the circular closure 2→1.
	op, err := transferop.BuildFromSymbols([]int64{1, 1, 2, 2}, transferop.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, op.N())
	assert.Equal(t, []int64{1, 2}, op.Bins())
	require.NoError(t, op.Validate())

	d := op.Dense()
	assert.InDelta(t, 0.5, d.At(0, 0), 1e-15)
	assert.InDelta(t, 0.5, d.At(0, 1), 1e-15)
	assert.InDelta(t, 0.5, d.At(1, 0), 1e-15)
	assert.InDelta(t, 0.5, d.At(1, 1), 1e-15)
}

func TestBuildFromSymbols_SkipsUnvisitedBins(t *testing.T) {
	// Symbols 1 and 7 visited out of a nominally larger alphabet: only
	// two rows, labelled ascending.
	op, err := transferop.BuildFromSymbols([]int64{7, 1, 7, 1}, transferop.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7}, op.Bins())
	require.NoError(t, op.Validate())
}

func TestBuildFromSymbols_RandomBoundarySeeded(t *testing.T) {
	symbols := []int64{3, 1, 2, 3, 1, 2, 3}
	opts := transferop.Options{Boundary: transferop.Random, Seed: 42}

	a, err := transferop.BuildFromSymbols(symbols, opts)
	require.NoError(t, err)
	b, err := transferop.BuildFromSymbols(symbols, opts)
	require.NoError(t, err)

	require.NoError(t, a.Validate())
	assert.True(t, mat.Equal(a.Dense(), b.Dense()), "same seed must rebuild the identical operator")
}

func TestBuildFromSymbols_Errors(t *testing.T) {
	_, err := transferop.BuildFromSymbols([]int64{1}, transferop.DefaultOptions())
	assert.ErrorIs(t, err, transferop.ErrShortTrajectory)

	_, err = transferop.BuildFromSymbols([]int64{1, 2}, transferop.Options{Boundary: transferop.Boundary(7)})
	assert.ErrorIs(t, err, transferop.ErrBadBoundary)
}

func TestBuild_FromGridTrajectory(t *testing.T) {
	// A 1-D orbit bouncing across [0, 4): with four unit bins every row
	// of the estimated operator must be a probability vector.
	points := [][]float64{{0.1}, {1.2}, {2.3}, {3.4}, {0.6}, {1.7}, {2.8}, {0.2}, {3.9}, {1.1}}
	grid, err := binning.Fit(binning.FixedBins{N: []int{4}}, points, binning.DefaultOptions())
	require.NoError(t, err)

	op, err := transferop.Build(points, grid, transferop.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, op.N())
	require.NoError(t, op.Validate())
	for i, sum := range rowSums(op) {
		assert.InDeltaf(t, 1.0, sum, 1e-6, "row %d must be stochastic", i)
	}
}

func TestBuild_WarnsOnFastGrid(t *testing.T) {
	points := [][]float64{{0.0}, {0.5}, {1.0}, {0.25}}

	fast, err := binning.Fit(binning.FixedBins{N: []int{2}}, points, binning.Options{Precise: false})
	require.NoError(t, err)
	precise, err := binning.Fit(binning.FixedBins{N: []int{2}}, points, binning.DefaultOptions())
	require.NoError(t, err)

	var warnings []string
	opts := transferop.DefaultOptions()
	opts.Warnf = func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	_, err = transferop.Build(points, fast, opts)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "fast")

	warnings = warnings[:0]
	_, err = transferop.Build(points, precise, opts)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestInvariantMeasure_ConvergesToStationary(t *testing.T) {
	// The circular chain from the boundary test has the doubly
	// stochastic matrix [[.5,.5],[.5,.5]]; its stationary distribution
	// is uniform and power iteration reaches it in one product.
	op, err := transferop.BuildFromSymbols([]int64{1, 1, 2, 2}, transferop.DefaultOptions())
	require.NoError(t, err)

	p, report, err := op.InvariantMeasure(transferop.DefaultSolveOptions())
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.Less(t, report.Residual, 1e-8)
	assert.GreaterOrEqual(t, report.Iterations, 1)

	require.NoError(t, p.Validate())
	assert.Equal(t, []int64{1, 2}, p.Outcomes)
	assert.InDelta(t, 0.5, p.P[0], 1e-8)
	assert.InDelta(t, 0.5, p.P[1], 1e-8)
}

func TestInvariantMeasure_ReportsNonConvergence(t *testing.T) {
	// A deterministic 2-cycle has no attracting fixed point for power
	// iteration from a generic start: the iterate oscillates and the
	// solve must say so instead of pretending.
	op, err := transferop.BuildFromSymbols([]int64{1, 2, 1, 2, 1, 2}, transferop.DefaultOptions())
	require.NoError(t, err)

	solve := transferop.DefaultSolveOptions()
	solve.Seed = 99
	p, report, err := op.InvariantMeasure(solve)
	require.NoError(t, err)

	assert.False(t, report.Converged)
	assert.Equal(t, solve.NMax, report.Iterations)
	assert.InDelta(t, 1.0, floats.Sum(p.P), 1e-9, "best-effort iterate is still normalized")
}

func TestInvariantMeasure_SeedDeterminism(t *testing.T) {
	op, err := transferop.BuildFromSymbols([]int64{1, 1, 2, 3, 2, 1, 3, 3, 1, 2}, transferop.DefaultOptions())
	require.NoError(t, err)

	solve := transferop.DefaultSolveOptions()
	solve.Seed = 7
	p1, r1, err := op.InvariantMeasure(solve)
	require.NoError(t, err)
	p2, r2, err := op.InvariantMeasure(solve)
	require.NoError(t, err)

	assert.Equal(t, p1.P, p2.P, "identical seeds must agree bit for bit")
	assert.Equal(t, r1, r2)

	// A different seed starts elsewhere but lands on the same
	// stationary distribution.
	solve.Seed = 1234
	p3, r3, err := op.InvariantMeasure(solve)
	require.NoError(t, err)
	require.True(t, r1.Converged)
	require.True(t, r3.Converged)
	for i := range p1.P {
		assert.InDelta(t, p1.P[i], p3.P[i], 1e-6)
	}
}

func TestInvariantMeasure_BadOptions(t *testing.T) {
	op, err := transferop.BuildFromSymbols([]int64{1, 2}, transferop.DefaultOptions())
	require.NoError(t, err)

	for _, solve := range []transferop.SolveOptions{
		{NMax: 0, Tolerance: 1e-8, Delta: 1e-8},
		{NMax: 100, Tolerance: 0, Delta: 1e-8},
		{NMax: 100, Tolerance: 1e-8, Delta: -1},
	} {
		_, _, err := op.InvariantMeasure(solve)
		assert.ErrorIs(t, err, transferop.ErrBadSolveOptions)
	}
}

func TestBuildTriangulated_IntervalChain(t *testing.T) {
	// 1-D triangulation: two intervals [0,0.5] and [0.5,1]. The first
	// interval's image is exactly the second (level-2 subsamples 0.5,
	// 0.75, 1; the shared vertex 0.5 resolves to the lower-indexed
	// interval), the second's image pokes past the partition with only
	// its left vertex still inside.
	points := [][]float64{{0}, {0.5}, {1}, {1.5}}
	simplices := [][]int{{0, 1}, {1, 2}}

	op, err := transferop.BuildTriangulated(points, simplices, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, op.N())
	assert.Equal(t, []int64{1, 2}, op.Bins())
	require.NoError(t, op.Validate())

	d := op.Dense()
	assert.InDelta(t, 1.0/3.0, d.At(0, 0), 1e-15)
	assert.InDelta(t, 2.0/3.0, d.At(0, 1), 1e-15)
	assert.InDelta(t, 0.0, d.At(1, 0), 1e-15)
	assert.InDelta(t, 1.0, d.At(1, 1), 1e-15)

	// The second interval is absorbing, so it soaks up all the mass.
	p, report, err := op.InvariantMeasure(transferop.DefaultSolveOptions())
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.InDelta(t, 0.0, p.P[0], 1e-7)
	assert.InDelta(t, 1.0, p.P[1], 1e-7)
}

func TestBuildTriangulated_Triangle2D(t *testing.T) {
	// A single triangle mapped onto a shifted copy of itself; a share
	// of the image subsamples stays inside, so the lone row is the
	// trivial self-loop after normalization over located subsamples.
	points := [][]float64{
		{0, 0}, {1, 0}, {0, 1},
		{0.1, 0.1},
	}
	simplices := [][]int{{0, 1, 2}}

	op, err := transferop.BuildTriangulated(points, simplices, 3)
	require.NoError(t, err)
	require.NoError(t, op.Validate())
	assert.InDelta(t, 1.0, op.Dense().At(0, 0), 1e-15)
}

func TestBuildTriangulated_Errors(t *testing.T) {
	line := [][]float64{{0}, {1}, {2}, {3}}

	_, err := transferop.BuildTriangulated([][]float64{{0}}, [][]int{{0, 1}}, 2)
	assert.ErrorIs(t, err, transferop.ErrShortTrajectory)

	_, err = transferop.BuildTriangulated(line, [][]int{{0, 1}}, 0)
	assert.ErrorIs(t, err, transferop.ErrBadSubdivision)

	_, err = transferop.BuildTriangulated(line, nil, 2)
	assert.ErrorIs(t, err, transferop.ErrBadSimplices)

	// Wrong arity for 1-D, duplicate vertex, and an index whose forward
	// image would run off the trajectory.
	for _, bad := range [][]int{{0, 1, 2}, {1, 1}, {2, 3}} {
		_, err = transferop.BuildTriangulated(line, [][]int{bad}, 2)
		assert.ErrorIs(t, err, transferop.ErrBadSimplices)
	}

	// Collinear 2-D vertices span no area.
	collinear := [][]float64{{0, 0}, {1, 1}, {2, 2}, {0, 1}}
	_, err = transferop.BuildTriangulated(collinear, [][]int{{0, 1, 2}}, 2)
	assert.ErrorIs(t, err, transferop.ErrDegenerateSimplex)

	// Mixed dimensionality.
	ragged := [][]float64{{0, 0}, {1}, {2, 2}}
	_, err = transferop.BuildTriangulated(ragged, [][]int{{0, 1}}, 2)
	assert.ErrorIs(t, err, binning.ErrDimensionMismatch)

	// The image of conv{p0, p2} = [0,1] is conv{p1, p3} = [5,6]: fully
	// outside the partition, so no weight can be placed anywhere.
	escaped := [][]float64{{0}, {5}, {1}, {6}}
	_, err = transferop.BuildTriangulated(escaped, [][]int{{0, 2}}, 2)
	assert.ErrorIs(t, err, transferop.ErrOutsidePartition)
}

func TestDenseMatchesSparseRows(t *testing.T) {
	op, err := transferop.BuildFromSymbols([]int64{2, 4, 2, 4, 4, 2}, transferop.DefaultOptions())
	require.NoError(t, err)

	d := op.Dense()
	for i := 0; i < op.N(); i++ {
		cols, vals := op.Row(i)
		sum := 0.0
		for k, j := range cols {
			assert.Equal(t, vals[k], d.At(i, j))
			sum += vals[k]
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
		assert.False(t, math.IsNaN(sum))
	}
}

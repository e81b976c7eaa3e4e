package transferop

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/infodyn/binning"
	"github.com/katalvlaran/infodyn/outcome"
)

// TransferOperator is the empirical transfer-operator approximation: a
// sparse row-stochastic matrix over the N visited partition elements,
// plus the element labels indexing its rows and columns. Immutable once
// built; the invariant measure is derived from it on demand and owned
// by the caller.
type TransferOperator struct {
	bins    []int64
	index   map[int64]int
	rowCols [][]int
	rowVals [][]float64
}

// Build constructs the operator from a sequentially-ordered trajectory
// and a rectangular partition.
//
// Algorithm Outline:
//  1. Map every sample to its bin symbol via the grid.
//  2. Enumerate visited bins (ascending); bins absent from the data do
//     not get rows.
//  3. For each sample t, record a transition bin(t) → bin(t+1); the
//     final sample's successor comes from the boundary policy
//     (Circular: the first visited bin; Random: a uniform seeded draw).
//  4. Row-normalize per-bin transition counts. Every visited bin has at
//     least one outgoing transition by construction, so every row sums
//     to 1.
//
// A non-precise grid triggers a warning through opts.Warnf: boundary
// misclassification silently corrupts the matrix here.
//
// Errors: ErrShortTrajectory, ErrBadBoundary, binning sentinels.
//
// Complexity: O(n) over the trajectory plus O(N log N) for bin ordering.
func Build(points [][]float64, grid *binning.Grid, opts Options) (*TransferOperator, error) {
	if len(points) < 2 {
		return nil, ErrShortTrajectory
	}
	if opts.Boundary != Circular && opts.Boundary != Random {
		return nil, ErrBadBoundary
	}
	if !grid.Precise() && opts.Warnf != nil {
		opts.Warnf("transferop: grid built in fast (non-precise) mode; boundary points may be misclassified, corrupting the transition matrix")
	}

	symbols := make([]int64, len(points))
	for t, p := range points {
		s, err := grid.BinOf(p)
		if err != nil {
			return nil, err
		}
		symbols[t] = s
	}
	return BuildFromSymbols(symbols, opts)
}

// BuildFromSymbols constructs the operator from an already-binned
// symbol sequence, one symbol per trajectory sample in time order.
// Useful when the partition is managed elsewhere.
//
// Errors: ErrShortTrajectory, ErrBadBoundary.
func BuildFromSymbols(symbols []int64, opts Options) (*TransferOperator, error) {
	n := len(symbols)
	if n < 2 {
		return nil, ErrShortTrajectory
	}
	if opts.Boundary != Circular && opts.Boundary != Random {
		return nil, ErrBadBoundary
	}

	op := &TransferOperator{index: make(map[int64]int)}
	for _, s := range symbols {
		if _, ok := op.index[s]; !ok {
			op.index[s] = 0
			op.bins = append(op.bins, s)
		}
	}
	sort.Slice(op.bins, func(i, j int) bool { return op.bins[i] < op.bins[j] })
	for i, s := range op.bins {
		op.index[s] = i
	}
	nbins := len(op.bins)

	// Successor of the final sample per the boundary policy.
	last := op.index[symbols[0]]
	if opts.Boundary == Random {
		last = rngFromSeed(opts.Seed, streamBoundary).Intn(nbins)
	}

	counts := make([]map[int]int, nbins)
	outgoing := make([]int, nbins)
	for t := 0; t < n; t++ {
		from := op.index[symbols[t]]
		to := last
		if t < n-1 {
			to = op.index[symbols[t+1]]
		}
		if counts[from] == nil {
			counts[from] = make(map[int]int)
		}
		counts[from][to]++
		outgoing[from]++
	}

	op.rowCols = make([][]int, nbins)
	op.rowVals = make([][]float64, nbins)
	for i, row := range counts {
		cols := make([]int, 0, len(row))
		for j := range row {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		vals := make([]float64, len(cols))
		for k, j := range cols {
			vals[k] = float64(row[j]) / float64(outgoing[i])
		}
		op.rowCols[i] = cols
		op.rowVals[i] = vals
	}
	return op, nil
}

// N returns the number of visited partition elements (matrix order).
func (op *TransferOperator) N() int { return len(op.bins) }

// Bins returns the ascending labels of the visited partition elements,
// aligned with the matrix rows and columns.
func (op *TransferOperator) Bins() []int64 { return append([]int64(nil), op.bins...) }

// Row exposes row i as parallel column-index and probability slices
// (shared, read-only by convention).
func (op *TransferOperator) Row(i int) (cols []int, vals []float64) {
	return op.rowCols[i], op.rowVals[i]
}

// Dense materializes the full N×N matrix for interop with gonum-based
// linear algebra. O(N²) memory; the sparse form remains authoritative.
func (op *TransferOperator) Dense() *mat.Dense {
	n := len(op.bins)
	d := mat.NewDense(n, n, nil)
	for i := range op.rowCols {
		for k, j := range op.rowCols[i] {
			d.Set(i, j, op.rowVals[i][k])
		}
	}
	return d
}

// Validate checks row-stochasticity: every row must sum to 1 within
// outcome.NormTolerance with non-negative entries.
func (op *TransferOperator) Validate() error {
	for i := range op.rowVals {
		sum := 0.0
		for _, v := range op.rowVals[i] {
			if v < 0 || math.IsNaN(v) {
				return outcome.ErrProbabilityRange
			}
			sum += v
		}
		if math.Abs(sum-1) > outcome.NormTolerance {
			return outcome.ErrNotNormalized
		}
	}
	return nil
}

// propagate computes next = rho · P into next, using the sparse rows.
func (op *TransferOperator) propagate(rho, next []float64) {
	for j := range next {
		next[j] = 0
	}
	for i := range op.rowCols {
		ri := rho[i]
		if ri == 0 {
			continue
		}
		for k, j := range op.rowCols[i] {
			next[j] += ri * op.rowVals[i][k]
		}
	}
}

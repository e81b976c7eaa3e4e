package binning

import (
	"math"
	"math/big"
	"sort"

	"github.com/katalvlaran/infodyn/outcome"
)

type gridKind int

const (
	kindBins gridKind = iota
	kindWidths
	kindEdges
)

// Grid is a fitted rectangular partition: per-dimension minima and edge
// lengths are computed once at construction, after which every point maps
// to a flat 1-based bin symbol by floor division. Immutable after Fit;
// freely shareable across calls.
type Grid struct {
	kind    gridKind
	dim     int
	precise bool

	mins   []float64
	maxs   []float64
	widths []float64
	edges  [][]float64 // kindEdges only

	// Extended-precision mirrors of mins/widths, populated in precise mode.
	minsBig   []*big.Float
	widthsBig []*big.Float

	nbins   []int
	strides []int64
	total   int64
}

// Fit builds a Grid over the point set (rows are samples, columns are
// dimensions) under the given partition spec. ExplicitEdges needs no
// data-derived quantities, so points may be nil there; the other specs
// require at least one point to anchor minima and ranges.
//
// Errors: spec validation sentinels, ErrNoPoints, ErrDimensionMismatch.
//
// Complexity: O(n·d).
func Fit(spec Spec, points [][]float64, opts Options) (*Grid, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	g := &Grid{dim: spec.dims(), precise: opts.Precise}

	switch s := spec.(type) {
	case ExplicitEdges:
		g.kind = kindEdges
		g.edges = s.E
		g.nbins = make([]int, g.dim)
		for d, e := range s.E {
			g.nbins[d] = len(e) - 1
		}

	case FixedBins:
		g.kind = kindBins
		if err := g.fitRange(points); err != nil {
			return nil, err
		}
		g.nbins = append([]int(nil), s.N...)
		g.widths = make([]float64, g.dim)
		for d := 0; d < g.dim; d++ {
			g.widths[d] = (g.maxs[d] - g.mins[d]) / float64(s.N[d])
		}

	case FixedWidths:
		g.kind = kindWidths
		if err := g.fitRange(points); err != nil {
			return nil, err
		}
		g.widths = append([]float64(nil), s.W...)
		g.nbins = make([]int, g.dim)
		for d := 0; d < g.dim; d++ {
			g.nbins[d] = int(math.Floor((g.maxs[d]-g.mins[d])/s.W[d])) + 1
		}

	default:
		return nil, ErrDimensionMismatch
	}

	if g.precise && g.kind != kindEdges {
		g.minsBig = make([]*big.Float, g.dim)
		g.widthsBig = make([]*big.Float, g.dim)
		for d := 0; d < g.dim; d++ {
			min := new(big.Float).SetPrec(bigPrec).SetFloat64(g.mins[d])
			max := new(big.Float).SetPrec(bigPrec).SetFloat64(g.maxs[d])
			g.minsBig[d] = min
			if g.kind == kindBins {
				// Edge length derived in extended precision so the
				// intended boundaries are hit exactly.
				span := new(big.Float).SetPrec(bigPrec).Sub(max, min)
				g.widthsBig[d] = span.Quo(span, new(big.Float).SetPrec(bigPrec).SetInt64(int64(g.nbins[d])))
			} else {
				g.widthsBig[d] = new(big.Float).SetPrec(bigPrec).SetFloat64(g.widths[d])
			}
		}
	}

	g.strides = make([]int64, g.dim)
	g.total = 1
	for d := g.dim - 1; d >= 0; d-- {
		g.strides[d] = g.total
		g.total *= int64(g.nbins[d])
	}
	return g, nil
}

func (g *Grid) fitRange(points [][]float64) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	g.mins = make([]float64, g.dim)
	g.maxs = make([]float64, g.dim)
	for d := 0; d < g.dim; d++ {
		g.mins[d] = math.Inf(1)
		g.maxs[d] = math.Inf(-1)
	}
	for _, p := range points {
		if len(p) != g.dim {
			return ErrDimensionMismatch
		}
		for d, x := range p {
			if x < g.mins[d] {
				g.mins[d] = x
			}
			if x > g.maxs[d] {
				g.maxs[d] = x
			}
		}
	}
	return nil
}

// Dims returns the grid dimensionality.
func (g *Grid) Dims() int { return g.dim }

// Precise reports whether boundary arithmetic runs in extended precision.
// The transfer-operator engine consults this to warn about fast grids.
func (g *Grid) Precise() bool { return g.precise }

// TotalOutcomes returns the full alphabet size (product of per-dimension
// bin counts).
func (g *Grid) TotalOutcomes() int64 { return g.total }

// BinOf maps a point to its flat 1-based bin symbol.
//
// Errors: ErrDimensionMismatch, ErrOutOfRange for points outside the
// fitted coverage (the exact right boundary clamps into the last bin).
//
// Complexity: O(d), O(d·log e) with explicit edges.
func (g *Grid) BinOf(point []float64) (int64, error) {
	if len(point) != g.dim {
		return 0, ErrDimensionMismatch
	}
	var sym int64 = 1
	for d, x := range point {
		idx, err := g.binIndex(d, x)
		if err != nil {
			return 0, err
		}
		sym += int64(idx) * g.strides[d]
	}
	return sym, nil
}

func (g *Grid) binIndex(d int, x float64) (int, error) {
	if g.kind == kindEdges {
		e := g.edges[d]
		if x < e[0] || x > e[len(e)-1] {
			return 0, ErrOutOfRange
		}
		i := sort.SearchFloat64s(e, x)
		if i < len(e) && e[i] == x {
			// On an edge: left-closed bins, right endpoint clamps.
			if i == len(e)-1 {
				return len(e) - 2, nil
			}
			return i, nil
		}
		return i - 1, nil
	}

	if x < g.mins[d] || x > g.maxs[d] {
		return 0, ErrOutOfRange
	}
	if g.widths[d] == 0 {
		// Degenerate dimension (all samples equal): one bin.
		return 0, nil
	}

	var idx int
	if g.precise {
		q := new(big.Float).SetPrec(bigPrec).SetFloat64(x)
		q.Sub(q, g.minsBig[d])
		q.Quo(q, g.widthsBig[d])
		i, _ := q.Int64()
		idx = int(i)
	} else {
		idx = int(math.Floor((x - g.mins[d]) / g.widths[d]))
	}
	if idx >= g.nbins[d] {
		idx = g.nbins[d] - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, nil
}

// TupleOf unflattens a symbol into its per-dimension bin indices
// (0-based), the exact inverse of BinOf's packing.
//
// Errors: ErrSymbolRange.
func (g *Grid) TupleOf(sym int64) ([]int, error) {
	if sym < 1 || sym > g.total {
		return nil, ErrSymbolRange
	}
	tuple := make([]int, g.dim)
	n := sym - 1
	for d := 0; d < g.dim; d++ {
		tuple[d] = int(n / g.strides[d])
		n %= g.strides[d]
	}
	return tuple, nil
}

// CountPoints tallies bin occupancy over the point set. PositiveOnly
// keeps only visited bins (sparse enumeration); FullAlphabet materializes
// every possible tuple — callers opt into the O(total) cost explicitly.
//
// Errors: ErrNoPoints plus BinOf sentinels.
func (g *Grid) CountPoints(points [][]float64, mode outcome.CountMode) (outcome.Counts, error) {
	if len(points) == 0 {
		return outcome.Counts{}, ErrNoPoints
	}
	symbols := make([]int64, len(points))
	for i, p := range points {
		s, err := g.BinOf(p)
		if err != nil {
			return outcome.Counts{}, err
		}
		symbols[i] = s
	}
	return outcome.CountSymbols(symbols, mode, g.total)
}

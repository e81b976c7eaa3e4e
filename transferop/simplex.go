package transferop

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/infodyn/binning"
)

// membershipTol absorbs round-off when testing barycentric coordinates
// against the simplex boundary.
const membershipTol = 1e-9

// BuildTriangulated constructs the operator from a triangulated
// partition of the trajectory: each simplex lists dim+1 vertex indices
// into points, and its forward image is the simplex spanned by the same
// indices shifted one time step.
//
// Transition weights are estimated by fractional overlap: the image
// simplex is subsampled on a deterministic barycentric grid of the
// given subdivision level (C(level+dim, dim) points), each subsample is
// located in the source partition by solving its barycentric
// coordinates, and row i,j receives the fraction of simplex i's image
// subsamples that landed in simplex j. Subsamples that leave the
// partition are skipped; an image entirely outside it is an error.
// This approximates the exact polytope-intersection weights; raising
// the level tightens the estimate at O(level^dim) cost per simplex.
//
// Rows and columns are indexed by 1-based simplex labels. The result is
// fully deterministic — no RNG is involved.
//
// Errors: ErrShortTrajectory, ErrBadSubdivision, ErrBadSimplices,
// ErrDegenerateSimplex, ErrOutsidePartition,
// binning.ErrDimensionMismatch.
func BuildTriangulated(points [][]float64, simplices [][]int, level int) (*TransferOperator, error) {
	if len(points) < 2 {
		return nil, ErrShortTrajectory
	}
	if level < 1 {
		return nil, ErrBadSubdivision
	}
	dim := len(points[0])
	if dim < 1 {
		return nil, binning.ErrDimensionMismatch
	}
	for _, p := range points {
		if len(p) != dim {
			return nil, binning.ErrDimensionMismatch
		}
	}
	if len(simplices) == 0 {
		return nil, ErrBadSimplices
	}
	for _, sx := range simplices {
		if len(sx) != dim+1 {
			return nil, ErrBadSimplices
		}
		seen := make(map[int]bool, dim+1)
		for _, v := range sx {
			// v+1 must stay a valid trajectory index for the image.
			if v < 0 || v >= len(points)-1 || seen[v] {
				return nil, ErrBadSimplices
			}
			seen[v] = true
		}
	}

	loc, err := newSimplexLocator(points, simplices)
	if err != nil {
		return nil, err
	}

	weights := barycentricGrid(level, dim+1)
	nsimp := len(simplices)
	op := &TransferOperator{
		bins:    make([]int64, nsimp),
		index:   make(map[int64]int, nsimp),
		rowCols: make([][]int, nsimp),
		rowVals: make([][]float64, nsimp),
	}
	for i := range op.bins {
		op.bins[i] = int64(i + 1)
		op.index[int64(i+1)] = i
	}

	x := make([]float64, dim)
	for i, sx := range simplices {
		counts := make(map[int]int)
		located := 0
		for _, w := range weights {
			// Image subsample: barycentric combination of the
			// forward-shifted vertices.
			for d := 0; d < dim; d++ {
				x[d] = 0
				for k, v := range sx {
					x[d] += w[k] * points[v+1][d]
				}
			}
			j := loc.locate(x)
			if j < 0 {
				continue
			}
			counts[j]++
			located++
		}
		if located == 0 {
			return nil, ErrOutsidePartition
		}
		cols := make([]int, 0, len(counts))
		for j := range counts {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		vals := make([]float64, len(cols))
		for k, j := range cols {
			vals[k] = float64(counts[j]) / float64(located)
		}
		op.rowCols[i] = cols
		op.rowVals[i] = vals
	}
	return op, nil
}

// simplexLocator answers point-in-simplex queries via per-simplex LU
// factorizations of the barycentric system [v1−v0 … vd−v0].
type simplexLocator struct {
	base [][]float64
	lus  []*mat.LU
	dim  int
}

func newSimplexLocator(points [][]float64, simplices [][]int) (*simplexLocator, error) {
	dim := len(points[0])
	loc := &simplexLocator{
		base: make([][]float64, len(simplices)),
		lus:  make([]*mat.LU, len(simplices)),
		dim:  dim,
	}
	t := mat.NewDense(dim, dim, nil)
	for i, sx := range simplices {
		v0 := points[sx[0]]
		for c := 1; c <= dim; c++ {
			vc := points[sx[c]]
			for r := 0; r < dim; r++ {
				t.Set(r, c-1, vc[r]-v0[r])
			}
		}
		var lu mat.LU
		lu.Factorize(t)
		if det := lu.Det(); det == 0 || math.IsNaN(det) {
			return nil, ErrDegenerateSimplex
		}
		loc.base[i] = v0
		loc.lus[i] = &lu
	}
	return loc, nil
}

// locate returns the index of a simplex containing x, or -1 when x lies
// outside every simplex. Ties on shared faces resolve to the lowest
// index.
func (loc *simplexLocator) locate(x []float64) int {
	b := mat.NewVecDense(loc.dim, nil)
	lam := mat.NewVecDense(loc.dim, nil)
	for i := range loc.lus {
		for d := 0; d < loc.dim; d++ {
			b.SetVec(d, x[d]-loc.base[i][d])
		}
		if err := loc.lus[i].SolveVecTo(lam, false, b); err != nil {
			if _, ok := err.(mat.Condition); !ok {
				continue
			}
		}
		sum := 0.0
		inside := true
		for d := 0; d < loc.dim; d++ {
			l := lam.AtVec(d)
			if l < -membershipTol {
				inside = false
				break
			}
			sum += l
		}
		if inside && sum <= 1+membershipTol {
			return i
		}
	}
	return -1
}

// barycentricGrid enumerates all compositions of level into parts
// non-negative integers, scaled to barycentric weights summing to 1.
// Deterministic lexicographic order.
func barycentricGrid(level, parts int) [][]float64 {
	var grid [][]float64
	comp := make([]int, parts)
	var rec func(pos, left int)
	rec = func(pos, left int) {
		if pos == parts-1 {
			comp[pos] = left
			w := make([]float64, parts)
			for k, c := range comp {
				w[k] = float64(c) / float64(level)
			}
			grid = append(grid, w)
			return
		}
		for c := left; c >= 0; c-- {
			comp[pos] = c
			rec(pos+1, left-c)
		}
	}
	rec(0, level)
	return grid
}

package stencil

import (
	"github.com/katalvlaran/infodyn/encoding"
	"github.com/katalvlaran/infodyn/outcome"
)

// SpatialSpace scans a stencil across an N-D array and condenses every
// gathered window through a codec — the spatial generalization of the
// symbolic time-series spaces, with the stencil length as m.
type SpatialSpace struct {
	st       Stencil
	boundary Boundary
	codec    encoding.WindowCodec
}

// NewSpatialSpace validates the stencil/codec pairing. Codecs exposing
// their window order (Ordinal, Dispersion, Swap) are checked against the
// stencil length up front; order-free codecs are checked per window.
//
// Errors: ErrEmptyStencil (zero-valued stencil), ErrStencilOrder.
func NewSpatialSpace(st Stencil, boundary Boundary, codec encoding.WindowCodec) (SpatialSpace, error) {
	if st.Length() == 0 {
		return SpatialSpace{}, ErrEmptyStencil
	}
	if o, ok := codec.(interface{ Order() int }); ok && o.Order() != st.Length() {
		return SpatialSpace{}, ErrStencilOrder
	}
	return SpatialSpace{st: st, boundary: boundary, codec: codec}, nil
}

// TotalOutcomes returns the codec's alphabet size.
func (s SpatialSpace) TotalOutcomes() int64 { return s.codec.Cardinality() }

// Count scans arr once and tallies window symbols. Equivalent to
// NewScan + Scan.Count; build a Scan directly when processing many
// arrays of one shape.
//
// Errors: ErrDimensionMismatch, ErrNoValidCells, codec sentinels.
func (s SpatialSpace) Count(arr *Array, mode outcome.CountMode) (outcome.Counts, error) {
	scan, err := NewScan(s, arr.Shape())
	if err != nil {
		return outcome.Counts{}, err
	}
	return scan.Count(arr, mode)
}

// Scan is a per-shape compilation of a SpatialSpace: the valid reference
// cells and the flat neighbor displacement of every stencil offset are
// precomputed once and reused across arrays of the same shape.
type Scan struct {
	space SpatialSpace
	shape []int

	// cells lists valid reference cells as flat indices; gathers holds,
	// per valid cell, the precomputed flat index of each stencil offset
	// (wrapping already applied under Periodic).
	cells   []int
	gathers [][]int
}

// NewScan precomputes the valid-cell list for one array shape.
//
// Under Periodic every cell is valid; under Truncate only cells whose
// full footprint stays in bounds are kept.
//
// Errors: ErrDimensionMismatch, ErrBadShape, ErrNoValidCells.
//
// Complexity: O(cells·m) once.
func NewScan(space SpatialSpace, shape []int) (*Scan, error) {
	if len(shape) != space.st.Rank() {
		return nil, ErrDimensionMismatch
	}
	size := 1
	strides := make([]int, len(shape))
	for d := len(shape) - 1; d >= 0; d-- {
		if shape[d] < 1 {
			return nil, ErrBadShape
		}
		strides[d] = size
		size *= shape[d]
	}

	sc := &Scan{space: space, shape: append([]int(nil), shape...)}
	coord := make([]int, len(shape))
	neighbor := make([]int, len(shape))
	for flat := 0; flat < size; flat++ {
		valid := true
		gather := make([]int, space.st.Length())
		for k, off := range space.st.offsets {
			nflat := 0
			for d := range coord {
				neighbor[d] = coord[d] + off[d]
				if space.boundary == Periodic {
					neighbor[d] = ((neighbor[d] % shape[d]) + shape[d]) % shape[d]
				} else if neighbor[d] < 0 || neighbor[d] >= shape[d] {
					valid = false
					break
				}
				nflat += neighbor[d] * strides[d]
			}
			if !valid {
				break
			}
			gather[k] = nflat
		}
		if valid {
			sc.cells = append(sc.cells, flat)
			sc.gathers = append(sc.gathers, gather)
		}
		for d := len(shape) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < shape[d] {
				break
			}
			coord[d] = 0
		}
	}
	if len(sc.cells) == 0 {
		return nil, ErrNoValidCells
	}
	return sc, nil
}

// ValidCells returns the flat indices of the reference cells this scan
// visits, in row-major order.
func (sc *Scan) ValidCells() []int { return append([]int(nil), sc.cells...) }

// Count gathers every precomputed window from arr and tallies codec
// symbols. The window buffer is reused across cells; Counts belong to
// the caller.
//
// Errors: ErrShapeMismatch when arr's shape differs from the scan's,
// plus codec sentinels.
//
// Complexity: O(cells·m) gathers + codec cost per window.
func (sc *Scan) Count(arr *Array, mode outcome.CountMode) (outcome.Counts, error) {
	if arr.Rank() != len(sc.shape) {
		return outcome.Counts{}, ErrDimensionMismatch
	}
	for d, s := range sc.shape {
		if arr.shape[d] != s {
			return outcome.Counts{}, ErrShapeMismatch
		}
	}

	window := make([]float64, sc.space.st.Length())
	symbols := make([]int64, len(sc.cells))
	for i, gather := range sc.gathers {
		for k, flat := range gather {
			window[k] = arr.data[flat]
		}
		sym, err := sc.space.codec.EncodeWindow(window)
		if err != nil {
			return outcome.Counts{}, err
		}
		symbols[i] = sym
	}
	return outcome.CountSymbols(symbols, mode, sc.space.codec.Cardinality())
}

package stencil

// Stencil is the canonical list-of-offsets form shared by all three
// input representations. Immutable after construction; offsets keep
// their construction order, which fixes the within-window position of
// each gathered value.
type Stencil struct {
	offsets [][]int
	rank    int
}

// FromOffsets builds a stencil from explicit relative offsets.
//
// Errors: ErrEmptyStencil, ErrRaggedOffsets.
func FromOffsets(offsets [][]int) (Stencil, error) {
	if len(offsets) == 0 {
		return Stencil{}, ErrEmptyStencil
	}
	rank := len(offsets[0])
	if rank == 0 {
		return Stencil{}, ErrRaggedOffsets
	}
	out := make([][]int, len(offsets))
	for i, o := range offsets {
		if len(o) != rank {
			return Stencil{}, ErrRaggedOffsets
		}
		out[i] = append([]int(nil), o...)
	}
	return Stencil{offsets: out, rank: rank}, nil
}

// FromMask builds a stencil from a 0/1 mask array: offsets are the
// coordinates of set cells, shifted so the first set cell (row-major
// order) sits at offset zero.
//
// Errors: ErrEmptyStencil when no cell is set, Array sentinels.
func FromMask(shape []int, mask []bool) (Stencil, error) {
	if len(shape) == 0 {
		return Stencil{}, ErrBadShape
	}
	size := 1
	for _, s := range shape {
		if s < 1 {
			return Stencil{}, ErrBadShape
		}
		size *= s
	}
	if size != len(mask) {
		return Stencil{}, ErrShapeMismatch
	}

	var offsets [][]int
	var first []int
	coord := make([]int, len(shape))
	for flat := 0; flat < size; flat++ {
		if mask[flat] {
			if first == nil {
				first = append([]int(nil), coord...)
			}
			o := make([]int, len(shape))
			for d := range coord {
				o[d] = coord[d] - first[d]
			}
			offsets = append(offsets, o)
		}
		// Row-major coordinate increment.
		for d := len(shape) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < shape[d] {
				break
			}
			coord[d] = 0
		}
	}
	if len(offsets) == 0 {
		return Stencil{}, ErrEmptyStencil
	}
	return Stencil{offsets: offsets, rank: len(shape)}, nil
}

// FromExtentLag builds the rectangular lattice stencil with offsets
// {0, lag, …, (extent-1)·lag} independently per dimension, extentᵣᵃⁿᵏ
// cells in row-major order.
//
// Errors: ErrBadExtent.
func FromExtentLag(extent, lag, rank int) (Stencil, error) {
	if extent < 1 || lag < 1 || rank < 1 {
		return Stencil{}, ErrBadExtent
	}
	n := 1
	for d := 0; d < rank; d++ {
		n *= extent
	}
	offsets := make([][]int, n)
	idx := make([]int, rank)
	for i := 0; i < n; i++ {
		o := make([]int, rank)
		for d := range idx {
			o[d] = idx[d] * lag
		}
		offsets[i] = o
		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < extent {
				break
			}
			idx[d] = 0
		}
	}
	return Stencil{offsets: offsets, rank: rank}, nil
}

// Length returns the number of selected cells — the window order m fed
// into codecs. Consistent across all three construction forms.
func (s Stencil) Length() int { return len(s.offsets) }

// Rank returns the stencil dimensionality.
func (s Stencil) Rank() int { return s.rank }

// Offsets returns a deep copy of the canonical offset list.
func (s Stencil) Offsets() [][]int {
	out := make([][]int, len(s.offsets))
	for i, o := range s.offsets {
		out[i] = append([]int(nil), o...)
	}
	return out
}

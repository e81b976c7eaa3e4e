// Package stencil - arrays, stencil forms, and sentinel errors.
package stencil

import "errors"

// Sentinel errors for stencil construction and spatial scanning.
var (
	// ErrEmptyStencil indicates a stencil selecting no cells.
	ErrEmptyStencil = errors.New("stencil: stencil must select at least one cell")
	// ErrRaggedOffsets indicates offsets of differing dimensionality.
	ErrRaggedOffsets = errors.New("stencil: all offsets must share one dimensionality")
	// ErrDimensionMismatch indicates stencil rank differing from array rank.
	ErrDimensionMismatch = errors.New("stencil: stencil and array dimensionality differ")
	// ErrBadExtent indicates extent < 1 or lag < 1 or rank < 1.
	ErrBadExtent = errors.New("stencil: extent, lag and rank must all be ≥ 1")
	// ErrShapeMismatch indicates array data not matching its shape product.
	ErrShapeMismatch = errors.New("stencil: data length must equal the product of the shape")
	// ErrBadShape indicates an empty or non-positive shape.
	ErrBadShape = errors.New("stencil: shape must be non-empty with positive extents")
	// ErrNoValidCells indicates a truncated scan where no reference cell
	// fits the stencil footprint.
	ErrNoValidCells = errors.New("stencil: no valid reference cells for this shape and stencil")
	// ErrStencilOrder indicates a codec whose window order differs from
	// the stencil length.
	ErrStencilOrder = errors.New("stencil: codec order must equal the stencil length")
)

// Boundary selects how stencil footprints interact with array edges.
type Boundary int

const (
	// Periodic wraps neighbor indices modulo the array shape; every cell
	// is a valid reference cell.
	Periodic Boundary = iota

	// Truncate restricts reference cells to those whose entire stencil
	// footprint stays in bounds.
	Truncate
)

// Array is an immutable N-dimensional real array in row-major layout.
type Array struct {
	shape   []int
	strides []int
	data    []float64
}

// NewArray wraps flat row-major data with its shape.
//
// Errors: ErrBadShape, ErrShapeMismatch.
func NewArray(shape []int, data []float64) (*Array, error) {
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	size := 1
	for _, s := range shape {
		if s < 1 {
			return nil, ErrBadShape
		}
		size *= s
	}
	if size != len(data) {
		return nil, ErrShapeMismatch
	}
	a := &Array{shape: append([]int(nil), shape...), data: data}
	a.strides = make([]int, len(shape))
	stride := 1
	for d := len(shape) - 1; d >= 0; d-- {
		a.strides[d] = stride
		stride *= shape[d]
	}
	return a, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the dimension extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Size returns the total number of cells.
func (a *Array) Size() int { return len(a.data) }

// Data exposes the flat row-major values (read-only by convention).
func (a *Array) Data() []float64 { return a.data }

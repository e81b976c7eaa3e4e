// Package stencil generalizes symbolic outcome spaces from time series
// to N-dimensional arrays: a stencil — a set of relative offsets around
// a reference cell — is scanned across the array, and each gathered
// window feeds an ordinal, dispersion, or swap codec with m = stencil
// length.
//
// 🚀 Stencil input forms (all convertible to one canonical offset list):
//
//   - FromOffsets   — explicit list of relative N-D offsets
//   - FromMask      — boolean mask array; offsets are the positions of
//     set cells, normalized so the first selected cell has offset 0
//   - FromExtentLag — (extent, lag) pair generating the rectangular
//     lattice {0, lag, …, (extent-1)·lag} per dimension
//
// ✨ Boundary handling:
//
//   - Periodic — every cell is a valid reference; neighbor indices wrap
//     modulo the array shape.
//   - Truncate — only cells whose full stencil footprint stays in
//     bounds are scanned.
//
// ⚙️ Usage:
//
//	st, _ := stencil.FromExtentLag(2, 1, 2)       // 2×2 square, rank 2
//	arr, _ := stencil.NewArray([]int{4, 4}, data) // row-major
//	oc, _ := encoding.NewOrdinal(st.Length(), lehmer.TieRandom, nil)
//	sp, _ := stencil.NewSpatialSpace(st, stencil.Periodic, oc)
//	counts, _ := sp.Count(arr, outcome.PositiveOnly)
//
// For repeated scans over arrays of one shape, build a Scan once: the
// valid-cell list and neighbor strides are precomputed per shape.
//
// Performance: Count is O(cells·m) gathers plus the codec cost per
// window; Scan construction is O(cells·m) once per shape.
package stencil

package encoding

import "math"

// AlphabetSize returns c^m, the number of distinct base-c symbols of
// length m, rejecting combinations that overflow the int64 symbol range.
// Construction-time guard for every positional codec in this package.
//
// Errors: ErrCategories for c < 2, ErrAlphabetOverflow when c^m > 2⁶³−1.
func AlphabetSize(c, m int) (int64, error) {
	if c < 2 {
		return 0, ErrCategories
	}
	n := int64(1)
	for i := 0; i < m; i++ {
		if n > math.MaxInt64/int64(c) {
			return 0, ErrAlphabetOverflow
		}
		n *= int64(c)
	}
	return n, nil
}

// CombineBase packs a vector of categories (each in [1, c]) into a single
// 1-based symbol in [1, c^m] by positional base-c evaluation. The first
// element is the most significant digit, so symbols order lexicographically
// with their source vectors.
//
// Errors: ErrEmptyData on an empty vector, ErrSymbolRange when any
// category falls outside [1, c].
//
// Complexity: O(m).
func CombineBase(categories []int, c int) (int64, error) {
	if len(categories) == 0 {
		return 0, ErrEmptyData
	}
	var n int64
	for _, z := range categories {
		if z < 1 || z > c {
			return 0, ErrSymbolRange
		}
		n = n*int64(c) + int64(z-1)
	}
	return n + 1, nil
}

// SplitBase is the exact inverse of CombineBase: it unpacks symbol s into
// its m base-c digits, each restored to [1, c].
//
// Errors: ErrCategories for c < 2, ErrAlphabetOverflow when c^m does not
// fit int64, ErrSymbolRange when s ∉ [1, c^m].
func SplitBase(s int64, c, m int) ([]int, error) {
	max, err := AlphabetSize(c, m)
	if err != nil {
		return nil, err
	}
	if s < 1 || s > max {
		return nil, ErrSymbolRange
	}
	out := make([]int, m)
	n := s - 1
	for i := m - 1; i >= 0; i-- {
		out[i] = int(n%int64(c)) + 1
		n /= int64(c)
	}
	return out, nil
}

// SwapCount returns the number of adjacent transpositions bubble sort
// needs to fully sort the window — equivalently, its inversion count.
// Range: [0, m(m-1)/2], independent of the data's value range. Ties cost
// no swap, so the statistic is invariant under value relabeling but not
// under adding ties.
//
// Complexity: O(m²); windows are short, so the quadratic count beats a
// merge-sort counter on constants.
func SwapCount(window []float64) int {
	swaps := 0
	for i := 0; i < len(window); i++ {
		for j := i + 1; j < len(window); j++ {
			if window[i] > window[j] {
				swaps++
			}
		}
	}
	return swaps
}

package lehmer

import "errors"

// MaxOrder caps the permutation length m so that m! fits in int64.
// 13! = 6 227 020 800 already exceeds int32; 21! would overflow int64.
const MaxOrder = 13

var (
	// ErrOrder indicates m outside the supported range [1, MaxOrder].
	ErrOrder = errors.New("lehmer: order m must be in [1, 13]")

	// ErrNotPermutation indicates the input is not a permutation of 1..m.
	ErrNotPermutation = errors.New("lehmer: input must be a permutation of 1..m")

	// ErrSymbolRange indicates a symbol outside [1, m!].
	ErrSymbolRange = errors.New("lehmer: symbol out of range [1, m!]")
)

// Factorial returns m! for m in [0, MaxOrder]; order validation is the
// caller's concern (Encode/Decode check it).
//
// Complexity: O(m).
func Factorial(m int) int64 {
	var f int64 = 1
	for i := 2; i <= m; i++ {
		f *= int64(i)
	}
	return f
}

// Encode maps a permutation of 1..m to its 1-based Lehmer symbol in [1, m!].
//
// Algorithm Outline:
//  1. For each position i = 0..m-2, count inversions: elements to the
//     right of perm[i] that are smaller than it.
//  2. Accumulate n = (m-1-i)·(n + inversions) — Horner evaluation of the
//     factorial-base digit vector.
//  3. Add 1 so the identity permutation encodes to symbol 1.
//
// Errors:
//   - ErrOrder          — len(perm) outside [1, MaxOrder].
//   - ErrNotPermutation — repeated or out-of-range ranks.
//
// Complexity: O(m²) time, O(m) memory (validation bitmap).
func Encode(perm []int) (int64, error) {
	m := len(perm)
	if m < 1 || m > MaxOrder {
		return 0, ErrOrder
	}
	var seen uint16
	for _, v := range perm {
		if v < 1 || v > m || seen&(1<<uint(v-1)) != 0 {
			return 0, ErrNotPermutation
		}
		seen |= 1 << uint(v-1)
	}

	var n int64
	for i := 0; i < m-1; i++ {
		inv := 0
		for j := i + 1; j < m; j++ {
			if perm[i] > perm[j] {
				inv++
			}
		}
		n = int64(m-1-i) * (n + int64(inv))
	}
	return n + 1, nil
}

// Decode maps a symbol s in [1, m!] back to its permutation of 1..m,
// inverting Encode exactly.
//
// Algorithm Outline:
//  1. Convert s-1 to factorial-base digits f[0..m-1] (digit k has radix
//     m-k) by repeated div/mod.
//  2. Greedily pop the (f[i]+1)-th remaining value of 1..m for each
//     position i.
//
// Round-trip law: Decode(Encode(p), m) == p for every permutation p.
//
// Errors:
//   - ErrOrder       — m outside [1, MaxOrder].
//   - ErrSymbolRange — s outside [1, m!].
//
// Complexity: O(m²) time (list deletion), O(m) memory.
func Decode(s int64, m int) ([]int, error) {
	if m < 1 || m > MaxOrder {
		return nil, ErrOrder
	}
	if s < 1 || s > Factorial(m) {
		return nil, ErrSymbolRange
	}

	// Factorial-base digits of s-1, most significant first.
	digits := make([]int64, m)
	n := s - 1
	for k := m - 1; k >= 1; k-- {
		radix := Factorial(k) // weight of digit at position m-1-k
		digits[m-1-k] = n / radix
		n %= radix
	}

	remaining := make([]int, m)
	for i := range remaining {
		remaining[i] = i + 1
	}
	perm := make([]int, m)
	for i := 0; i < m; i++ {
		d := int(digits[i])
		perm[i] = remaining[d]
		remaining = append(remaining[:d], remaining[d+1:]...)
	}
	return perm, nil
}

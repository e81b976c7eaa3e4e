package outcome

import "sort"

// Counts is an ordered tally of observed outcomes. Outcomes[i] is the
// i-th outcome symbol in ascending order; N[i] its occurrence count.
// Invariants: len(Outcomes) == len(N), every tally ≥ 0.
type Counts struct {
	Outcomes []int64
	N        []int
}

// Validate checks the Counts invariants.
func (c Counts) Validate() error {
	if len(c.Outcomes) != len(c.N) {
		return ErrLengthMismatch
	}
	for _, n := range c.N {
		if n < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}

// Total returns the number of observations.
func (c Counts) Total() int {
	t := 0
	for _, n := range c.N {
		t += n
	}
	return t
}

// CountSymbols tallies a symbol stream into ordered Counts.
//
// PositiveOnly keeps exactly the observed outcomes. FullAlphabet pads to
// the alphabet [1, total]; it requires total to cover every observed
// symbol and is meant for spaces with small, enumerable alphabets (the
// caller pays O(total) memory knowingly).
//
// Errors:
//   - ErrEmptyCounts   — no symbols observed.
//   - ErrAlphabetSize  — FullAlphabet with total < max observed symbol.
//
// Complexity: O(n + k log k) sparse, O(n + total) padded.
func CountSymbols(symbols []int64, mode CountMode, total int64) (Counts, error) {
	if len(symbols) == 0 {
		return Counts{}, ErrEmptyCounts
	}

	tally := make(map[int64]int, len(symbols))
	for _, s := range symbols {
		tally[s]++
	}

	if mode == FullAlphabet {
		for s := range tally {
			if s < 1 || s > total {
				return Counts{}, ErrAlphabetSize
			}
		}
		out := Counts{Outcomes: make([]int64, total), N: make([]int, total)}
		for i := int64(0); i < total; i++ {
			out.Outcomes[i] = i + 1
			out.N[i] = tally[i+1]
		}
		return out, nil
	}

	out := Counts{Outcomes: make([]int64, 0, len(tally)), N: make([]int, 0, len(tally))}
	for s := range tally {
		out.Outcomes = append(out.Outcomes, s)
	}
	sort.Slice(out.Outcomes, func(i, j int) bool { return out.Outcomes[i] < out.Outcomes[j] })
	for _, s := range out.Outcomes {
		out.N = append(out.N, tally[s])
	}
	return out, nil
}

// Missing returns the outcomes of the alphabet [1, total] that never
// occurred — e.g. the dispersion patterns absent from a series.
//
// Complexity: O(total).
func (c Counts) Missing(total int64) []int64 {
	present := make(map[int64]bool, len(c.Outcomes))
	for i, s := range c.Outcomes {
		if c.N[i] > 0 {
			present[s] = true
		}
	}
	var missing []int64
	for s := int64(1); s <= total; s++ {
		if !present[s] {
			missing = append(missing, s)
		}
	}
	return missing
}

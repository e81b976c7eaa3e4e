package encoding

// Dispersion encodes a window by first symbolizing each element with a
// fitted Gaussian-CDF codec (categories in [1, c]) and then packing the
// category vector positionally into one symbol in [1, c^m].
//
// The Gaussian moments must be fitted on the *full* dataset, not per
// window — construct via FitGaussianCDF and reuse across windows.
type Dispersion struct {
	g    GaussianCDF
	m    int
	card int64
}

// NewDispersion wraps a fitted Gaussian codec into a window codec of
// order m.
//
// Errors: ErrCategories when g is zero-valued (unfitted), ErrWindowLength
// when m < 1, ErrAlphabetOverflow when c^m does not fit int64.
func NewDispersion(g GaussianCDF, m int) (Dispersion, error) {
	if g.Categories() < 2 {
		return Dispersion{}, ErrCategories
	}
	if m < 1 {
		return Dispersion{}, ErrWindowLength
	}
	card, err := AlphabetSize(g.Categories(), m)
	if err != nil {
		return Dispersion{}, err
	}
	return Dispersion{g: g, m: m, card: card}, nil
}

// Order returns the window length m.
func (d Dispersion) Order() int { return d.m }

// Cardinality returns c^m, fixed at construction.
func (d Dispersion) Cardinality() int64 { return d.card }

// EncodeWindow symbolizes each element and packs the result base-c.
//
// Errors: ErrWindowLength when len(window) != m.
//
// Complexity: O(m).
func (d Dispersion) EncodeWindow(window []float64) (int64, error) {
	if len(window) != d.m {
		return 0, ErrWindowLength
	}
	cats := make([]int, d.m)
	for i, x := range window {
		cats[i] = d.g.Encode(x)
	}
	return CombineBase(cats, d.g.Categories())
}

// DecodeSymbol unpacks a dispersion symbol back to its category vector.
func (d Dispersion) DecodeSymbol(s int64) ([]int, error) {
	return SplitBase(s, d.g.Categories(), d.m)
}

// Swap encodes a window by its bubble-sort swap count. The alphabet
// {0, …, m(m-1)/2} is shifted to 1-based symbols, so symbol s means
// s-1 swaps.
type Swap struct {
	m int
}

// NewSwap builds a swap-count codec of order m.
//
// Errors: ErrWindowLength when m < 2.
func NewSwap(m int) (Swap, error) {
	if m < 2 {
		return Swap{}, ErrWindowLength
	}
	return Swap{m: m}, nil
}

// Order returns the window length m.
func (s Swap) Order() int { return s.m }

// Cardinality returns m(m-1)/2 + 1 — one outcome per possible swap count,
// independent of the data's value range.
func (s Swap) Cardinality() int64 { return int64(s.m*(s.m-1)/2 + 1) }

// EncodeWindow counts swaps and shifts to a 1-based symbol.
//
// Errors: ErrWindowLength when len(window) != m.
func (s Swap) EncodeWindow(window []float64) (int64, error) {
	if len(window) != s.m {
		return 0, ErrWindowLength
	}
	return int64(SwapCount(window)) + 1, nil
}

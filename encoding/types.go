// Package encoding - shared contracts and sentinel errors.
package encoding

import "errors"

// Sentinel errors for codec construction and use.
var (
	// ErrCategories indicates a category count c < 2.
	ErrCategories = errors.New("encoding: category count c must be ≥ 2")
	// ErrZeroVariance indicates σ == 0: CDF encoding is undefined on
	// constant data; callers must special-case constant sequences.
	ErrZeroVariance = errors.New("encoding: zero variance, Gaussian-CDF encoding undefined")
	// ErrEmptyData indicates an empty sample set where moments or symbols were requested.
	ErrEmptyData = errors.New("encoding: input data must be non-empty")
	// ErrWindowLength indicates a window whose length differs from the codec's m.
	ErrWindowLength = errors.New("encoding: window length does not match codec order m")
	// ErrBadRange indicates an amplitude range with min ≥ max.
	ErrBadRange = errors.New("encoding: amplitude range must satisfy min < max")
	// ErrSymbolRange indicates a symbol outside [1, Cardinality()].
	ErrSymbolRange = errors.New("encoding: symbol out of range")
	// ErrAlphabetOverflow indicates a c, m combination whose alphabet
	// size c^m does not fit the int64 symbol range.
	ErrAlphabetOverflow = errors.New("encoding: alphabet size c^m exceeds the symbol range")
)

// WindowCodec is the capability interface every window-level codec
// satisfies. Implementations are immutable value types after
// construction; outcome spaces dispatch through this closed set rather
// than open-ended inheritance.
//
//   - EncodeWindow maps a length-m real window to a symbol in
//     [1, Cardinality()].
//   - Cardinality reports the total number of possible symbols, which
//     downstream code uses to enumerate full outcome alphabets.
type WindowCodec interface {
	EncodeWindow(window []float64) (int64, error)
	Cardinality() int64
}

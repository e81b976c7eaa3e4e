// Package encoding maps raw scalars and small real-valued windows onto
// discrete symbols — the quantization step every outcome space is built on.
//
// 🚀 What lives here?
//
//	Codecs, in two flavors:
//	  • Scalar: GaussianCDF — bins a value by its normal-CDF quantile
//	    into one of c categories, with a lossy interval Decode.
//	  • Window: Ordinal (rank permutation → Lehmer symbol), Dispersion
//	    (per-element Gaussian symbols combined positionally), Swap
//	    (bubble-sort swap count), RelativeMean & FirstDifference
//	    (amplitude statistics binned into c categories).
//
// ✨ Key properties:
//   - Every window codec implements WindowCodec: EncodeWindow + Cardinality.
//     Outcome spaces dispatch through this closed capability interface.
//   - Symbols are 1-based integers in [1, Cardinality()].
//   - Ordinal coding is bijective per window rank; CDF-based coding is
//     lossy by construction (Decode returns the source subinterval).
//   - Moments (μ, σ) are fitted once per dataset, never per element.
//
// ⚙️ Usage:
//
//	g, err := encoding.FitGaussianCDF(5, series) // μ, σ from the data
//	sym := g.Encode(series[0])                    // category in [1,5]
//
//	oc := encoding.NewOrdinal(3, lehmer.TieRandom, nil)
//	s, err := oc.EncodeWindow([]float64{4.2, 1.1, 3.0}) // ∈ [1, 3!]
//
// Errors are sentinel values (ErrCategories, ErrZeroVariance, …) raised
// at construction or first use — never silently defaulted.
package encoding

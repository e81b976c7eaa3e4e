// Package measure evaluates information-theoretic functionals of
// probability mass functions through one uniform protocol.
//
// 🚀 The contract (every Measure):
//
//	Evaluate(probs)  — the measure's value on a PMF. Zero-probability
//	                   entries are skipped, not errored: 0·log 0 is
//	                   treated as its limit, 0, for every log-based form.
//	Maximum(L)       — the supremum over all PMFs with support size L
//	                   (usually, not universally, at the uniform
//	                   distribution). Measures with no known closed form
//	                   return ErrNoMaximum instead of a wrong number.
//	Normalized(m, p, L) = Evaluate / Maximum, defined only when Maximum is.
//
// ✨ Concrete measures (a closed set — extend by adding a type):
//   - Shannon         — -Σ p log_b p
//   - ShannonExtropy  — -Σ (1-p) log_b (1-p)
//   - Renyi           — (1-q)⁻¹ log_b Σ pᑫ
//   - Tsallis         — k(q-1)⁻¹ (1 - Σ pᑫ)
//   - Curado          — Σ (1 - e^(-b·p)) + e^(-b) - 1
//   - Kaniadakis      — κ-deformed Shannon; Maximum: ErrNoMaximum
//   - LempelZiv76     — factorization count over symbol sequences
//
// Numeric law: changing the logarithm base rescales every log-based
// measure by exactly ln(b₁)/ln(b₂) — a tested property of the shared
// base machinery.
//
// Construction validates parameters (base > 0 and ≠ 1, q > 0 and ≠ 1,
// k > 0, …) and fails fast with ErrBadParameter.
package measure

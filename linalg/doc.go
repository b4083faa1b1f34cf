// Package linalg provides the complex linear-algebra primitives used by the
// eigensolver and the qudit statistics.
//
// What & Why:
//
//	Density matrices handed out by a StateEngine are small (the dimension is a
//	product of a handful of qudit dimensions, typically ≤ 64), square and
//	complex. This package offers exactly the kernels the QR algorithm and the
//	statistics need, over a square row-major Matrix of complex128 and a Vector
//	of complex128:
//
//	  • Column / SetColumn / Duplicate / Diagonal / Trace / Identity
//	  • InnerProduct Σ aᵢ·conj(bᵢ), OuterProduct conj(aᵢ)·bⱼ, Magnitude
//	  • Project (magnitude-only Gram–Schmidt step) and ProjectComplex (textbook)
//	  • AddVec / SubVec / Scale, Add / Sub / Mul / MulVec / ConjugateTranspose
//	  • Kron, OffDiagonalNorm, AllClose, IsHermitian
//
// Guarantees:
//
//   - Fail fast: mismatched sizes return ErrDimensionMismatch (wrapped with an
//     operation tag); nothing is truncated silently.
//   - Purity: inputs are never mutated (SetColumn and Set excepted) and results
//     are never aliased, so every kernel is safe for concurrent use.
//   - Determinism: fixed loop orders.
//
// Complexity:
//
//	Vector kernels O(n), Mul O(n³), MulVec/ConjugateTranspose O(n²), Kron O(n²m²).
package linalg

// Package snapshot provides an immutable in-memory stats.StateEngine over the
// density matrix of an ordered list of properties.
//
// Basis ordering:
//
//	The joint basis index is mixed-radix with the first property as the most
//	significant digit, matching linalg.Kron(ρ₀, ρ₁, …). Subsets keep the order
//	in which the caller lists them, so ReducedDensityMatrix([b, a]) is the
//	swap of ReducedDensityMatrix([a, b]).
//
// Reduced states:
//
//	ReducedDensityMatrix traces out the complement of the requested subset;
//	the empty subset yields the 1×1 matrix [tr ρ]. Probabilities reads the
//	diagonal of the reduced matrix, one entry per basis combination.
//
// An Engine never changes after construction and is safe for concurrent use.
package snapshot

// Package stats computes statistical properties of qudit properties whose
// joint quantum state lives in an external StateEngine.
//
// What & Why:
//
//	A host simulation owns the state; this package only needs the engine to
//	report (a) the joint probability distribution of an ordered set of
//	properties and (b) their reduced density matrix. On top of that it offers:
//
//	  • VonNeumannEntropy(ρ) = −Σ λ·ln λ over the eigenvalue magnitudes of ρ
//	  • Analyzer.MutualInformation: I(i) = S(ρᵢ) + S(ρ_¬i) − S(ρ_all)
//	  • Analyzer.CorrelationMatrix: Pearson correlation of the outcome
//	    indicators of two properties
//
// Conventions:
//
//   - Entropies use the natural logarithm (nats).
//   - Eigenvalue magnitudes below the configured epsilon contribute nothing.
//   - Probabilities are used as reported; they are never renormalized.
//   - A single property has a trivial complement with entropy 0, so its
//     mutual information is 0.
//
// Concurrency:
//
//	Analyzer holds no mutable state; it is as safe for concurrent use as the
//	engine it wraps.
package stats

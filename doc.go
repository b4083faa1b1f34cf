// Package qudit is a toolkit for querying statistical properties of qudit
// "properties" whose joint quantum state lives in an external state engine.
//
// What is qudit?
//
//	A small, dependency-light set of packages that turns the reduced density
//	matrices and joint distributions reported by an engine into statistics:
//		• Complex linear algebra over square row-major matrices
//		• Gram–Schmidt QR and the QR-algorithm eigendecomposition
//		• Von Neumann entropy, mutual information, correlation matrices
//		• Continuous trackers that refresh those statistics on a ticker
//
// Under the hood, everything is organized under five subpackages:
//
//	linalg/    complex Vector & Matrix kernels (products, projections, Kron)
//	eigen/     QR, Diagonalize (fixed or convergence-checked), gonum reference spectrum
//	stats/     StateEngine contract, Analyzer, entropy, mutual information, correlation
//	snapshot/  immutable in-memory StateEngine over a density matrix
//	tracker/   cached trackers over analyzer and engine queries, refreshed on a ticker
//
// Quick example (Bell pair):
//
//	a := stats.Property{ID: "a", Dimension: 2}
//	b := stats.Property{ID: "b", Dimension: 2}
//	engine, _ := snapshot.FromStateVector([]stats.Property{a, b}, psi)
//	an, _ := stats.NewAnalyzer(engine)
//	mi, _ := an.MutualInformation([]stats.Property{a, b}) // [2 ln 2, 2 ln 2]
//
//	go get github.com/katalvlaran/qudit
package qudit

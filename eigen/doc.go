// Package eigen implements classical Gram–Schmidt QR and the unshifted
// QR-algorithm eigendecomposition over linalg.Matrix.
//
// What & Why:
//
//	The statistics need the eigenvalues of small Hermitian density matrices.
//	Diagonalize repeats B ← R·Q with (Q, R) = QR(B) and accumulates U ← U·Q;
//	for Hermitian input B tends to a diagonal matrix whose entries are the
//	eigenvalues, and the columns of U are the matching eigenvectors.
//
// Modes:
//
//   - ModeConverge (default): stop as soon as the off-diagonal Frobenius norm
//     of B drops below the tolerance, with at most Iterations sweeps.
//   - ModeFixed: exactly Iterations sweeps, no early exit.
//
// Gram–Schmidt projection:
//
//   - ProjectionComplex (default): textbook projection a·(⟨b,a⟩/⟨a,a⟩).
//   - ProjectionMagnitude: linalg.Project, which drops the phase of the overlap.
//     Q is then not unitary for complex data and the iteration may diverge.
//
// Validation:
//
//	Non-convergence is never an error. Decomposition.Converged reports it and
//	Residual measures ‖A·U − U·diag(values)‖_F. HermitianValues gives an
//	independent reference spectrum computed by gonum.
//
// Complexity:
//
//	QR O(n³); Diagonalize O(iterations·n³).
package eigen

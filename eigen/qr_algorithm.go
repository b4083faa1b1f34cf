// SPDX-License-Identifier: MIT

package eigen

import (
	"sort"

	"github.com/katalvlaran/qudit/linalg"
)

// Decomposition is the result of Diagonalize.
type Decomposition struct {
	// Values is the diagonal of the final iterate, in that order (not sorted).
	Values []complex128
	// Vectors holds the accumulated Q product; column j belongs to Values[j].
	Vectors *linalg.Matrix
	// Iterations is the number of QR sweeps performed.
	Iterations int
	// Converged reports whether the final off-diagonal norm is below the tolerance.
	Converged bool
	// OffDiagonal is the off-diagonal Frobenius norm of the final iterate.
	OffDiagonal float64
}

// RealValues returns the real parts of Values sorted ascending.
func (d Decomposition) RealValues() []float64 {
	out := make([]float64, len(d.Values))
	for i, v := range d.Values {
		out[i] = real(v)
	}
	sort.Float64s(out)

	return out
}

// Diagonalize runs the unshifted QR algorithm on A.
//
// Implementation:
//   - Stage 1: B ← copy of A, U ← I.
//   - Stage 2: repeat (Q, R) ← QR(B); B ← R·Q; U ← U·Q.
//     ModeFixed performs exactly Iterations sweeps. ModeConverge checks the
//     off-diagonal norm of B before each sweep and stops once it is below the
//     tolerance, never exceeding Iterations sweeps.
//   - Stage 3: Values ← diag(B), Vectors ← U.
//
// Behavior highlights:
//   - Exhausting the budget is not an error; Converged is false and Residual
//     quantifies the quality.
//   - An already diagonal A is returned unchanged in ModeConverge with zero sweeps.
//
// Inputs:
//   - A: square matrix, not mutated. Hermitian input is the supported case.
//
// Errors:
//   - ErrNilMatrix (wrapped).
//
// Determinism:
//   - Fixed loop orders; identical input and options give identical output.
//
// Complexity:
//   - Time O(Iterations·n³), Space O(n²).
func Diagonalize(A *linalg.Matrix, opts ...Option) (Decomposition, error) {
	o := gatherOptions(opts...)

	B, err := linalg.Duplicate(A)
	if err != nil {
		return Decomposition{}, eigenErrorf(opDiagonalize, err)
	}
	U, err := linalg.Identity(A.Rows())
	if err != nil {
		return Decomposition{}, eigenErrorf(opDiagonalize, err)
	}

	var (
		project = projectorFor(o.projection)
		sweeps  int
		off     float64
		Q, R    *linalg.Matrix
	)
	for sweeps = 0; sweeps < o.iterations; sweeps++ {
		if o.mode == ModeConverge {
			if off, err = linalg.OffDiagonalNorm(B); err != nil {
				return Decomposition{}, eigenErrorf(opDiagonalize, err)
			}
			if off < o.tolerance {
				break
			}
		}
		if Q, R, err = qr(B, project, o.eps); err != nil {
			return Decomposition{}, eigenErrorf(opDiagonalize, err)
		}
		if B, err = linalg.Mul(R, Q); err != nil {
			return Decomposition{}, eigenErrorf(opDiagonalize, err)
		}
		if U, err = linalg.Mul(U, Q); err != nil {
			return Decomposition{}, eigenErrorf(opDiagonalize, err)
		}
	}

	if off, err = linalg.OffDiagonalNorm(B); err != nil {
		return Decomposition{}, eigenErrorf(opDiagonalize, err)
	}
	values, err := linalg.Diagonal(B)
	if err != nil {
		return Decomposition{}, eigenErrorf(opDiagonalize, err)
	}

	return Decomposition{
		Values:      values,
		Vectors:     U,
		Iterations:  sweeps,
		Converged:   off < o.tolerance,
		OffDiagonal: off,
	}, nil
}

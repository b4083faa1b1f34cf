// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"github.com/katalvlaran/qudit/linalg"
)

// Operation tags for error wrapping.
const (
	opQR              = "QR"
	opDiagonalize     = "Diagonalize"
	opResidual        = "Residual"
	opHermitianValues = "HermitianValues"
)

// eigenErrorf wraps err with an operation tag, preserving the sentinel via %w.
func eigenErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// projector is the Gram–Schmidt projection of b onto a.
type projector func(a, b linalg.Vector) (linalg.Vector, error)

// projectorFor maps a Projection to its kernel.
func projectorFor(p Projection) projector {
	if p == ProjectionMagnitude {
		return linalg.Project
	}

	return linalg.ProjectComplex
}

// QR factors A into Q and R = Qᴴ·A by classical Gram–Schmidt.
//
// Implementation:
//   - Stage 1: Q ← copy of A.
//   - Stage 2: for j = 1..n−1, u ← v ← original column j; for k = j−1 down to 0
//     subtract the projection of v onto the current column k of Q; store u.
//   - Stage 3: normalize every column whose magnitude exceeds ε; smaller columns
//     are left as they are.
//   - Stage 4: R ← Qᴴ·A.
//
// Behavior highlights:
//   - Rank-deficient input is not an error: a dependent column collapses to
//     (near) zero and stays unnormalized.
//   - With ProjectionComplex and full-rank input Q is unitary and R upper
//     triangular.
//
// Inputs:
//   - A: square matrix (not mutated).
//   - opts: WithProjection, WithDegeneracyEpsilon; iteration options are ignored.
//
// Errors:
//   - ErrNilMatrix (wrapped).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QR(A *linalg.Matrix, opts ...Option) (*linalg.Matrix, *linalg.Matrix, error) {
	o := gatherOptions(opts...)

	return qr(A, projectorFor(o.projection), o.eps)
}

// qr is QR with resolved options; Diagonalize calls it once per sweep.
func qr(A *linalg.Matrix, project projector, eps float64) (*linalg.Matrix, *linalg.Matrix, error) {
	Q, err := linalg.Duplicate(A)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	n := A.Rows()

	var (
		j, k    int
		u, v, p linalg.Vector
		uk      linalg.Vector
	)
	// Stage 2: orthogonalize against earlier columns.
	for j = 1; j < n; j++ {
		if v, err = linalg.Column(A, j); err != nil {
			return nil, nil, eigenErrorf(opQR, err)
		}
		u = v.Clone()
		for k = j - 1; k >= 0; k-- {
			if uk, err = linalg.Column(Q, k); err != nil {
				return nil, nil, eigenErrorf(opQR, err)
			}
			if p, err = project(uk, v); err != nil {
				return nil, nil, eigenErrorf(opQR, err)
			}
			if u, err = linalg.SubVec(u, p); err != nil {
				return nil, nil, eigenErrorf(opQR, err)
			}
		}
		if err = linalg.SetColumn(Q, j, u); err != nil {
			return nil, nil, eigenErrorf(opQR, err)
		}
	}

	// Stage 3: normalize non-degenerate columns.
	var mag float64
	for j = 0; j < n; j++ {
		if u, err = linalg.Column(Q, j); err != nil {
			return nil, nil, eigenErrorf(opQR, err)
		}
		mag = linalg.Magnitude(u)
		if mag <= eps {
			continue
		}
		if err = linalg.SetColumn(Q, j, linalg.Scale(u, 1/mag)); err != nil {
			return nil, nil, eigenErrorf(opQR, err)
		}
	}

	// Stage 4: R = Qᴴ·A.
	Qh, err := linalg.ConjugateTranspose(Q)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	R, err := linalg.Mul(Qh, A)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}

	return Q, R, nil
}

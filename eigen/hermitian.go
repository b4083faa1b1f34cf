// SPDX-License-Identifier: MIT

package eigen

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qudit/linalg"
)

// DefaultHermitianTolerance bounds |A[i,j] − conj(A[j,i])| accepted by HermitianValues.
const DefaultHermitianTolerance = 1e-9

// HermitianValues returns the eigenvalues of a Hermitian A in ascending order,
// computed by gonum's symmetric eigensolver. It is an independent reference
// for Diagonalize.
//
// Implementation:
//   - Stage 1: check Hermiticity within DefaultHermitianTolerance.
//   - Stage 2: build the real symmetric embedding M = [[Re A, −Im A], [Im A, Re A]].
//   - Stage 3: factorize M; every eigenvalue of A appears twice in the sorted
//     spectrum of M, so the even positions are kept.
//
// Errors:
//   - ErrNilMatrix (wrapped), ErrNotHermitian.
//
// Complexity:
//   - Time O(n³) on the 2n×2n embedding, Space O(n²).
func HermitianValues(A *linalg.Matrix) ([]float64, error) {
	ok, err := linalg.IsHermitian(A, DefaultHermitianTolerance)
	if err != nil {
		return nil, eigenErrorf(opHermitianValues, err)
	}
	if !ok {
		return nil, eigenErrorf(opHermitianValues, ErrNotHermitian)
	}

	n := A.Rows()
	sym := mat.NewSymDense(2*n, nil)
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, _ = A.At(i, j)
			sym.SetSym(i, j, real(v))
			sym.SetSym(n+i, n+j, real(v))
			// upper-right block is −Im A; SetSym mirrors it into Im A below.
			sym.SetSym(i, n+j, -imag(v))
			sym.SetSym(j, n+i, imag(v))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, false) {
		return nil, eigenErrorf(opHermitianValues, ErrFactorization)
	}
	all := es.Values(nil)
	out := make([]float64, n)
	for i = 0; i < n; i++ {
		out[i] = all[2*i]
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qudit/linalg"
)

// Residual returns ‖A·U − U·diag(d.Values)‖_F for U = d.Vectors.
// A small residual means every column of U is an eigenvector of A for the
// matching value, whatever mode produced d.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped).
// Complexity: O(n³).
func Residual(A *linalg.Matrix, d Decomposition) (float64, error) {
	if err := linalg.ValidateSameOrder(A, d.Vectors); err != nil {
		return 0, eigenErrorf(opResidual, err)
	}
	n := A.Rows()
	if len(d.Values) != n {
		return 0, eigenErrorf(opResidual, fmt.Errorf("%d values for order %d: %w", len(d.Values), n, linalg.ErrDimensionMismatch))
	}
	AU, err := linalg.Mul(A, d.Vectors)
	if err != nil {
		return 0, eigenErrorf(opResidual, err)
	}

	var (
		acc        float64
		i, j       int
		au, u, dif complex128
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			au, _ = AU.At(i, j)
			u, _ = d.Vectors.At(i, j)
			dif = au - u*d.Values[j]
			acc += real(dif)*real(dif) + imag(dif)*imag(dif)
		}
	}

	return math.Sqrt(acc), nil
}

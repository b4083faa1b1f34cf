// SPDX-License-Identifier: MIT

package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/qudit/eigen"
	"github.com/katalvlaran/qudit/linalg"
)

// ExampleDiagonalize finds the spectrum of a 2×2 complex Hermitian matrix.
func ExampleDiagonalize() {
	A, _ := linalg.NewMatrixFrom([][]complex128{
		{2, complex(1, -1)},
		{complex(1, 1), 3},
	})
	d, _ := eigen.Diagonalize(A)
	res, _ := eigen.Residual(A, d)
	fmt.Printf("values=%.6f converged=%v residual<1e-9=%v\n", d.RealValues(), d.Converged, res < 1e-9)
	// Output:
	// values=[1.000000 4.000000] converged=true residual<1e-9=true
}

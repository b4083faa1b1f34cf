// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qudit/eigen"
	"github.com/katalvlaran/qudit/linalg"
)

// tol is the absolute tolerance for spectral comparisons.
const tol = 1e-9

// fixedX is a full-rank complex matrix used to build unitary bases.
var fixedX = [][]complex128{
	{1, 2i, 0.5, -1},
	{complex(0.3, -1), 1, 2, 0.25i},
	{1, complex(-0.5, 0.5), 1, 3},
	{2i, 1, -1i, 1},
}

func mustFrom(t testing.TB, rows [][]complex128) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrixFrom(rows)
	require.NoError(t, err)

	return m
}

// withSpectrum returns V·diag(values)·Vᴴ with V the unitary factor of fixedX.
func withSpectrum(t testing.TB, values ...float64) *linalg.Matrix {
	t.Helper()
	require.Len(t, values, len(fixedX))
	V, _, err := eigen.QR(mustFrom(t, fixedX))
	require.NoError(t, err)
	D, err := linalg.NewMatrix(len(values))
	require.NoError(t, err)
	for i, v := range values {
		require.NoError(t, D.Set(i, i, complex(v, 0)))
	}
	VD, err := linalg.Mul(V, D)
	require.NoError(t, err)
	Vh, err := linalg.ConjugateTranspose(V)
	require.NoError(t, err)
	H, err := linalg.Mul(VD, Vh)
	require.NoError(t, err)

	return H
}

// maxAbsDiff returns max |a[i,j] − b[i,j]|.
func maxAbsDiff(t testing.TB, a, b *linalg.Matrix) float64 {
	t.Helper()
	d, err := linalg.Sub(a, b)
	require.NoError(t, err)
	var worst float64
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			v, _ := d.At(i, j)
			if cmplx.Abs(v) > worst {
				worst = cmplx.Abs(v)
			}
		}
	}

	return worst
}

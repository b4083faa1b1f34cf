// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qudit/eigen"
	"github.com/katalvlaran/qudit/linalg"
)

func TestQR_UnitaryAndReconstructs(t *testing.T) {
	A := mustFrom(t, fixedX)
	Q, R, err := eigen.QR(A)
	require.NoError(t, err)

	Qh, _ := linalg.ConjugateTranspose(Q)
	QhQ, _ := linalg.Mul(Qh, Q)
	id, _ := linalg.Identity(A.Rows())
	assert.Less(t, maxAbsDiff(t, id, QhQ), 1e-12, "QᴴQ = I")

	QR, _ := linalg.Mul(Q, R)
	assert.Less(t, maxAbsDiff(t, A, QR), 1e-12, "Q·R = A")

	for i := 1; i < R.Rows(); i++ {
		for j := 0; j < i; j++ {
			v, _ := R.At(i, j)
			assert.Lessf(t, cmplx.Abs(v), 1e-12, "R[%d,%d] below diagonal", i, j)
		}
	}
}

func TestQR_DoesNotMutateInput(t *testing.T) {
	A := mustFrom(t, fixedX)
	before := A.Clone()
	_, _, err := eigen.QR(A)
	require.NoError(t, err)
	assert.Equal(t, 0.0, maxAbsDiff(t, before, A))
}

func TestQR_RankDeficientColumnStaysZero(t *testing.T) {
	A := mustFrom(t, [][]complex128{{1, 1}, {1, 1}})
	Q, R, err := eigen.QR(A)
	require.NoError(t, err)

	c0, _ := linalg.Column(Q, 0)
	c1, _ := linalg.Column(Q, 1)
	assert.InDelta(t, 1.0, linalg.Magnitude(c0), 1e-15)
	assert.Equal(t, 0.0, linalg.Magnitude(c1), "dependent column collapses and is left unnormalized")

	r00, _ := R.At(0, 0)
	assert.InDelta(t, math.Sqrt2, real(r00), 1e-15)
	QR, _ := linalg.Mul(Q, R)
	assert.Less(t, maxAbsDiff(t, A, QR), 1e-15)
}

func TestQR_ProjectionsAgreeOnNonNegativeRealData(t *testing.T) {
	A := mustFrom(t, [][]complex128{{2, 1, 0.5}, {1, 2, 1}, {0.5, 1, 3}})
	Qc, Rc, err := eigen.QR(A, eigen.WithProjection(eigen.ProjectionComplex))
	require.NoError(t, err)
	Qm, Rm, err := eigen.QR(A, eigen.WithProjection(eigen.ProjectionMagnitude))
	require.NoError(t, err)
	assert.Less(t, maxAbsDiff(t, Qc, Qm), 1e-15)
	assert.Less(t, maxAbsDiff(t, Rc, Rm), 1e-15)
}

func TestQR_MagnitudeProjectionLosesOrthogonalityOnComplexData(t *testing.T) {
	A := mustFrom(t, fixedX)
	Q, _, err := eigen.QR(A, eigen.WithProjection(eigen.ProjectionMagnitude))
	require.NoError(t, err)
	Qh, _ := linalg.ConjugateTranspose(Q)
	QhQ, _ := linalg.Mul(Qh, Q)
	id, _ := linalg.Identity(A.Rows())
	assert.Greater(t, maxAbsDiff(t, id, QhQ), 1e-3)
}

func TestQR_Nil(t *testing.T) {
	_, _, err := eigen.QR(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

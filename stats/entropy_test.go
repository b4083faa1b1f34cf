// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qudit/eigen"
	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/stats"
)

func maximallyMixed(t *testing.T, d int) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(d)
	require.NoError(t, err)
	for i := 0; i < d; i++ {
		require.NoError(t, m.Set(i, i, complex(1/float64(d), 0)))
	}

	return m
}

func TestVonNeumannEntropy_MaximallyMixed(t *testing.T) {
	for _, d := range []int{1, 2, 3, 4, 6} {
		s, err := stats.VonNeumannEntropy(maximallyMixed(t, d))
		require.NoError(t, err)
		assert.InDeltaf(t, math.Log(float64(d)), s, tol, "D=%d", d)
	}
}

func TestVonNeumannEntropy_PureStates(t *testing.T) {
	r := 1 / math.Sqrt2
	cases := map[string]linalg.Vector{
		"basis":      {1, 0},
		"plus":       {complex(r, 0), complex(r, 0)},
		"phase":      {complex(r, 0), complex(0, r)},
		"bell":       {complex(r, 0), 0, 0, complex(r, 0)},
		"qutrit ghz": {complex(1/math.Sqrt(3), 0), 0, 0, 0, complex(1/math.Sqrt(3), 0), 0, 0, 0, complex(1/math.Sqrt(3), 0)},
	}
	for name, psi := range cases {
		t.Run(name, func(t *testing.T) {
			conj := make(linalg.Vector, len(psi))
			for i, v := range psi {
				conj[i] = complex(real(v), -imag(v))
			}
			rho, err := linalg.OuterProduct(conj, conj)
			require.NoError(t, err)
			s, err := stats.VonNeumannEntropy(rho)
			require.NoError(t, err)
			assert.InDelta(t, 0, s, tol)
		})
	}
}

func TestVonNeumannEntropy_KnownSpectrum(t *testing.T) {
	rho, err := linalg.FromReal([][]float64{{0.7, 0}, {0, 0.3}})
	require.NoError(t, err)
	s, err := stats.VonNeumannEntropy(rho)
	require.NoError(t, err)
	assert.InDelta(t, -(0.7*math.Log(0.7) + 0.3*math.Log(0.3)), s, tol)

	// off-diagonal coherence lowers the entropy
	coh, err := linalg.FromReal([][]float64{{0.7, 0.2}, {0.2, 0.3}})
	require.NoError(t, err)
	sc, err := stats.VonNeumannEntropy(coh)
	require.NoError(t, err)
	assert.Less(t, sc, s)
	assert.Greater(t, sc, 0.0)
}

func TestVonNeumannEntropy_EpsilonCut(t *testing.T) {
	rho, err := linalg.FromReal([][]float64{{0.5, 0}, {0, 0.5}})
	require.NoError(t, err)
	s, err := stats.VonNeumannEntropy(rho, stats.WithEpsilon(0.6))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "every eigenvalue is below the cut")
}

func TestVonNeumannEntropy_FixedModeAgrees(t *testing.T) {
	coh, err := linalg.FromReal([][]float64{{0.7, 0.2}, {0.2, 0.3}})
	require.NoError(t, err)
	a, err := stats.VonNeumannEntropy(coh)
	require.NoError(t, err)
	b, err := stats.VonNeumannEntropy(coh, stats.WithEigenOptions(eigen.WithMode(eigen.ModeFixed)))
	require.NoError(t, err)
	assert.InDelta(t, a, b, tol)
}

func TestVonNeumannEntropy_Nil(t *testing.T) {
	_, err := stats.VonNeumannEntropy(nil)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestWithEpsilon_Panics(t *testing.T) {
	assert.Panics(t, func() { stats.WithEpsilon(-1) })
	assert.Panics(t, func() { stats.WithEpsilon(math.NaN()) })
}

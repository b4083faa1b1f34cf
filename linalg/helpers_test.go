// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures for the complex kernels.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qudit/linalg"
)

// tol is the absolute tolerance used for floating comparisons.
const tol = 1e-12

// mustFrom builds a matrix from rows or fails the test.
func mustFrom(t testing.TB, rows [][]complex128) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrixFrom(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m *linalg.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randMatrix fills an n×n matrix with deterministic values in [-1,1)².
func randMatrix(t testing.TB, n int, seed int64) *linalg.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := linalg.NewMatrix(n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, complex(2*rng.Float64()-1, 2*rng.Float64()-1)))
		}
	}

	return m
}

// requireClose asserts AllClose(a, b, tol).
func requireClose(t testing.TB, want, got *linalg.Matrix) {
	t.Helper()
	ok, err := linalg.AllClose(want, got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

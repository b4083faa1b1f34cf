// SPDX-License-Identifier: MIT

package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/snapshot"
	"github.com/katalvlaran/qudit/stats"
)

const tol = 1e-9

var (
	qubitA = stats.Property{ID: "a", Dimension: 2}
	qubitB = stats.Property{ID: "b", Dimension: 2}
	qutrit = stats.Property{ID: "t", Dimension: 3}

	errEngine = errors.New("engine offline")
)

// pureEngine builds a snapshot engine of a normalized state vector.
func pureEngine(t testing.TB, props []stats.Property, psi linalg.Vector) *snapshot.Engine {
	t.Helper()
	e, err := snapshot.FromStateVector(props, psi)
	require.NoError(t, err)

	return e
}

// bell returns (|00⟩ + |11⟩)/√2 over a, b.
func bell(t testing.TB) *snapshot.Engine {
	r := complex(1/math.Sqrt2, 0)
	return pureEngine(t, []stats.Property{qubitA, qubitB}, linalg.Vector{r, 0, 0, r})
}

// antiBell returns (|01⟩ + |10⟩)/√2 over a, b.
func antiBell(t testing.TB) *snapshot.Engine {
	r := complex(1/math.Sqrt2, 0)
	return pureEngine(t, []stats.Property{qubitA, qubitB}, linalg.Vector{0, r, r, 0})
}

// plusPlus returns |+⟩|+⟩ over a, b.
func plusPlus(t testing.TB) *snapshot.Engine {
	return pureEngine(t, []stats.Property{qubitA, qubitB}, linalg.Vector{0.5, 0.5, 0.5, 0.5})
}

// mixedProduct returns ρ₁ ⊗ ρ₂ with real mixed factors.
func mixedProduct(t testing.TB) *snapshot.Engine {
	t.Helper()
	r1, err := linalg.FromReal([][]float64{{0.75, 0.25}, {0.25, 0.25}})
	require.NoError(t, err)
	r2, err := linalg.FromReal([][]float64{{0.6, 0.2}, {0.2, 0.4}})
	require.NoError(t, err)
	e, err := snapshot.Product([]stats.Property{qubitA, qubitB}, []*linalg.Matrix{r1, r2})
	require.NoError(t, err)

	return e
}

// analyzer wraps engine or fails the test.
func analyzer(t testing.TB, engine stats.StateEngine, opts ...stats.Option) *stats.Analyzer {
	t.Helper()
	a, err := stats.NewAnalyzer(engine, opts...)
	require.NoError(t, err)

	return a
}

// fakeEngine returns canned answers.
type fakeEngine struct {
	rho   *linalg.Matrix
	probs []stats.BasisProbability
	err   error
	calls [][]stats.Property
}

func (f *fakeEngine) Probabilities(props []stats.Property) ([]stats.BasisProbability, error) {
	f.calls = append(f.calls, props)
	return f.probs, f.err
}

func (f *fakeEngine) ReducedDensityMatrix(props []stats.Property) (*linalg.Matrix, error) {
	f.calls = append(f.calls, props)
	return f.rho, f.err
}

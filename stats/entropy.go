// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qudit/eigen"
	"github.com/katalvlaran/qudit/linalg"
)

// Operation tags for error wrapping.
const (
	opEntropy           = "VonNeumannEntropy"
	opMutualInformation = "MutualInformation"
	opCorrelation       = "CorrelationMatrix"
	opNewAnalyzer       = "NewAnalyzer"
)

func statsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VonNeumannEntropy returns S(ρ) = −Σ λ·ln λ over λ = |λᵢ|, the magnitudes of
// the eigenvalues of rho, skipping every λ below the configured epsilon.
//
// Implementation:
//   - Stage 1: eigen.Diagonalize(rho) with the forwarded eigen options.
//   - Stage 2: keep magnitudes ≥ ε and sum with gonum stat.Entropy.
//
// Behavior highlights:
//   - Pure state → 0; maximally mixed D-dimensional state → ln D.
//   - No normalization is applied; rho is expected to be a density matrix.
//
// Errors:
//   - ErrNilMatrix from linalg (wrapped).
//
// Complexity:
//   - O(iterations·n³).
func VonNeumannEntropy(rho *linalg.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	s, _, err := entropy(rho, &o)
	if err != nil {
		return 0, statsErrorf(opEntropy, err)
	}

	return s, nil
}

// entropy is VonNeumannEntropy with resolved options; it also hands back the
// decomposition for tracing.
func entropy(rho *linalg.Matrix, o *Options) (float64, eigen.Decomposition, error) {
	d, err := eigen.Diagonalize(rho, o.eigen...)
	if err != nil {
		return 0, eigen.Decomposition{}, err
	}
	p := make([]float64, 0, len(d.Values))
	var mag float64
	for _, v := range d.Values {
		mag = cmplx.Abs(v)
		if mag >= o.eps {
			p = append(p, mag)
		}
	}
	s := stat.Entropy(p)
	o.logger.Debug().
		Int("order", rho.Rows()).
		Int("sweeps", d.Iterations).
		Bool("converged", d.Converged).
		Float64("off_diagonal", d.OffDiagonal).
		Float64("entropy", s).
		Msg("entropy computed")

	return s, d, nil
}

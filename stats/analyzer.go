// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qudit/linalg"
)

// Analyzer answers statistical queries against a StateEngine.
type Analyzer struct {
	engine StateEngine
	opts   Options
	log    zerolog.Logger
}

// NewAnalyzer wraps engine. Returns ErrNilEngine for a nil engine.
func NewAnalyzer(engine StateEngine, opts ...Option) (*Analyzer, error) {
	if engine == nil {
		return nil, statsErrorf(opNewAnalyzer, ErrNilEngine)
	}
	o := gatherOptions(opts...)
	o.logger = o.logger.With().Str("component", "analyzer").Logger()

	return &Analyzer{engine: engine, opts: o, log: o.logger}, nil
}

// Engine returns the wrapped StateEngine.
func (a *Analyzer) Engine() StateEngine { return a.engine }

// Entropy returns the von Neumann entropy of the reduced state of props.
func (a *Analyzer) Entropy(props []Property) (float64, error) {
	dim, err := validateProperties(props)
	if err != nil {
		return 0, statsErrorf(opEntropy, err)
	}
	s, err := a.subsystemEntropy(props, dim)
	if err != nil {
		return 0, statsErrorf(opEntropy, err)
	}

	return s, nil
}

// MutualInformation returns, for every property i, the mutual information
// between i and the rest of the set: I(i) = S(ρᵢ) + S(ρ_¬i) − S(ρ_all).
//
// Implementation:
//   - Stage 1: validate props (non-empty, distinct IDs, dimensions ≥ 1).
//   - Stage 2: S_all from the reduced density matrix of the whole set.
//   - Stage 3: per property, S(ρᵢ) and S(ρ_¬i); the complement of a single
//     property is the trivial subsystem [1] with entropy 0 and is not queried.
//
// Behavior highlights:
//   - Bell pair: [2 ln 2, 2 ln 2]; product state: zeros.
//   - Results are in props order.
//
// Errors:
//   - ErrNoProperties, ErrDuplicateProperty, ErrInvalidDimension.
//   - ErrDimensionMismatch when the engine returns a matrix of the wrong order.
//   - Engine errors, wrapped.
//
// Complexity:
//   - 2N+1 diagonalizations, each O(iterations·D³) for the subsystem order D.
func (a *Analyzer) MutualInformation(props []Property) ([]float64, error) {
	total, err := validateProperties(props)
	if err != nil {
		return nil, statsErrorf(opMutualInformation, err)
	}
	sAll, err := a.subsystemEntropy(props, total)
	if err != nil {
		return nil, statsErrorf(opMutualInformation, err)
	}

	out := make([]float64, len(props))
	var sSelf, sRest float64
	for i, p := range props {
		if sSelf, err = a.subsystemEntropy(props[i:i+1], p.Dimension); err != nil {
			return nil, statsErrorf(opMutualInformation, err)
		}
		sRest = 0
		if len(props) > 1 {
			if sRest, err = a.subsystemEntropy(without(props, i), total/p.Dimension); err != nil {
				return nil, statsErrorf(opMutualInformation, err)
			}
		}
		out[i] = sSelf + sRest - sAll
		a.log.Debug().
			Str("property", p.ID).
			Float64("self", sSelf).
			Float64("rest", sRest).
			Float64("all", sAll).
			Float64("mutual_information", out[i]).
			Msg("mutual information")
	}

	return out, nil
}

// subsystemEntropy fetches the reduced density matrix of props, checks its
// order against dim and returns its entropy.
func (a *Analyzer) subsystemEntropy(props []Property, dim int) (float64, error) {
	rho, err := a.engine.ReducedDensityMatrix(props)
	if err != nil {
		return 0, fmt.Errorf("reduced density matrix: %w", err)
	}
	if rho == nil {
		return 0, fmt.Errorf("reduced density matrix: %w", linalg.ErrNilMatrix)
	}
	if rho.Rows() != dim {
		return 0, fmt.Errorf("order %d, want %d: %w", rho.Rows(), dim, ErrDimensionMismatch)
	}
	s, _, err := entropy(rho, &a.opts)

	return s, err
}

// CorrelationMatrix returns the D0×D1 correlation matrix of exactly two properties.
// See CorrelationFromProbabilities for the entry formula. A distribution whose
// total differs from 1 beyond the probability tolerance is logged at warn
// level and used as is.
//
// Errors:
//   - ErrPropertyCount unless len(props) == 2.
//   - ErrDuplicateProperty, ErrInvalidDimension, ErrOutcomeOutOfRange.
//   - Engine errors, wrapped.
func (a *Analyzer) CorrelationMatrix(props []Property) (*CorrelationMatrix, error) {
	if len(props) != 2 {
		return nil, statsErrorf(opCorrelation, fmt.Errorf("got %d, want 2: %w", len(props), ErrPropertyCount))
	}
	if _, err := validateProperties(props); err != nil {
		return nil, statsErrorf(opCorrelation, err)
	}
	probs, err := a.engine.Probabilities(props)
	if err != nil {
		return nil, statsErrorf(opCorrelation, fmt.Errorf("probabilities: %w", err))
	}
	c, err := CorrelationFromProbabilities(props[0].Dimension, props[1].Dimension, probs)
	if err != nil {
		return nil, statsErrorf(opCorrelation, err)
	}

	mass := make([]float64, len(probs))
	for i, bp := range probs {
		mass[i] = bp.Probability
	}
	total := floats.Sum(mass)
	if !scalar.EqualWithinAbs(total, 1, a.opts.massTol) {
		a.log.Warn().
			Str("first", props[0].ID).
			Str("second", props[1].ID).
			Float64("mass", total).
			Msg("probabilities do not sum to 1")
	}
	a.log.Debug().
		Str("first", props[0].ID).
		Str("second", props[1].ID).
		Int("outcomes", len(probs)).
		Float64("mass", total).
		Msg("correlation matrix")

	return c, nil
}

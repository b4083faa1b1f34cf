// SPDX-License-Identifier: MIT

// Package stats: functional configuration for entropy and Analyzer.
package stats

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qudit/eigen"
)

// DefaultEpsilon is the eigenvalue magnitude below which a term is dropped
// from the entropy sum. It equals eigen.DefaultEpsilon.
const DefaultEpsilon = eigen.DefaultEpsilon

// DefaultProbabilityTolerance bounds |Σ p − 1| before the Analyzer warns
// about an unnormalized distribution.
const DefaultProbabilityTolerance = 1e-9

const (
	panicEpsilonInvalid       = "stats: WithEpsilon: eps must be finite, non-negative"
	panicProbabilityTolerance = "stats: WithProbabilityTolerance: tol must be finite, non-negative"
)

// Option configures VonNeumannEntropy and Analyzer.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	eps     float64
	massTol float64
	eigen   []eigen.Option
	logger  zerolog.Logger
}

// WithEpsilon sets the negligible-eigenvalue cut. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithProbabilityTolerance sets how far the total probability may stray from 1
// before a warning is logged. Probabilities are never renormalized.
// Panics on negative or non-finite tol.
func WithProbabilityTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicProbabilityTolerance)
	}

	return func(o *Options) { o.massTol = tol }
}

// WithEigenOptions forwards options to eigen.Diagonalize. Repeated use appends.
func WithEigenOptions(opts ...eigen.Option) Option {
	return func(o *Options) { o.eigen = append(o.eigen, opts...) }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.logger = log }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		massTol: DefaultProbabilityTolerance,
		logger:  zerolog.Nop(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

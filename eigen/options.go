// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for QR and Diagonalize.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package eigen

import "math"

// Mode selects the iteration policy of Diagonalize.
type Mode int

const (
	// ModeConverge stops once the off-diagonal norm is below the tolerance.
	ModeConverge Mode = iota
	// ModeFixed performs exactly the configured number of sweeps.
	ModeFixed
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeConverge:
		return "converge"
	case ModeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Projection selects the Gram–Schmidt projection used by QR.
type Projection int

const (
	// ProjectionComplex uses linalg.ProjectComplex (unitary Q for any input).
	ProjectionComplex Projection = iota
	// ProjectionMagnitude uses linalg.Project (magnitude-only overlap).
	ProjectionMagnitude
)

// String implements fmt.Stringer.
func (p Projection) String() string {
	switch p {
	case ProjectionComplex:
		return "complex"
	case ProjectionMagnitude:
		return "magnitude"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultIterations is the sweep budget (exact count in ModeFixed).
	DefaultIterations = 100

	// DefaultTolerance is the off-diagonal Frobenius norm below which
	// ModeConverge stops.
	DefaultTolerance = 1e-12

	// DefaultEpsilon is float64 machine epsilon. Columns whose magnitude does
	// not exceed it are left unnormalized by QR.
	DefaultEpsilon = 2.220446049250313e-16

	// DefaultMode is the iteration policy.
	DefaultMode = ModeConverge

	// DefaultProjection is the Gram–Schmidt projection.
	DefaultProjection = ProjectionComplex
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicIterationsInvalid = "eigen: WithIterations: n must be >= 1"
	panicToleranceInvalid  = "eigen: WithTolerance: tol must be finite, non-negative"
	panicEpsilonInvalid    = "eigen: WithDegeneracyEpsilon: eps must be finite, non-negative"
	panicModeInvalid       = "eigen: WithMode: unknown mode"
	panicProjectionInvalid = "eigen: WithProjection: unknown projection"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	iterations int        // >= 1; DefaultIterations
	tolerance  float64    // >= 0; DefaultTolerance
	eps        float64    // >= 0; DefaultEpsilon
	mode       Mode       // DefaultMode
	projection Projection // DefaultProjection
}

// Iterations returns the configured sweep budget.
func (o Options) Iterations() int { return o.iterations }

// Tolerance returns the configured convergence tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// Epsilon returns the configured degeneracy epsilon.
func (o Options) Epsilon() float64 { return o.eps }

// Mode returns the configured iteration policy.
func (o Options) Mode() Mode { return o.mode }

// Projection returns the configured Gram–Schmidt projection.
func (o Options) Projection() Projection { return o.projection }

// WithIterations sets the sweep budget.
// Panics when n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.iterations = n }
}

// WithTolerance sets the off-diagonal norm threshold of ModeConverge.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 never stops early unless B becomes exactly diagonal.
//   - Ignored in ModeFixed.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithDegeneracyEpsilon sets the magnitude at or below which a Gram–Schmidt
// column is left unnormalized. Panics on negative or non-finite eps.
func WithDegeneracyEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMode selects ModeConverge or ModeFixed.
func WithMode(m Mode) Option {
	if m != ModeConverge && m != ModeFixed {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithProjection selects the Gram–Schmidt projection.
func WithProjection(p Projection) Option {
	if p != ProjectionComplex && p != ProjectionMagnitude {
		panic(panicProjectionInvalid)
	}

	return func(o *Options) { o.projection = p }
}

// Resolve applies opts over the defaults and returns the effective options.
// It lets callers log or inspect the configuration they pass through.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user options in order (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		iterations: DefaultIterations,
		tolerance:  DefaultTolerance,
		eps:        DefaultEpsilon,
		mode:       DefaultMode,
		projection: DefaultProjection,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

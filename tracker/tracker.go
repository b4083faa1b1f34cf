// SPDX-License-Identifier: MIT

package tracker

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/stats"
)

// cache is the shared update/read machinery of every tracker.
type cache[T any] struct {
	updateMu sync.Mutex // serializes compute and store
	mu       sync.RWMutex
	last    T
	valid   bool
	updates int

	compute func() (T, error)
	clone   func(T) T
	render  func(T) string
	log     zerolog.Logger
}

func newCache[T any](component string, o options, compute func() (T, error), clone func(T) T, render func(T) string) *cache[T] {
	return &cache[T]{
		compute: compute,
		clone:   clone,
		render:  render,
		log:     o.logger.With().Str("component", component).Logger(),
	}
}

// Update recomputes the value and caches it. On failure the error is logged,
// the cached value is left untouched and the error is returned.
// Concurrent calls run one at a time, so the cache always holds the result
// of the most recently started successful update.
func (c *cache[T]) Update() (T, error) {
	c.updateMu.Lock()
	defer c.updateMu.Unlock()

	v, err := c.compute()
	if err != nil {
		c.log.Error().Err(err).Msg("update failed")
		var zero T

		return zero, err
	}
	c.mu.Lock()
	c.last = v
	c.valid = true
	c.updates++
	n := c.updates
	c.mu.Unlock()
	c.log.Debug().Int("updates", n).Msg("updated")

	return c.clone(v), nil
}

// Last returns a copy of the cached value and whether one exists.
func (c *cache[T]) Last() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		var zero T

		return zero, false
	}

	return c.clone(c.last), true
}

// Updates returns the number of successful updates.
func (c *cache[T]) Updates() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.updates
}

// Text renders the cached value with two decimals; empty before the first update.
func (c *cache[T]) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid {
		return ""
	}

	return c.render(c.last)
}

// Run updates once immediately and then every interval until ctx is done.
// Update failures are logged and do not stop the loop. Returns ctx.Err(), or
// ErrInterval for interval ≤ 0.
func (c *cache[T]) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("Run(%s): %w", interval, ErrInterval)
	}
	_, _ = c.Update()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_, _ = c.Update()
		}
	}
}

// Entanglement tracks the mutual information of each property with the rest.
type Entanglement struct {
	*cache[[]float64]
	props []stats.Property
}

// NewEntanglement tracks analyzer.MutualInformation(props).
// Errors: ErrNilSource, ErrTooFewProperties.
func NewEntanglement(analyzer *stats.Analyzer, props []stats.Property, opts ...Option) (*Entanglement, error) {
	if analyzer == nil {
		return nil, ErrNilSource
	}
	if len(props) < 2 {
		return nil, fmt.Errorf("%d properties: %w", len(props), ErrTooFewProperties)
	}
	owned := append([]stats.Property(nil), props...)
	e := &Entanglement{props: owned}
	e.cache = newCache("entanglement_tracker", gatherOptions(opts...),
		func() ([]float64, error) { return analyzer.MutualInformation(owned) },
		cloneFloats,
		renderFloats,
	)

	return e, nil
}

// Total returns the sum of the cached mutual information values.
func (e *Entanglement) Total() (float64, bool) {
	v, ok := e.Last()
	if !ok {
		return 0, false
	}

	return floats.Sum(v), true
}

// Correlation tracks the correlation matrix of two properties.
type Correlation struct {
	*cache[*stats.CorrelationMatrix]
}

// NewCorrelation tracks analyzer.CorrelationMatrix(props).
// The property count is checked on each update (stats.ErrPropertyCount).
func NewCorrelation(analyzer *stats.Analyzer, props []stats.Property, opts ...Option) (*Correlation, error) {
	if analyzer == nil {
		return nil, ErrNilSource
	}
	owned := append([]stats.Property(nil), props...)
	c := &Correlation{}
	c.cache = newCache("correlation_tracker", gatherOptions(opts...),
		func() (*stats.CorrelationMatrix, error) { return analyzer.CorrelationMatrix(owned) },
		// CorrelationMatrix has no mutators; sharing is safe.
		func(m *stats.CorrelationMatrix) *stats.CorrelationMatrix { return m },
		func(m *stats.CorrelationMatrix) string { return m.String() },
	)

	return c, nil
}

// DensityMatrix tracks the reduced density matrix of a property set.
type DensityMatrix struct {
	*cache[*linalg.Matrix]
}

// NewDensityMatrix tracks engine.ReducedDensityMatrix(props).
func NewDensityMatrix(engine stats.StateEngine, props []stats.Property, opts ...Option) (*DensityMatrix, error) {
	if engine == nil {
		return nil, ErrNilSource
	}
	owned := append([]stats.Property(nil), props...)
	d := &DensityMatrix{}
	d.cache = newCache("density_matrix_tracker", gatherOptions(opts...),
		func() (*linalg.Matrix, error) { return engine.ReducedDensityMatrix(owned) },
		func(m *linalg.Matrix) *linalg.Matrix { return m.Clone() },
		func(m *linalg.Matrix) string { return m.String() },
	)

	return d, nil
}

// Probabilities tracks the joint basis-outcome distribution of a property set.
type Probabilities struct {
	*cache[[]stats.BasisProbability]
}

// NewProbabilities tracks engine.Probabilities(props).
func NewProbabilities(engine stats.StateEngine, props []stats.Property, opts ...Option) (*Probabilities, error) {
	if engine == nil {
		return nil, ErrNilSource
	}
	owned := append([]stats.Property(nil), props...)
	p := &Probabilities{}
	p.cache = newCache("probability_tracker", gatherOptions(opts...),
		func() ([]stats.BasisProbability, error) { return engine.Probabilities(owned) },
		cloneProbabilities,
		renderProbabilities,
	)

	return p, nil
}

// Phase tracks the complex argument of every reduced density matrix entry.
type Phase struct {
	*cache[*mat.Dense]
	degrees bool
}

// NewPhase tracks arg(ρᵢⱼ) of engine.ReducedDensityMatrix(props), in radians
// unless WithDegrees is given.
func NewPhase(engine stats.StateEngine, props []stats.Property, opts ...Option) (*Phase, error) {
	if engine == nil {
		return nil, ErrNilSource
	}
	o := gatherOptions(opts...)
	owned := append([]stats.Property(nil), props...)
	ph := &Phase{degrees: o.degrees}
	ph.cache = newCache("phase_tracker", o,
		func() (*mat.Dense, error) {
			rho, err := engine.ReducedDensityMatrix(owned)
			if err != nil {
				return nil, err
			}

			return phases(rho, o.degrees)
		},
		func(m *mat.Dense) *mat.Dense { return mat.DenseCopyOf(m) },
		renderGrid,
	)

	return ph, nil
}

// Degrees reports whether phases are cached in degrees.
func (p *Phase) Degrees() bool { return p.degrees }

func phases(rho *linalg.Matrix, degrees bool) (*mat.Dense, error) {
	n := rho.Rows()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := rho.At(i, j)
			if err != nil {
				return nil, err
			}
			arg := cmplx.Phase(v)
			if degrees {
				arg *= 180 / math.Pi
			}
			out.Set(i, j, arg)
		}
	}

	return out, nil
}

func cloneProbabilities(v []stats.BasisProbability) []stats.BasisProbability {
	out := make([]stats.BasisProbability, len(v))
	for i, bp := range v {
		out[i] = stats.BasisProbability{
			Probability: bp.Probability,
			Outcomes:    append([]int(nil), bp.Outcomes...),
		}
	}

	return out
}

// renderProbabilities prints one "outcomes probability" line per entry.
func renderProbabilities(v []stats.BasisProbability) string {
	var sb strings.Builder
	for _, bp := range v {
		fmt.Fprintf(&sb, "%v %.2f\n", bp.Outcomes, bp.Probability)
	}

	return sb.String()
}

// renderGrid prints every entry as "%.2f " and ends each row with a newline.
func renderGrid(m *mat.Dense) string {
	var sb strings.Builder
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fmt.Fprintf(&sb, "%.2f ", m.At(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func cloneFloats(v []float64) []float64 { return append([]float64(nil), v...) }

// renderFloats prints values with two decimals on one line.
func renderFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.2f", x)
	}

	return strings.Join(parts, " ") + "\n"
}

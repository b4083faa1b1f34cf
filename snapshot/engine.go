// SPDX-License-Identifier: MIT

package snapshot

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs/cscalar"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/stats"
)

// Operation tags for error wrapping.
const (
	opNew                  = "snapshot.New"
	opFromStateVector      = "snapshot.FromStateVector"
	opProduct              = "snapshot.Product"
	opReducedDensityMatrix = "snapshot.ReducedDensityMatrix"
	opProbabilities        = "snapshot.Probabilities"
)

func snapshotErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Engine is an immutable StateEngine over a full density matrix.
type Engine struct {
	props  []stats.Property
	index  map[string]int // ID → position in props
	stride []int          // stride[k] = Π dims after k
	rho    *linalg.Matrix
}

var _ stats.StateEngine = (*Engine)(nil)

// New builds an engine over rho for the ordered props.
//
// Implementation:
//   - Stage 1: validate props (non-empty, distinct IDs, dimensions ≥ 1).
//   - Stage 2: require rho order == Π dimensions.
//   - Stage 3: require rho Hermitian and tr ρ = 1 within tolerance.
//   - Stage 4: keep a private copy of rho.
//
// Errors:
//   - ErrNoProperties, ErrDuplicateProperty, ErrInvalidDimension,
//     ErrDimensionMismatch, ErrNotHermitian, ErrTrace, linalg.ErrNilMatrix.
func New(props []stats.Property, rho *linalg.Matrix, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	e, total, err := layout(props)
	if err != nil {
		return nil, snapshotErrorf(opNew, err)
	}
	if err = linalg.ValidateNotNil(rho); err != nil {
		return nil, snapshotErrorf(opNew, err)
	}
	if rho.Rows() != total {
		return nil, snapshotErrorf(opNew, fmt.Errorf("order %d, want %d: %w", rho.Rows(), total, ErrDimensionMismatch))
	}
	herm, err := linalg.IsHermitian(rho, o.tol)
	if err != nil {
		return nil, snapshotErrorf(opNew, err)
	}
	if !herm {
		return nil, snapshotErrorf(opNew, ErrNotHermitian)
	}
	tr, err := linalg.Trace(rho)
	if err != nil {
		return nil, snapshotErrorf(opNew, err)
	}
	if !cscalar.EqualWithinAbs(tr, 1, o.tol) {
		return nil, snapshotErrorf(opNew, fmt.Errorf("trace %v: %w", tr, ErrTrace))
	}
	e.rho = rho.Clone()

	return e, nil
}

// FromStateVector builds the engine of the pure state ρ = |ψ⟩⟨ψ|.
// Errors: those of New, plus ErrDimensionMismatch for len(psi) ≠ Π dimensions
// and ErrNotNormalized when ‖ψ‖ differs from 1 by more than the tolerance.
func FromStateVector(props []stats.Property, psi linalg.Vector, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	_, total, err := layout(props)
	if err != nil {
		return nil, snapshotErrorf(opFromStateVector, err)
	}
	if len(psi) != total {
		return nil, snapshotErrorf(opFromStateVector, fmt.Errorf("length %d, want %d: %w", len(psi), total, ErrDimensionMismatch))
	}
	if norm := linalg.Magnitude(psi); !scalar.EqualWithinAbs(norm, 1, o.tol) {
		return nil, snapshotErrorf(opFromStateVector, fmt.Errorf("norm %g: %w", norm, ErrNotNormalized))
	}
	conj := make(linalg.Vector, len(psi))
	for i, v := range psi {
		conj[i] = cmplx.Conj(v)
	}
	// OuterProduct conjugates its first argument: entry (i,j) = ψᵢ·conj(ψⱼ).
	rho, err := linalg.OuterProduct(conj, conj)
	if err != nil {
		return nil, snapshotErrorf(opFromStateVector, err)
	}

	return New(props, rho, opts...)
}

// Product builds the engine of the product state ρ₀ ⊗ ρ₁ ⊗ …, one factor per property.
// Errors: those of New, plus ErrDimensionMismatch when the factor count or a
// factor order disagrees with props.
func Product(props []stats.Property, factors []*linalg.Matrix, opts ...Option) (*Engine, error) {
	if len(factors) != len(props) {
		return nil, snapshotErrorf(opProduct, fmt.Errorf("%d factors for %d properties: %w", len(factors), len(props), ErrDimensionMismatch))
	}
	if len(props) == 0 {
		return nil, snapshotErrorf(opProduct, ErrNoProperties)
	}
	var (
		rho *linalg.Matrix
		err error
	)
	for k, f := range factors {
		if err = linalg.ValidateNotNil(f); err != nil {
			return nil, snapshotErrorf(opProduct, err)
		}
		if f.Rows() != props[k].Dimension {
			return nil, snapshotErrorf(opProduct, fmt.Errorf("factor %d order %d, want %d: %w", k, f.Rows(), props[k].Dimension, ErrDimensionMismatch))
		}
		if rho == nil {
			rho = f
			continue
		}
		if rho, err = linalg.Kron(rho, f); err != nil {
			return nil, snapshotErrorf(opProduct, err)
		}
	}

	return New(props, rho, opts...)
}

// layout validates props and precomputes the index and strides.
func layout(props []stats.Property) (*Engine, int, error) {
	if len(props) == 0 {
		return nil, 0, ErrNoProperties
	}
	e := &Engine{
		props:  make([]stats.Property, len(props)),
		index:  make(map[string]int, len(props)),
		stride: make([]int, len(props)),
	}
	copy(e.props, props)
	total := 1
	for k := len(props) - 1; k >= 0; k-- {
		p := props[k]
		if p.Dimension < 1 {
			return nil, 0, fmt.Errorf("property %q dimension %d: %w", p.ID, p.Dimension, ErrInvalidDimension)
		}
		if _, dup := e.index[p.ID]; dup {
			return nil, 0, fmt.Errorf("property %q: %w", p.ID, ErrDuplicateProperty)
		}
		e.index[p.ID] = k
		e.stride[k] = total
		total *= p.Dimension
	}

	return e, total, nil
}

// Properties returns a copy of the ordered property list.
func (e *Engine) Properties() []stats.Property {
	out := make([]stats.Property, len(e.props))
	copy(out, e.props)

	return out
}

// DensityMatrix returns a copy of the full density matrix.
func (e *Engine) DensityMatrix() *linalg.Matrix { return e.rho.Clone() }

// positions resolves subset to positions in e.props, in subset order.
func (e *Engine) positions(subset []stats.Property) ([]int, error) {
	pos := make([]int, len(subset))
	seen := make(map[string]struct{}, len(subset))
	for t, p := range subset {
		k, ok := e.index[p.ID]
		if !ok {
			return nil, fmt.Errorf("property %q: %w", p.ID, ErrUnknownProperty)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("property %q: %w", p.ID, ErrDuplicateProperty)
		}
		if p.Dimension != e.props[k].Dimension {
			return nil, fmt.Errorf("property %q dimension %d, registered %d: %w", p.ID, p.Dimension, e.props[k].Dimension, ErrDimensionMismatch)
		}
		seen[p.ID] = struct{}{}
		pos[t] = k
	}

	return pos, nil
}

// offsets enumerates, in mixed-radix order over pos (first most significant),
// the partial full-basis offsets Σ digitₜ·stride[pos[t]].
func (e *Engine) offsets(pos []int) []int {
	offs := []int{0}
	var next []int
	for _, k := range pos {
		d := e.props[k].Dimension
		next = make([]int, 0, len(offs)*d)
		for _, o := range offs {
			for digit := 0; digit < d; digit++ {
				next = append(next, o+digit*e.stride[k])
			}
		}
		offs = next
	}

	return offs
}

// complement returns the positions not in pos, in engine order.
func (e *Engine) complement(pos []int) []int {
	in := make([]bool, len(e.props))
	for _, k := range pos {
		in[k] = true
	}
	out := make([]int, 0, len(e.props)-len(pos))
	for k := range e.props {
		if !in[k] {
			out = append(out, k)
		}
	}

	return out
}

// ReducedDensityMatrix traces out every property not in subset.
//
// Implementation:
//   - Stage 1: resolve subset positions and the complement.
//   - Stage 2: enumerate subset offsets offS and complement offsets offC.
//   - Stage 3: ρ_S[a,b] = Σ_c ρ[offS[a]+offC[c], offS[b]+offC[c]].
//
// Errors:
//   - ErrUnknownProperty, ErrDuplicateProperty, ErrDimensionMismatch.
//
// Complexity:
//   - O(D_S²·D_C) for subset order D_S and complement order D_C.
func (e *Engine) ReducedDensityMatrix(subset []stats.Property) (*linalg.Matrix, error) {
	pos, err := e.positions(subset)
	if err != nil {
		return nil, snapshotErrorf(opReducedDensityMatrix, err)
	}
	offS := e.offsets(pos)
	offC := e.offsets(e.complement(pos))

	out, err := linalg.NewMatrix(len(offS))
	if err != nil {
		return nil, snapshotErrorf(opReducedDensityMatrix, err)
	}
	var (
		a, b int
		acc  complex128
		v    complex128
	)
	for a = range offS {
		for b = range offS {
			acc = 0
			for _, c := range offC {
				v, _ = e.rho.At(offS[a]+c, offS[b]+c)
				acc += v
			}
			_ = out.Set(a, b, acc)
		}
	}

	return out, nil
}

// Probabilities returns the joint distribution of subset, one entry per basis
// combination in mixed-radix order (first property most significant),
// zero-probability combinations included.
//
// Errors: those of ReducedDensityMatrix.
func (e *Engine) Probabilities(subset []stats.Property) ([]stats.BasisProbability, error) {
	rho, err := e.ReducedDensityMatrix(subset)
	if err != nil {
		return nil, snapshotErrorf(opProbabilities, err)
	}
	diag, err := linalg.Diagonal(rho)
	if err != nil {
		return nil, snapshotErrorf(opProbabilities, err)
	}

	out := make([]stats.BasisProbability, len(diag))
	digits := make([]int, len(subset))
	for a, v := range diag {
		out[a] = stats.BasisProbability{
			Probability: real(v),
			Outcomes:    append([]int(nil), digits...),
		}
		// advance the mixed-radix counter, last digit fastest
		for t := len(digits) - 1; t >= 0; t-- {
			digits[t]++
			if digits[t] < subset[t].Dimension {
				break
			}
			digits[t] = 0
		}
	}

	return out, nil
}

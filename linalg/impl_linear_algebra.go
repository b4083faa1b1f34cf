// SPDX-License-Identifier: MIT
// Package linalg provides the vector and matrix kernels used by the QR
// iteration and the qudit statistics. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical complex kernels (products, projections, sums).
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Every kernel allocates its result; operands are never mutated.

package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opIdentity        = "Identity"
	opDuplicate       = "Duplicate"
	opDiagonal        = "Diagonal"
	opTrace           = "Trace"
	opScale           = "Scale"
	opInnerProduct    = "InnerProduct"
	opOuterProduct    = "OuterProduct"
	opProject         = "Project"
	opProjectComplex  = "ProjectComplex"
	opAddVec          = "AddVec"
	opSubVec          = "SubVec"
	opAdd             = "Add"
	opSub             = "Sub"
	opMul             = "Mul"
	opMulVec          = "MulVec"
	opConjTranspose   = "ConjugateTranspose"
	opKron            = "Kron"
	opOffDiagonalNorm = "OffDiagonalNorm"
	opAllClose        = "AllClose"
	opIsHermitian     = "IsHermitian"
)

// linalgErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Inputs:
//   - tag: operation name (use the op* constants).
//   - err: underlying non-nil error to wrap.
//
// Notes:
//   - Wrapping nil with %w yields a non-nil error that wraps a nil cause; gate calls
//     with `if err != nil`.
//
// Complexity:
//   - Time O(1), Space O(1).
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns s·v.
// Complexity: O(n).
func Scale(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	f := complex(s, 0)
	var i int
	for i = range v {
		out[i] = v[i] * f
	}

	return out
}

// scaleComplex returns s·v for a complex factor.
func scaleComplex(v Vector, s complex128) Vector {
	out := make(Vector, len(v))
	var i int
	for i = range v {
		out[i] = v[i] * s
	}

	return out
}

// InnerProduct returns Σ a[i]·conj(b[i]).
// The second argument is the conjugated one, so InnerProduct(a, b) ==
// conj(InnerProduct(b, a)).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func InnerProduct(a, b Vector) (complex128, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, linalgErrorf(opInnerProduct, err)
	}
	var (
		acc complex128
		i   int
	)
	for i = range a {
		acc += a[i] * cmplx.Conj(b[i])
	}

	return acc, nil
}

// OuterProduct returns the n×n matrix with entry (i,j) = conj(a[i])·b[j].
// A density matrix |ψ⟩⟨ψ| is therefore OuterProduct(conj(ψ), conj(ψ)).
//
// Errors: ErrDimensionMismatch, ErrInvalidDimensions for empty vectors.
// Complexity: O(n²).
func OuterProduct(a, b Vector) (*Matrix, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, linalgErrorf(opOuterProduct, err)
	}
	n := len(a)
	m, err := NewMatrix(n)
	if err != nil {
		return nil, linalgErrorf(opOuterProduct, err)
	}
	var (
		i, j int
		ca   complex128
	)
	for i = 0; i < n; i++ {
		ca = cmplx.Conj(a[i])
		for j = 0; j < n; j++ {
			m.data[i*n+j] = ca * b[j]
		}
	}

	return m, nil
}

// Project returns a scaled by |⟨a,b⟩| / |⟨a,a⟩|.
//
// Behavior highlights:
//   - Magnitude-only: the phase of the overlap is discarded, so for complex
//     data the result is not the orthogonal projection of b onto a.
//   - Returns the zero vector when |⟨a,b⟩| == 0 (this also covers a == 0).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func Project(a, b Vector) (Vector, error) {
	ab, err := InnerProduct(a, b)
	if err != nil {
		return nil, linalgErrorf(opProject, err)
	}
	num := cmplx.Abs(ab)
	if num == NormZero {
		return make(Vector, len(a)), nil
	}
	aa, _ := InnerProduct(a, a)

	return Scale(a, num/cmplx.Abs(aa)), nil
}

// ProjectComplex returns the orthogonal projection of b onto a:
// a · (⟨b,a⟩ / ⟨a,a⟩), with ⟨x,y⟩ = Σ x[i]·conj(y[i]).
// Returns the zero vector when ⟨b,a⟩ == 0.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(n).
func ProjectComplex(a, b Vector) (Vector, error) {
	ba, err := InnerProduct(b, a)
	if err != nil {
		return nil, linalgErrorf(opProjectComplex, err)
	}
	if ba == 0 {
		return make(Vector, len(a)), nil
	}
	aa, _ := InnerProduct(a, a)

	return scaleComplex(a, ba/aa), nil
}

// addSubVec computes out = a + sign·b elementwise.
func addSubVec(tag string, a, b Vector, sign complex128) (Vector, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	out := make(Vector, len(a))
	var i int
	for i = range a {
		out[i] = a[i] + sign*b[i]
	}

	return out, nil
}

// AddVec returns a + b.
// Errors: ErrDimensionMismatch.
func AddVec(a, b Vector) (Vector, error) { return addSubVec(opAddVec, a, b, 1) }

// SubVec returns a − b.
// Errors: ErrDimensionMismatch.
func SubVec(a, b Vector) (Vector, error) { return addSubVec(opSubVec, a, b, -1) }

// Magnitude returns the Euclidean norm sqrt(Σ Re(v[i]·conj(v[i]))).
// Complexity: O(n).
func Magnitude(v Vector) float64 {
	var (
		acc = NormZero
		i   int
	)
	for i = range v {
		acc += real(v[i] * cmplx.Conj(v[i]))
	}

	return math.Sqrt(acc)
}

// addSub computes out = a + sign·b for same-order matrices.
func addSub(tag string, a, b *Matrix, sign complex128) (*Matrix, error) {
	if err := ValidateSameOrder(a, b); err != nil {
		return nil, linalgErrorf(tag, err)
	}
	out := &Matrix{n: a.n, data: make([]complex128, len(a.data))}
	var k int
	for k = range a.data {
		out.data[k] = a.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add returns A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(opAdd, a, b, 1) }

// Sub returns A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(opSub, a, b, -1) }

// Mul returns the matrix product A·B.
//
// Implementation:
//   - Stage 1: ValidateSameOrder(a, b).
//   - Stage 2: i-k-j loop order; row i of B is streamed for every a[i,k].
//
// Determinism:
//   - Fixed loop order, so results are bit-identical across runs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameOrder(a, b); err != nil {
		return nil, linalgErrorf(opMul, err)
	}
	n := a.n
	out := &Matrix{n: n, data: make([]complex128, n*n)}
	var (
		i, j, k int
		aik     complex128
		row     []complex128
	)
	for i = 0; i < n; i++ {
		row = out.data[i*n : (i+1)*n]
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				row[j] += aik * b.data[k*n+j]
			}
		}
	}

	return out, nil
}

// MulVec returns A·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func MulVec(a *Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, a.n); err != nil {
		return nil, linalgErrorf(opMulVec, err)
	}
	n := a.n
	out := make(Vector, n)
	var (
		i, j int
		acc  complex128
	)
	for i = 0; i < n; i++ {
		acc = 0
		for j = 0; j < n; j++ {
			acc += a.data[i*n+j] * x[j]
		}
		out[i] = acc
	}

	return out, nil
}

// ConjugateTranspose returns Aᴴ, with Aᴴ[i,j] = conj(A[j,i]).
// Errors: ErrNilMatrix.
// Complexity: O(n²).
func ConjugateTranspose(a *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opConjTranspose, err)
	}
	n := a.n
	out := &Matrix{n: n, data: make([]complex128, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = cmplx.Conj(a.data[j*n+i])
		}
	}

	return out, nil
}

// Kron returns the tensor product A⊗B of order n·m.
// Entry ((i·m + k), (j·m + l)) = A[i,j]·B[k,l], so A is the most significant factor.
//
// Errors: ErrNilMatrix.
// Complexity: O(n²m²).
func Kron(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, linalgErrorf(opKron, err)
	}
	n, m := a.n, b.n
	size := n * m
	out := &Matrix{n: size, data: make([]complex128, size*size)}
	var (
		i, j, k, l int
		aij        complex128
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij = a.data[i*n+j]
			for k = 0; k < m; k++ {
				for l = 0; l < m; l++ {
					out.data[(i*m+k)*size+j*m+l] = aij * b.data[k*m+l]
				}
			}
		}
	}

	return out, nil
}

// OffDiagonalNorm returns the Frobenius norm of the strictly off-diagonal part of A.
// It is the convergence measure of the QR iteration.
// Complexity: O(n²).
func OffDiagonalNorm(a *Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, linalgErrorf(opOffDiagonalNorm, err)
	}
	var (
		acc  = NormZero
		i, j int
		v    complex128
	)
	for i = 0; i < a.n; i++ {
		for j = 0; j < a.n; j++ {
			if i == j {
				continue
			}
			v = a.data[i*a.n+j]
			acc += real(v)*real(v) + imag(v)*imag(v)
		}
	}

	return math.Sqrt(acc), nil
}

// AllClose reports whether |A[i,j] − B[i,j]| ≤ tol for every entry.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b *Matrix, tol float64) (bool, error) {
	if err := ValidateSameOrder(a, b); err != nil {
		return false, linalgErrorf(opAllClose, err)
	}
	var k int
	for k = range a.data {
		if cmplx.Abs(a.data[k]-b.data[k]) > tol {
			return false, nil
		}
	}

	return true, nil
}

// IsHermitian reports whether |A[i,j] − conj(A[j,i])| ≤ tol for all i ≤ j.
// Errors: ErrNilMatrix.
func IsHermitian(a *Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, linalgErrorf(opIsHermitian, err)
	}
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = i; j < a.n; j++ {
			if cmplx.Abs(a.data[i*a.n+j]-cmplx.Conj(a.data[j*a.n+i])) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

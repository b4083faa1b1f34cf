// SPDX-License-Identifier: MIT

// Package linalg - square complex storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Column return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewMatrix: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Column: O(n).

package linalg

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxColumn    = "Column"
	ctxSetColumn = "SetColumn"
)

// ---------- Formatting literals ----------
const (
	_fmtEntry  = "(%.2f,%.2f)"
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square n×n grid of complex128 values.
//   - n holds the order (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Matrix struct {
	n    int          // order (>0 for every public constructor)
	data []complex128 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates an n×n zero matrix.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewMatrix(n int) (*Matrix, error) {
	// Validate order.
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{n: n, data: make([]complex128, n*n)}, nil
}

// NewMatrixFrom builds a matrix from explicit rows.
// The rows are copied; later edits to the input do not leak into the matrix.
// Returns ErrInvalidDimensions for an empty row set and ErrNonSquare when
// any row length differs from the number of rows.
// Complexity: O(n²).
func NewMatrixFrom(rows [][]complex128) (*Matrix, error) {
	n := len(rows)
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("NewMatrixFrom: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], rows[i]) // row i → slice [i*n, (i+1)*n)
	}

	return m, nil
}

// FromReal builds a matrix with zero imaginary parts from real rows.
// Same validation as NewMatrixFrom.
func FromReal(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	m, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromReal: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			m.data[i*n+j] = complex(rows[i][j], 0)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n)
	if err != nil {
		return nil, linalgErrorf(opIdentity, err)
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1 // main diagonal
	}

	return m, nil
}

// Rows returns the number of rows (== order).
func (m *Matrix) Rows() int { return m.n }

// Cols returns the number of columns (== order).
func (m *Matrix) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Matrix{n: m.n, data: buf}
}

// String renders the matrix as a grid of "(re,im)" pairs with two decimals,
// one row per line.
// Complexity: O(n²).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var (
		sb   strings.Builder
		i, j int
		v    complex128
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			v = m.data[i*m.n+j]
			fmt.Fprintf(&sb, _fmtEntry, real(v), imag(v))
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}

// Duplicate returns a deep copy of A.
// Errors: ErrNilMatrix.
func Duplicate(A *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, linalgErrorf(opDuplicate, err)
	}

	return A.Clone(), nil
}

// Column extracts column j of A as a fresh vector.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(n).
func Column(A *Matrix, j int) (Vector, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, linalgErrorf(ctxColumn, err)
	}
	if err := ValidateIndex(j, A.n); err != nil {
		return nil, matrixErrorf(ctxColumn, 0, j, err)
	}
	col := make(Vector, A.n)
	var i int
	for i = 0; i < A.n; i++ {
		col[i] = A.data[i*A.n+j]
	}

	return col, nil
}

// SetColumn overwrites column j of A with v in place.
// Errors: ErrNilMatrix, ErrOutOfRange, ErrDimensionMismatch.
func SetColumn(A *Matrix, j int, v Vector) error {
	if err := ValidateNotNil(A); err != nil {
		return linalgErrorf(ctxSetColumn, err)
	}
	if err := ValidateIndex(j, A.n); err != nil {
		return matrixErrorf(ctxSetColumn, 0, j, err)
	}
	if err := ValidateVecLen(v, A.n); err != nil {
		return linalgErrorf(ctxSetColumn, err)
	}
	var i int
	for i = 0; i < A.n; i++ {
		A.data[i*A.n+j] = v[i]
	}

	return nil
}

// Diagonal returns the main diagonal of A.
// Complexity: O(n).
func Diagonal(A *Matrix) (Vector, error) {
	if err := ValidateNotNil(A); err != nil {
		return nil, linalgErrorf(opDiagonal, err)
	}
	d := make(Vector, A.n)
	var i int
	for i = 0; i < A.n; i++ {
		d[i] = A.data[i*A.n+i]
	}

	return d, nil
}

// Trace returns Σ A[i,i].
// Complexity: O(n).
func Trace(A *Matrix) (complex128, error) {
	if err := ValidateNotNil(A); err != nil {
		return 0, linalgErrorf(opTrace, err)
	}
	var (
		tr complex128
		i  int
	)
	for i = 0; i < A.n; i++ {
		tr += A.data[i*A.n+i]
	}

	return tr, nil
}

// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All kernels return these sentinels, optionally wrapped with an operation
// tag ("Mul: linalg: dimension mismatch"). Callers match them via errors.Is.
// No kernel panics on user-triggered error conditions.

package linalg

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested matrix dimension is non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column or vector index is outside valid bounds.
	// At/Set and Column MUST return this, not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. vectors of
	// different lengths or matrices of different orders.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a row set passed to a constructor is ragged
	// or not square. Only square matrices exist in this package.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")
)

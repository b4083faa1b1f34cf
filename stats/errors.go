// SPDX-License-Identifier: MIT
// Package stats: sentinel error set.
// Engine failures are wrapped and returned as-is; match them with errors.Is.

package stats

import "errors"

var (
	// ErrNilEngine indicates that NewAnalyzer was given a nil StateEngine.
	ErrNilEngine = errors.New("stats: nil state engine")

	// ErrNoProperties indicates an empty property list.
	ErrNoProperties = errors.New("stats: no properties")

	// ErrDuplicateProperty indicates that the same property ID appears twice.
	ErrDuplicateProperty = errors.New("stats: duplicate property")

	// ErrInvalidDimension indicates a property dimension below 1.
	ErrInvalidDimension = errors.New("stats: property dimension must be >= 1")

	// ErrPropertyCount indicates a wrong number of properties for the operation.
	ErrPropertyCount = errors.New("stats: wrong number of properties")

	// ErrDimensionMismatch indicates that the engine returned a density matrix whose
	// order differs from the product of the property dimensions.
	ErrDimensionMismatch = errors.New("stats: density matrix dimension mismatch")

	// ErrOutcomeOutOfRange indicates an outcome tuple of the wrong length or
	// with an index outside [0, Dimension).
	ErrOutcomeOutOfRange = errors.New("stats: outcome out of range")
)

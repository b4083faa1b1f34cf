// SPDX-License-Identifier: MIT
// Package snapshot: sentinel error set.

package snapshot

import "errors"

var (
	// ErrNoProperties indicates an engine built over zero properties.
	ErrNoProperties = errors.New("snapshot: no properties")

	// ErrInvalidDimension indicates a property dimension below 1.
	ErrInvalidDimension = errors.New("snapshot: property dimension must be >= 1")

	// ErrUnknownProperty indicates a query for a property the engine does not hold.
	ErrUnknownProperty = errors.New("snapshot: unknown property")

	// ErrDuplicateProperty indicates the same property ID listed twice.
	ErrDuplicateProperty = errors.New("snapshot: duplicate property")

	// ErrDimensionMismatch indicates a state whose size differs from the product
	// of the property dimensions, or a queried property whose dimension differs
	// from the registered one.
	ErrDimensionMismatch = errors.New("snapshot: dimension mismatch")

	// ErrNotHermitian indicates a density matrix that is not Hermitian within tolerance.
	ErrNotHermitian = errors.New("snapshot: density matrix is not Hermitian")

	// ErrTrace indicates a density matrix whose trace is not 1 within tolerance.
	ErrTrace = errors.New("snapshot: density matrix trace is not 1")

	// ErrNotNormalized indicates a state vector whose norm is not 1 within tolerance.
	ErrNotNormalized = errors.New("snapshot: state vector is not normalized")
)

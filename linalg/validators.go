// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Single source of truth for nil/shape/length guards.
//   - Validators return plain sentinels tagged with the validator name so the
//     facades can wrap them uniformly with the operation tag.
//
// Determinism & Performance:
//   - All checks are O(1) and allocate nothing.

package linalg

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameOrder – Composite: NotNil(a) → NotNil(b) → equal order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameOrder(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameOrder", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameOrder", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameOrder", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors have the same length.
// Empty vectors are legal; nil and empty are treated alike.
// Complexity: O(1).
func ValidateSameLen(a, b Vector) error {
	if len(a) != len(b) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the matrix order n.
// Complexity: O(1).
func ValidateVecLen(x Vector, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

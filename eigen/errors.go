// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set.
// Diagonalize itself never fails on numerical grounds; these sentinels belong
// to the validation helpers.

package eigen

import "errors"

var (
	// ErrNotHermitian is returned by HermitianValues for input that is not
	// Hermitian within DefaultHermitianTolerance.
	ErrNotHermitian = errors.New("eigen: matrix is not Hermitian")

	// ErrFactorization indicates that the reference symmetric eigensolver did not converge.
	ErrFactorization = errors.New("eigen: reference factorization failed")
)

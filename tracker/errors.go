// SPDX-License-Identifier: MIT
// Package tracker: sentinel error set.

package tracker

import "errors"

var (
	// ErrNilSource indicates a nil analyzer or engine.
	ErrNilSource = errors.New("tracker: nil analyzer or engine")

	// ErrTooFewProperties indicates an entanglement tracker over fewer than two properties.
	ErrTooFewProperties = errors.New("tracker: at least two properties required")

	// ErrInterval indicates a non-positive Run interval.
	ErrInterval = errors.New("tracker: interval must be > 0")
)

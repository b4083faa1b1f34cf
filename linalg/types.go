// SPDX-License-Identifier: MIT

// Package linalg: value types shared by every kernel.
package linalg

// Vector is an ordered sequence of complex128 values of fixed length.
// Kernels never alias their inputs: every result is a freshly allocated Vector.
type Vector []complex128

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// SPDX-License-Identifier: MIT

package snapshot

import "math"

// DefaultTolerance bounds the Hermiticity, trace and norm checks of the constructors.
const DefaultTolerance = 1e-9

const panicToleranceInvalid = "snapshot: WithTolerance: tol must be finite, non-negative"

// Option configures the constructors.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance sets the validation tolerance. Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

func gatherOptions(user ...Option) options {
	o := options{tol: DefaultTolerance}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

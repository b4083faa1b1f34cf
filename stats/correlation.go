// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
)

// CorrelationFromProbabilities computes the correlation matrix of two
// properties of dimensions d0 and d1 from their joint distribution.
//
// Implementation:
//   - Stage 1: accumulate marginals p0[i], p1[j] and the joint p[i][j]; several
//     entries for the same outcome pair add up.
//   - Stage 2: entry(i,j) = (p[i][j] − p0[i]·p1[j]) / sqrt(p0[i](1−p0[i])·p1[j](1−p1[j])),
//     the Pearson correlation of the indicators [X = i] and [Y = j].
//
// Behavior highlights:
//   - A zero denominator (a marginal of 0 or 1) yields entry 0.
//   - Probabilities are not renormalized.
//   - Outcome pairs missing from probs count as probability 0.
//
// Errors:
//   - ErrInvalidDimension for d0 < 1 or d1 < 1.
//   - ErrOutcomeOutOfRange for an outcome tuple whose length is not 2 or
//     whose indices fall outside [0,d0)×[0,d1).
//
// Complexity:
//   - O(len(probs) + d0·d1).
func CorrelationFromProbabilities(d0, d1 int, probs []BasisProbability) (*CorrelationMatrix, error) {
	if d0 < 1 || d1 < 1 {
		return nil, fmt.Errorf("dimensions %d×%d: %w", d0, d1, ErrInvalidDimension)
	}

	var (
		p0    = make([]float64, d0)
		p1    = make([]float64, d1)
		joint = make([]float64, d0*d1)
		a, b  int
	)
	for k, bp := range probs {
		if len(bp.Outcomes) != 2 {
			return nil, fmt.Errorf("entry %d has %d outcomes, want 2: %w", k, len(bp.Outcomes), ErrOutcomeOutOfRange)
		}
		a, b = bp.Outcomes[0], bp.Outcomes[1]
		if a < 0 || a >= d0 || b < 0 || b >= d1 {
			return nil, fmt.Errorf("entry %d outcomes (%d,%d) outside %d×%d: %w", k, a, b, d0, d1, ErrOutcomeOutOfRange)
		}
		p0[a] += bp.Probability
		p1[b] += bp.Probability
		joint[a*d1+b] += bp.Probability
	}

	c := newCorrelationMatrix(d0, d1)
	var i, j int
	var norm float64
	for i = 0; i < d0; i++ {
		for j = 0; j < d1; j++ {
			norm = math.Sqrt(p0[i] * (1 - p0[i]) * p1[j] * (1 - p1[j]))
			if norm == 0 {
				continue
			}
			c.data[i*d1+j] = (joint[i*d1+j] - p0[i]*p1[j]) / norm
		}
	}

	return c, nil
}

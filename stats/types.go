// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qudit/linalg"
)

// Property identifies a qudit property handled by a StateEngine.
type Property struct {
	// ID is unique within a query.
	ID string
	// Dimension is the number of basis outcomes (≥ 1).
	Dimension int
}

// BasisProbability is the probability of one joint basis outcome.
// Outcomes holds one index per queried property, in query order.
type BasisProbability struct {
	Probability float64
	Outcomes    []int
}

// StateEngine is the contract the statistics consume.
//
// Probabilities returns the joint distribution over basis outcomes of props
// (in props order). ReducedDensityMatrix returns the density matrix of props
// with every other property traced out; its order is the product of the
// dimensions and the first property is the most significant index digit.
type StateEngine interface {
	Probabilities(props []Property) ([]BasisProbability, error)
	ReducedDensityMatrix(props []Property) (*linalg.Matrix, error)
}

// CorrelationMatrix is a D0×D1 real matrix in row-major order.
// Entry (i, j) correlates outcome i of the first property with outcome j of the second.
type CorrelationMatrix struct {
	rows, cols int
	data       []float64
}

var _ fmt.Stringer = (*CorrelationMatrix)(nil)

// newCorrelationMatrix allocates a zero rows×cols matrix.
func newCorrelationMatrix(rows, cols int) *CorrelationMatrix {
	return &CorrelationMatrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns D0.
func (c *CorrelationMatrix) Rows() int { return c.rows }

// Cols returns D1.
func (c *CorrelationMatrix) Cols() int { return c.cols }

// At returns entry (i, j) or ErrOutcomeOutOfRange.
func (c *CorrelationMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return 0, fmt.Errorf("CorrelationMatrix.At(%d,%d): %w", i, j, ErrOutcomeOutOfRange)
	}

	return c.data[i*c.cols+j], nil
}

// String renders one row per line, entries with two decimals separated by a space.
func (c *CorrelationMatrix) String() string {
	if c == nil {
		return "<nil>"
	}
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < c.rows; i++ {
		for j = 0; j < c.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.2f", c.data[i*c.cols+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

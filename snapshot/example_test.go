// SPDX-License-Identifier: MIT

package snapshot_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/snapshot"
	"github.com/katalvlaran/qudit/stats"
)

// ExampleEngine_Probabilities lists the joint distribution of a Bell pair.
func ExampleEngine_Probabilities() {
	a := stats.Property{ID: "a", Dimension: 2}
	b := stats.Property{ID: "b", Dimension: 2}
	r := complex(1/math.Sqrt2, 0)
	e, _ := snapshot.FromStateVector([]stats.Property{a, b}, linalg.Vector{r, 0, 0, r})

	probs, _ := e.Probabilities([]stats.Property{a, b})
	for _, p := range probs {
		fmt.Printf("%v %.2f\n", p.Outcomes, p.Probability)
	}
	// Output:
	// [0 0] 0.50
	// [0 1] 0.00
	// [1 0] 0.00
	// [1 1] 0.50
}

// SPDX-License-Identifier: MIT

package stats_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/snapshot"
	"github.com/katalvlaran/qudit/stats"
)

// ExampleAnalyzer shows the statistics of a Bell pair.
func ExampleAnalyzer() {
	a := stats.Property{ID: "a", Dimension: 2}
	b := stats.Property{ID: "b", Dimension: 2}
	r := complex(1/math.Sqrt2, 0)
	engine, _ := snapshot.FromStateVector([]stats.Property{a, b}, linalg.Vector{r, 0, 0, r})

	an, _ := stats.NewAnalyzer(engine)
	mi, _ := an.MutualInformation([]stats.Property{a, b})
	corr, _ := an.CorrelationMatrix([]stats.Property{a, b})

	fmt.Printf("mutual information: %.4f %.4f (2 ln 2 = %.4f)\n", mi[0], mi[1], 2*math.Ln2)
	fmt.Print(corr)
	// Output:
	// mutual information: 1.3863 1.3863 (2 ln 2 = 1.3863)
	// 1.00 -1.00
	// -1.00 1.00
}

// ExampleVonNeumannEntropy computes the entropy of a maximally mixed qutrit.
func ExampleVonNeumannEntropy() {
	third := 1.0 / 3
	rho, _ := linalg.FromReal([][]float64{{third, 0, 0}, {0, third, 0}, {0, 0, third}})
	s, _ := stats.VonNeumannEntropy(rho)
	fmt.Printf("S = %.6f, ln 3 = %.6f\n", s, math.Log(3))
	// Output:
	// S = 1.098612, ln 3 = 1.098612
}

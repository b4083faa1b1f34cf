// SPDX-License-Identifier: MIT

package tracker_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qudit/linalg"
	"github.com/katalvlaran/qudit/snapshot"
	"github.com/katalvlaran/qudit/stats"
	"github.com/katalvlaran/qudit/tracker"
)

// ExampleNewEntanglement refreshes an entanglement tracker once and prints it.
func ExampleNewEntanglement() {
	a := stats.Property{ID: "a", Dimension: 2}
	b := stats.Property{ID: "b", Dimension: 2}
	r := complex(1/math.Sqrt2, 0)
	engine, _ := snapshot.FromStateVector([]stats.Property{a, b}, linalg.Vector{r, 0, 0, r})
	an, _ := stats.NewAnalyzer(engine)

	tr, _ := tracker.NewEntanglement(an, []stats.Property{a, b})
	_, _ = tr.Update()
	fmt.Print(tr.Text())
	// Output:
	// 1.39 1.39
}

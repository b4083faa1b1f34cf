// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/qudit/linalg"
)

// ExampleOuterProduct builds the density matrix of (|0⟩ + |1⟩)/√2.
func ExampleOuterProduct() {
	psi := linalg.Vector{0.7071067811865476, 0.7071067811865476}
	rho, _ := linalg.OuterProduct(psi, psi)
	tr, _ := linalg.Trace(rho)
	fmt.Print(rho)
	fmt.Printf("trace=%.2f\n", real(tr))
	// Output:
	// (0.50,0.00) (0.50,0.00)
	// (0.50,0.00) (0.50,0.00)
	// trace=1.00
}

// ExampleKron shows the tensor product ordering: the left factor is the most significant.
func ExampleKron() {
	zero, _ := linalg.FromReal([][]float64{{1, 0}, {0, 0}})
	one, _ := linalg.FromReal([][]float64{{0, 0}, {0, 1}})
	k, _ := linalg.Kron(zero, one)
	d, _ := linalg.Diagonal(k)
	fmt.Println(real(d[0]), real(d[1]), real(d[2]), real(d[3]))
	// Output:
	// 0 1 0 0
}

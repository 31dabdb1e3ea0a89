// Package character_test provides runnable examples for the character basis.
package character_test

import (
	"fmt"
	"log"

	"github.com/bon-cdp/sheaflearn/character"
)

// ExampleBasis_Decompose splits a sequence into its C_2 character
// projections: the symmetric (mean) part and the antisymmetric part.
func ExampleBasis_Decompose() {
	// 1) Character basis of the cyclic group of order 2.
	basis, err := character.New(2)
	if err != nil {
		log.Fatal(err)
	}

	// 2) Decompose [3, 1]: projection 0 averages the rotations, projection 1
	//    weights the odd rotation by χ_1(g) = -1.
	projs := basis.Decompose([]complex128{3, 1})

	for j, proj := range projs {
		fmt.Printf("proj %d: [%.0f %.0f]\n", j, real(proj[0]), real(proj[1]))
	}
	// 3) Their sum reconstructs the input exactly.
	fmt.Printf("sum: [%.0f %.0f]\n", real(projs[0][0]+projs[1][0]), real(projs[0][1]+projs[1][1]))
	// Output:
	// proj 0: [2 2]
	// proj 1: [1 -1]
	// sum: [3 1]
}

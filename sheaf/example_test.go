package sheaf_test

import (
	"fmt"

	"github.com/bon-cdp/sheaflearn/sheaf"
)

// ExampleFit fits a single patch of arithmetic progressions and predicts the
// continuation of an unseen one.
func ExampleFit() {
	p := sheaf.NewProblem()
	var samples [][]float64
	var targets []float64
	for _, s := range []float64{1, 2, 3, 5} {
		samples = append(samples, []float64{2, 2 + s, 2 + 2*s, 2 + 3*s})
		targets = append(targets, 2+4*s)
	}
	_ = p.AddPatch("progressions", sheaf.Patch{
		Samples: samples,
		Targets: targets,
		Config:  sheaf.Config{NumCharacters: 4, NumPositions: 4},
	})

	sol, err := sheaf.Fit(p)
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	pred, _ := sol.Predict("progressions", []float64{3, 7, 11, 15})

	fmt.Printf("obstruction: %.4f\n", sol.Obstruction)
	fmt.Printf("next term: %.2f\n", pred)
	// Output:
	// obstruction: 0.0000
	// next term: 19.00
}

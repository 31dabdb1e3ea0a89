package discover

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/bon-cdp/sheaflearn/sheaf"
)

// Strategy is one named candidate conditioning.
type Strategy struct {
	Name string
	Fn   Conditioning
}

// Result records the outcome of fitting one strategy.
type Result struct {
	Strategy    string
	PatchNames  []string
	Obstruction float64
	Solution    *sheaf.Solution
}

// Search partitions and fits the data once per strategy and returns the
// result with the lowest obstruction together with every per-strategy
// result, in strategy order. Fit options apply to every candidate. Search is
// sequential and deterministic; candidates share no state, so callers
// needing parallelism can run one Search (or Partition+Fit) per goroutine
// instead.
func Search(samples [][]float64, targets []float64, base sheaf.Config, strategies []Strategy, opts ...sheaf.Option) (Result, []Result, error) {
	if len(strategies) == 0 {
		return Result{}, nil, ErrNoStrategies
	}

	results := make([]Result, 0, len(strategies))
	obstructions := make([]float64, 0, len(strategies))
	for _, st := range strategies {
		problem, err := Partition(samples, targets, base, st.Fn)
		if err != nil {
			return Result{}, nil, fmt.Errorf("discover: strategy %q: %w", st.Name, err)
		}
		sol, err := sheaf.Fit(problem, opts...)
		if err != nil {
			return Result{}, nil, fmt.Errorf("discover: strategy %q: %w", st.Name, err)
		}
		results = append(results, Result{
			Strategy:    st.Name,
			PatchNames:  problem.PatchNames(),
			Obstruction: sol.Obstruction,
			Solution:    sol,
		})
		obstructions = append(obstructions, sol.Obstruction)
	}

	best := floats.MinIdx(obstructions)

	return results[best], results, nil
}

// Package sheaf fits a global linear model over data partitioned into
// independent patches, subject to linear gluing constraints between
// overlapping patches, and reports a residual ("obstruction") quantifying
// how well the patches glue into one consistent model.
//
// Each patch is a local learning problem: samples are fixed-length sequences
// of scalars, targets are scalars, and features are the samples' projections
// onto the characters of the cyclic group acting on positions (see package
// character). Patches own disjoint column ranges of a single global weight
// vector, so the accuracy rows form a block-diagonal system; each gluing
// constraint contributes one block-sparse row forcing two patches'
// predictions to agree at a designated sample. The combined system is solved
// in closed form by ridge-regularized complex least squares:
//
//	w = argmin ‖A·w − b‖²   via   (AᴴA + λI)·w = Aᴴb
//
// and the obstruction is the squared residual ‖A·w − b‖² of the
// unregularized system. Zero obstruction means the patches plus constraints
// are perfectly, consistently learnable.
//
// Complexity of one Fit, with R total rows (samples + constraints) and M
// total weight columns:
//
//	– Assembly: O(R·M) time and memory for the dense global system.
//	– Solve:    O(R·M² + M³) time, O(M²) memory.
//
// A Fit is synchronous and batch-oriented: it owns its inputs exclusively
// for the duration of the call, mutates nothing it was given, and allocates
// its own transient system, so independent fits are embarrassingly parallel
// at the caller level.
//
// Options:
//
//	– WithRidge(λ):         Tikhonov regularization strength (default 1e-8).
//	– WithResidualFloor(ε): obstruction values below ε are clamped to 0
//	                        (default 1e-12).
//	– WithTrace(w):         write assembly shapes and the final residual to w.
//
// Errors (sentinel, all configuration errors are returned eagerly before any
// solve is attempted):
//
//	– ErrBadConfig             invalid patch configuration.
//	– ErrModelDim              multi-dimensional targets are unsupported.
//	– ErrSampleTargetMismatch  len(samples) != len(targets) in a patch.
//	– ErrDuplicatePatch        a patch name was added twice.
//	– ErrUnknownPatch          a gluing references a patch that does not exist.
//	– ErrEmptyGluedPatch       a gluing references a patch with no samples.
//
// Numerical degeneracy is never surfaced as an error from Fit: a singular
// regularized system yields a Solution with nil Patches and an Obstruction
// of +Inf.
//
// Example usage:
//
//	p := sheaf.NewProblem()
//	p.AddPatch("main", sheaf.Patch{
//	    Samples: [][]float64{{0, 1, 2, 3}},
//	    Targets: []float64{4},
//	    Config:  sheaf.Config{NumCharacters: 4, NumPositions: 4},
//	})
//	sol, err := sheaf.Fit(p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Obstruction)
package sheaf

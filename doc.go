// Package sheaflearn discovers low-dimensional, exactly-solvable structure
// in small learning tasks by framing them algebraically instead of via
// iterative optimization.
//
// A task is modeled as a sheaf of local linear problems ("patches") tied
// together by linear gluing constraints on their overlaps. Features are
// projections onto the characters of a cyclic group acting on sequence
// positions (a DFT basis), so every patch is a complex linear system, and
// the whole sheaf (accuracy rows plus consistency rows) is one global
// regularized least-squares problem solved in closed form. The residual of
// that solve is the obstruction: zero means the patches glue into a single
// consistent model.
//
// Everything is organized under five subpackages:
//
//	character/ — cyclic-group character tables, projections, Maschke decomposition
//	cmat/      — dense complex matrices and the Hermitian normal-equations solve
//	sheaf/     — patch/gluing problem definitions, system assembly, Fit
//	discover/  — conditioning-function partitioning and obstruction-guided search
//	corpus/    — a deterministic templated mini-language for experiments
//
// There is no gradient descent, no probabilistic modeling, and no
// incremental fitting anywhere in this module: a fit either solves or it
// reports why it cannot.
//
// Dive into the examples/ directory for end-to-end demos, from
// arithmetic-progression fitting to patch discovery over a toy corpus.
package sheaflearn

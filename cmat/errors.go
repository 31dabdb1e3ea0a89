// Package cmat: sentinel error set.
// All operations return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ...)); callers match them with errors.Is. No
// operation panics on user-triggered conditions.
package cmat

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or non-positive columns).
	ErrBadShape = errors.New("cmat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("cmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. VStack with differing column counts or MulVec with a wrong-length vector.
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

	// ErrNotHermitian indicates that SolveHermitian received a matrix whose
	// stored entries violate H[i][j] == conj(H[j][i]).
	ErrNotHermitian = errors.New("cmat: matrix is not Hermitian")

	// ErrSingularSystem indicates that a Hermitian solve failed because the
	// matrix is numerically singular despite any regularization applied by
	// the caller.
	ErrSingularSystem = errors.New("cmat: singular system")
)

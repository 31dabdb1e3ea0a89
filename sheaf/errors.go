package sheaf

import "errors"

// Configuration errors: all indicate a caller bug in the problem definition
// and are returned by Fit before any matrix is assembled.
var (
	// ErrBadConfig indicates an invalid patch configuration, e.g. a
	// non-positive NumCharacters.
	ErrBadConfig = errors.New("sheaf: invalid patch configuration")

	// ErrModelDim indicates a patch declaring a model dimension other than 1;
	// vector-valued targets are not supported.
	ErrModelDim = errors.New("sheaf: model dimension must be 1")

	// ErrSampleTargetMismatch indicates a patch whose sample and target lists
	// have different lengths.
	ErrSampleTargetMismatch = errors.New("sheaf: sample/target length mismatch")

	// ErrDuplicatePatch indicates that AddPatch was called twice with the
	// same name.
	ErrDuplicatePatch = errors.New("sheaf: duplicate patch name")

	// ErrUnknownPatch indicates a gluing constraint referencing a patch name
	// absent from the problem definition.
	ErrUnknownPatch = errors.New("sheaf: gluing references unknown patch")

	// ErrEmptyGluedPatch indicates a gluing constraint referencing a patch
	// with zero samples: such a patch has no feature basis to constrain.
	ErrEmptyGluedPatch = errors.New("sheaf: gluing references empty patch")
)

package analysis

import "errors"

// Sentinel errors for analysis operations.
var (
	ErrInvalidSectionType = errors.New("unknown section type")
	ErrRefineFailed       = errors.New("classification refinement failed")
)

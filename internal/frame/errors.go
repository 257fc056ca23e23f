package frame

import "errors"

// Failure kinds shared by the geometry packages. Every failure is a local
// validation error detected before any tree mutation is committed; a failed
// call leaves the tree exactly as it was.
var (
	// ErrInvalidConfiguration reports malformed helical constants, bond
	// specs, or impossible geometry (negative radius, bad strand count).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownRung reports a sequence name absent from the rung library.
	ErrUnknownRung = errors.New("unknown rung")

	// ErrCyclicStructure reports an attachment that would make a frame its
	// own ancestor.
	ErrCyclicStructure = errors.New("cyclic structure")

	// ErrUnjoinableContent reports a join over content with no mergeable
	// representation.
	ErrUnjoinableContent = errors.New("unjoinable content")

	// ErrDetachedFrame reports an operation on a frame removed by a prior
	// destroy or clear.
	ErrDetachedFrame = errors.New("detached frame access")
)

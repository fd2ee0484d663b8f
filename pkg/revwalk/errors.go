package revwalk

import "errors"

var (
	// ErrObjectMissing reports an identity the store does not hold. It
	// usually means a broken parent link or an invalid starting point.
	ErrObjectMissing = errors.New("object missing")

	// ErrWrongObjectType reports an object whose stored type tag does not
	// match the variant the caller expected.
	ErrWrongObjectType = errors.New("wrong object type")

	// ErrInvalidObjectType reports a type tag outside the known set, which
	// indicates store corruption or a version mismatch.
	ErrInvalidObjectType = errors.New("invalid object type")

	// ErrStoreIO reports a failed read from the underlying store. The
	// cause is wrapped alongside it.
	ErrStoreIO = errors.New("object store read")

	// ErrFlagSpaceExhausted reports that all application flag bits of a
	// walker have been handed out.
	ErrFlagSpaceExhausted = errors.New("flag space exhausted")
)

package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration, e.g. a missing monoid.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid leaf index or an invalid range.
	ErrIndexOutOfBounds = errors.New("segtree: index out of bounds")
	// ErrInconsistent signals an internal node which is not the combination
	// of its children.
	ErrInconsistent = errors.New("segtree: inconsistent tree")
)

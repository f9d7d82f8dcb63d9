/*
Package segtree implements a fixed-size, array-backed segment tree over values
from a monoid.

Segment Trees

A segment tree maintains a sequence of N values and answers range queries
("combine all values from index i to index j") as well as point updates
("replace the value at index i") in O(log N) combine operations. Values are
combined with a monoid: an associative operation Op together with an identity
element. Op is not required to be commutative; folds always combine values in
left-to-right order.

The tree is stored in a flat buffer of 2*sz values, where sz is the smallest
power of two not less than N. The buffer is 1-indexed, with the children of
node k at 2k and 2k+1. Leaves occupy [sz, 2*sz); leaf positions at or beyond N
are padded with the identity element.

Ranges are closed intervals: Fold(2, 5) includes both the value at index 2 and
the value at index 5. This deviates from the half-open convention many segment
tree implementations use.

	tree, _ := segtree.New[int](monoids.Sum[int]{}, []int{1, 2, 3})
	sum, _ := tree.Fold(0, 1) // 3

A tree performs no internal synchronization. Clients sharing a tree between
goroutines have to serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

package segtree

import "fmt"

// Check validates the tree-consistency invariant: every internal node has to
// equal the combination of its two children. eq decides equality of values.
//
// Check is intended for tests and for debugging monoids which may violate
// the monoid laws.
func (t *Tree[T]) Check(eq func(a, b T) bool) error {
	if t == nil || t.monoid == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if len(t.node) != 2*t.sz {
		return fmt.Errorf("%w: buffer length %d for %d leaves", ErrInconsistent, len(t.node), t.sz)
	}
	for k := t.sz - 1; k > 0; k-- {
		if !eq(t.node[k], t.monoid.Op(t.node[2*k], t.node[2*k+1])) {
			return fmt.Errorf("%w: node %d is not the combination of nodes %d and %d",
				ErrInconsistent, k, 2*k, 2*k+1)
		}
	}
	return nil
}

package segtree

import (
	"fmt"
	"math/bits"
)

// Tree is a segment tree over values of type T, combined by a Monoid[T].
//
// The number of leaves is fixed at construction time. Leaf indices range over
// [0, Size()), which includes the padding leaves beyond Len().
type Tree[T any] struct {
	monoid Monoid[T]
	node   []T // 1-based complete binary tree, node[0] unused
	sz     int // number of leaves, a power of 2
	n      int // number of input values
}

// New creates a segment tree holding a copy of values.
//
// The leaf layer is padded to the next power of 2 with m.Identity(). An empty
// values slice is legal and results in a tree with a single identity leaf.
// New returns ErrInvalidConfig if m is nil.
func New[T any](m Monoid[T], values []T) (*Tree[T], error) {
	if err := validate(m); err != nil {
		return nil, err
	}
	sz := leafCount(len(values))
	t := &Tree[T]{
		monoid: m,
		node:   make([]T, 2*sz),
		sz:     sz,
		n:      len(values),
	}
	for i := range t.node {
		t.node[i] = m.Identity()
	}
	copy(t.node[sz:], values)
	for k := sz - 1; k > 0; k-- {
		t.node[k] = m.Op(t.node[2*k], t.node[2*k+1])
	}
	tracer().Debugf("segtree: new tree with %d values on %d leaves", t.n, t.sz)
	return t, nil
}

func validate[T any](m Monoid[T]) error {
	if m == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if f, ok := m.(MonoidFuncs[T]); ok && (f.IdentityFunc == nil || f.OpFunc == nil) {
		return fmt.Errorf("%w: monoid functions are required", ErrInvalidConfig)
	}
	return nil
}

// leafCount returns the smallest power of 2 >= n, and at least 1.
func leafCount(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Len returns the number of values the tree has been created with.
func (t *Tree[T]) Len() int {
	return t.n
}

// Size returns the number of leaves, i.e. Len() rounded up to a power of 2.
// Valid leaf indices are [0, Size()).
func (t *Tree[T]) Size() int {
	return t.sz
}

// Monoid returns the monoid the tree combines values with.
func (t *Tree[T]) Monoid() Monoid[T] {
	return t.monoid
}

// Summary returns the combination of all leaves, i.e. the root value.
func (t *Tree[T]) Summary() T {
	return t.node[1]
}

// Get returns the value at leaf index i.
func (t *Tree[T]) Get(i int) (T, error) {
	if err := t.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return t.node[t.sz+i], nil
}

// Update replaces the value at leaf index i with x and recomputes all
// ancestors of the leaf. The previous value is overwritten, not combined
// with x.
//
// Padding leaves (Len() <= i < Size()) may be updated as well.
// If i is out of range, the tree is left untouched and an error wrapping
// ErrIndexOutOfBounds is returned.
func (t *Tree[T]) Update(i int, x T) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	k := t.sz + i
	t.node[k] = x
	for k > 1 {
		k >>= 1
		t.node[k] = t.monoid.Op(t.node[2*k], t.node[2*k+1])
	}
	return nil
}

// Fold combines the values at leaf indices left … right, both inclusive,
// in left-to-right order.
//
// Fold(i, i) returns the value at leaf i. Ranges reaching into the padding
// leaves are legal. If left > right or either index is out of range, Fold
// returns the identity and an error wrapping ErrIndexOutOfBounds.
func (t *Tree[T]) Fold(left, right int) (T, error) {
	if err := t.checkRange(left, right); err != nil {
		return t.monoid.Identity(), err
	}
	lacc, racc := t.monoid.Identity(), t.monoid.Identity()
	l, r := left+t.sz, right+t.sz
	for l < r {
		if l&1 == 1 { // l is a right child, its parent reaches beyond left
			lacc = t.monoid.Op(lacc, t.node[l])
		}
		if r&1 == 0 { // r is a left child, its parent reaches beyond right
			racc = t.monoid.Op(t.node[r], racc)
		}
		l = (l + 1) >> 1
		r = (r - 1) >> 1
	}
	if l == r {
		lacc = t.monoid.Op(lacc, t.node[l])
	}
	return t.monoid.Op(lacc, racc), nil
}

func (t *Tree[T]) checkIndex(i int) error {
	if i < 0 || i >= t.sz {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrIndexOutOfBounds, i, t.sz)
	}
	return nil
}

func (t *Tree[T]) checkRange(left, right int) error {
	if left > right {
		return fmt.Errorf("%w: range [%d, %d] is reversed", ErrIndexOutOfBounds, left, right)
	}
	if err := t.checkIndex(left); err != nil {
		return err
	}
	return t.checkIndex(right)
}

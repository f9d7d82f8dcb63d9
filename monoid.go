package segtree

// Monoid defines how values are combined up the tree.
//
// For values a, b, c, Op should be associative:
//
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//
// and Identity should be the neutral element:
//
//	Op(Identity(), a) == a == Op(a, Identity())
//
// Op need not be commutative. Neither method may modify its arguments, and
// Identity has to return an equivalent value on every call. A monoid violating
// these laws is not detected at runtime; the tree will just report wrong
// aggregates (see Tree.Check).
type Monoid[T any] interface {
	Identity() T
	Op(left, right T) T
}

// MonoidFuncs adapts a pair of functions to the Monoid interface.
type MonoidFuncs[T any] struct {
	IdentityFunc func() T
	OpFunc       func(left, right T) T
}

// Identity calls m.IdentityFunc.
func (m MonoidFuncs[T]) Identity() T {
	return m.IdentityFunc()
}

// Op calls m.OpFunc.
func (m MonoidFuncs[T]) Op(left, right T) T {
	return m.OpFunc(left, right)
}

var _ Monoid[int] = MonoidFuncs[int]{}

package monoids

import (
	"github.com/npillmayer/segtree"
	"golang.org/x/exp/constraints"
)

// Number is the set of types the arithmetic monoids operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds numbers, with identity 0.
type Sum[N Number] struct{}

// Identity returns 0.
func (Sum[N]) Identity() N { return 0 }

// Op returns left + right.
func (Sum[N]) Op(left, right N) N { return left + right }

// Product multiplies numbers, with identity 1.
type Product[N Number] struct{}

// Identity returns 1.
func (Product[N]) Identity() N { return 1 }

// Op returns left * right.
func (Product[N]) Op(left, right N) N { return left * right }

// Min selects the smaller of two values. Its identity has to be an upper
// bound of all values in the tree, e.g. math.MaxInt or math.Inf(1).
type Min[N constraints.Ordered] struct {
	Top N
}

// NewMin creates a minimum monoid with identity top.
func NewMin[N constraints.Ordered](top N) Min[N] {
	return Min[N]{Top: top}
}

// Identity returns m.Top.
func (m Min[N]) Identity() N { return m.Top }

// Op returns the smaller of left and right.
func (Min[N]) Op(left, right N) N {
	if right < left {
		return right
	}
	return left
}

// Max selects the larger of two values. Its identity has to be a lower bound
// of all values in the tree, e.g. math.MinInt or math.Inf(-1).
type Max[N constraints.Ordered] struct {
	Bottom N
}

// NewMax creates a maximum monoid with identity bottom.
func NewMax[N constraints.Ordered](bottom N) Max[N] {
	return Max[N]{Bottom: bottom}
}

// Identity returns m.Bottom.
func (m Max[N]) Identity() N { return m.Bottom }

// Op returns the larger of left and right.
func (Max[N]) Op(left, right N) N {
	if right > left {
		return right
	}
	return left
}

// GCD computes greatest common divisors, with identity 0.
// Results are non-negative. The one exception is the most negative value m
// of a signed type, which has no positive counterpart: gcd(m, 0) and
// gcd(m, m) return m itself.
type GCD[I constraints.Integer] struct{}

// Identity returns 0.
func (GCD[I]) Identity() I { return 0 }

// Op returns gcd(left, right).
func (GCD[I]) Op(left, right I) I {
	a, b := left, right // signed remainders; only the result is made positive
	for b != 0 {
		a, b = b, a%b
	}
	return abs(a)
}

func abs[I constraints.Integer](x I) I {
	if x < 0 {
		return -x
	}
	return x
}

var (
	_ segtree.Monoid[int]     = Sum[int]{}
	_ segtree.Monoid[float64] = Product[float64]{}
	_ segtree.Monoid[int]     = Min[int]{}
	_ segtree.Monoid[string]  = Max[string]{}
	_ segtree.Monoid[uint]    = GCD[uint]{}
)

package monoids

import "github.com/npillmayer/segtree"

// Concat concatenates strings. It is the canonical non-commutative monoid:
// folding a range yields the range's strings in order.
type Concat struct{}

// Identity returns the empty string.
func (Concat) Identity() string { return "" }

// Op returns left + right.
func (Concat) Op(left, right string) string { return left + right }

// AffineMap is the map x ↦ A·x + B.
type AffineMap[N Number] struct {
	A, B N
}

// Apply evaluates f at x.
func (f AffineMap[N]) Apply(x N) N {
	return f.A*x + f.B
}

// Affine composes affine maps. Op(f, g) is the map applying f first and g
// second, i.e. g∘f, so folding a range yields the composition of the maps
// in index order.
type Affine[N Number] struct{}

// Identity returns x ↦ x.
func (Affine[N]) Identity() AffineMap[N] { return AffineMap[N]{A: 1} }

// Op returns right∘left.
func (Affine[N]) Op(left, right AffineMap[N]) AffineMap[N] {
	return AffineMap[N]{
		A: right.A * left.A,
		B: right.A*left.B + right.B,
	}
}

var (
	_ segtree.Monoid[string]             = Concat{}
	_ segtree.Monoid[AffineMap[float64]] = Affine[float64]{}
)

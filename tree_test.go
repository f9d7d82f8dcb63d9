package segtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type sum struct{}

func (sum) Identity() int          { return 0 }
func (sum) Op(left, right int) int { return left + right }

type concat struct{}

func (concat) Identity() string             { return "" }
func (concat) Op(left, right string) string { return left + right }

func eqInt(a, b int) bool       { return a == b }
func eqString(a, b string) bool { return a == b }

func TestNewRejectsNilMonoid(t *testing.T) {
	_, err := New[int](nil, []int{1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = New[int](MonoidFuncs[int]{}, []int{1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for empty monoid funcs, got %v", err)
	}
}

func TestSumScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree, err := New[int](sum{}, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 3 || tree.Size() != 4 {
		t.Fatalf("unexpected dimensions len=%d size=%d", tree.Len(), tree.Size())
	}
	for _, c := range []struct{ l, r, want int }{
		{0, 1, 3},
		{1, 1, 2},
		{0, 2, 6},
		{0, 3, 6},
		{2, 3, 3},
	} {
		got, err := tree.Fold(c.l, c.r)
		if err != nil {
			t.Fatalf("Fold(%d,%d) failed: %v", c.l, c.r, err)
		}
		if got != c.want {
			t.Errorf("Fold(%d,%d) = %d, want %d", c.l, c.r, got, c.want)
		}
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestSingleElement(t *testing.T) {
	tree, err := New[int](sum{}, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Size() != 1 {
		t.Fatalf("expected a single leaf, have %d", tree.Size())
	}
	x, err := tree.Fold(0, 0)
	if err != nil || x != 1 {
		t.Fatalf("Fold(0,0) = %d, %v; want 1", x, err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree, err := New[string](concat{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 0 || tree.Size() != 1 {
		t.Fatalf("unexpected dimensions len=%d size=%d", tree.Len(), tree.Size())
	}
	if s, err := tree.Fold(0, 0); err != nil || s != "" {
		t.Fatalf("expected identity leaf, got %q, %v", s, err)
	}
	if err := tree.Update(0, "x"); err != nil {
		t.Fatalf("padding leaf should be updatable: %v", err)
	}
	if tree.Summary() != "x" {
		t.Fatalf("expected root to be 'x', is %q", tree.Summary())
	}
}

func TestConcatIsOrderPreserving(t *testing.T) {
	tree, err := New[string](concat{}, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := tree.Fold(0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s != "abc" {
		t.Fatalf("Fold(0,2) = %q, want \"abc\"", s)
	}
}

func TestFoldMatchesLinearScan(t *testing.T) {
	letters := strings.Split("abcdefghijklm", "")
	tree, err := New[string](concat{}, letters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for l := 0; l < tree.Size(); l++ {
		for r := l; r < tree.Size(); r++ {
			var want string
			for i := l; i <= r && i < len(letters); i++ {
				want += letters[i]
			}
			got, err := tree.Fold(l, r)
			if err != nil {
				t.Fatalf("Fold(%d,%d) failed: %v", l, r, err)
			}
			if got != want {
				t.Fatalf("Fold(%d,%d) = %q, want %q", l, r, got, want)
			}
		}
	}
}

func TestUpdateLocality(t *testing.T) {
	values := []int{5, 1, 4, 1, 5, 9, 2}
	tree, err := New[int](sum{}, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Update(3, 10); err != nil {
		t.Fatal(err)
	}
	for j := 0; j < tree.Size(); j++ {
		x, err := tree.Fold(j, j)
		if err != nil {
			t.Fatal(err)
		}
		want := 0
		if j == 3 {
			want = 10
		} else if j < len(values) {
			want = values[j]
		}
		if x != want {
			t.Errorf("leaf %d = %d, want %d", j, x, want)
		}
	}
	if s := tree.Summary(); s != 5+1+4+10+5+9+2 {
		t.Errorf("unexpected summary %d", s)
	}
	if err := tree.Check(eqInt); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateOverwrites(t *testing.T) {
	tree, _ := New[string](concat{}, []string{"a", "b"})
	if err := tree.Update(1, "x"); err != nil {
		t.Fatal(err)
	}
	if x, _ := tree.Get(1); x != "x" {
		t.Fatalf("expected leaf 1 to be replaced by 'x', is %q", x)
	}
}

func TestPaddingIsNeutral(t *testing.T) {
	tree, _ := New[int](sum{}, []int{3, 4, 5, 6, 7})
	if tree.Size() != 8 {
		t.Fatalf("expected 8 leaves, have %d", tree.Size())
	}
	inner, _ := tree.Fold(0, tree.Len()-1)
	for r := tree.Len(); r < tree.Size(); r++ {
		x, err := tree.Fold(0, r)
		if err != nil {
			t.Fatal(err)
		}
		if x != inner {
			t.Errorf("Fold(0,%d) = %d, want %d", r, x, inner)
		}
	}
}

func TestBoundsViolations(t *testing.T) {
	tree, _ := New[int](sum{}, []int{1, 2, 3})
	before := append([]int(nil), tree.node...)
	if err := tree.Update(4, 100); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Update(4) should fail with ErrIndexOutOfBounds, got %v", err)
	}
	if err := tree.Update(-1, 100); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Update(-1) should fail with ErrIndexOutOfBounds, got %v", err)
	}
	for i := range before {
		if tree.node[i] != before[i] {
			t.Fatalf("failed update modified node %d", i)
		}
	}
	for _, c := range [][2]int{{2, 1}, {0, 4}, {4, 4}, {-1, 0}} {
		x, err := tree.Fold(c[0], c[1])
		if !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("Fold(%d,%d) should fail with ErrIndexOutOfBounds, got %v", c[0], c[1], err)
		}
		if x != 0 {
			t.Errorf("failed Fold(%d,%d) should return identity, got %d", c[0], c[1], x)
		}
	}
	if _, err := tree.Get(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Get(4) should fail with ErrIndexOutOfBounds, got %v", err)
	}
}

func TestInputIsCopied(t *testing.T) {
	values := []int{1, 2}
	tree, _ := New[int](sum{}, values)
	values[0] = 100
	if x, _ := tree.Get(0); x != 1 {
		t.Fatalf("tree aliases input slice, leaf 0 = %d", x)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree, _ := New[int](sum{}, []int{1, 2, 3, 4})
	tree.node[2] = 42
	if err := tree.Check(eqInt); !errors.Is(err, ErrInconsistent) {
		t.Fatalf("expected ErrInconsistent, got %v", err)
	}
}

func TestMonoidFuncs(t *testing.T) {
	m := MonoidFuncs[string]{
		IdentityFunc: func() string { return "" },
		OpFunc:       func(l, r string) string { return l + r },
	}
	tree, err := New[string](m, []string{"x", "y", "z"})
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := tree.Fold(1, 2); s != "yz" {
		t.Fatalf("Fold(1,2) = %q, want \"yz\"", s)
	}
	if err := tree.Check(eqString); err != nil {
		t.Fatal(err)
	}
}

func TestToDot(t *testing.T) {
	tree, _ := New[int](sum{}, []int{1, 2, 3})
	var buf bytes.Buffer
	if err := tree.ToDot(&buf, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph") {
		t.Fatalf("expected DOT digraph, got %s", out)
	}
	if n := strings.Count(out, "->"); n != 6 {
		t.Errorf("expected 6 edges for 7 nodes, have %d", n)
	}
	if !strings.Contains(out, "dashed") {
		t.Errorf("expected padding leaf to be dashed")
	}
}

package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var fragment = `<h1>Title</h1>
<p>The quick <b>brown</b> fox</p>
<script>var x = 1;</script>
<p>
   jumps over
</p>`

func TestLinesFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	lines, err := LinesFromHTML(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Title", "The quick", "brown", "fox", "jumps over"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, have %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTreeFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	tree, err := TreeFromHTML(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 5 {
		t.Fatalf("expected 5 lines, have %d", tree.Len())
	}
	s, err := tree.Fold(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if s.Lines != 3 || s.Bytes != uint64(len("The quick")+len("brown")+len("fox")) {
		t.Fatalf("unexpected summary for lines 1…3: %+v", s)
	}
}

func TestInnerLinesNil(t *testing.T) {
	if _, err := InnerLines(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

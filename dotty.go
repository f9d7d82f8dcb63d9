package segtree

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// label renders a node value; if it is nil, values are formatted with %v.
// Internal nodes are drawn as circles, leaves as boxes, and padding leaves
// with a dashed outline.
func (t *Tree[T]) ToDot(w io.Writer, label func(T) string) error {
	if label == nil {
		label = func(x T) string { return fmt.Sprintf("%v", x) }
	}
	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out")
	nodes := make([]dot.Node, len(t.node))
	for k := 1; k < len(t.node); k++ {
		n := g.Node(fmt.Sprintf("n%d", k))
		nodes[k] = n
		n.Attr("fontname", "Arial").Attr("fontsize", "12")
		if k < t.sz {
			n.Label(label(t.node[k]))
			n.Attr("shape", "circle").Attr("style", "filled").Attr("fillcolor", "#a3d7e4")
			continue
		}
		i := k - t.sz
		n.Label(fmt.Sprintf("%s\n@%d", label(t.node[k]), i))
		n.Attr("shape", "box")
		if i >= t.n {
			n.Attr("style", "dashed")
		}
	}
	for k := 2; k < len(t.node); k++ {
		g.Edge(nodes[k>>1], nodes[k])
	}
	if _, err := io.WriteString(w, g.String()); err != nil {
		tracer().Errorf("segtree DOT: %s", err.Error())
		return err
	}
	return nil
}

package formatter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ErrIllegalArgument is flagged for nil trees, writers or configurations.
var ErrIllegalArgument = errors.New("formatter: illegal argument")

// minCellWidth is the narrowest cell a node label is printed in, including
// one column of separation.
const minCellWidth = 4

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // in 'en'
	Context   *uax11.Context // for display widths; nil means uax11.LatinContext
}

// Palette assigns colors to the kinds of tree nodes.
type Palette struct {
	Inner   *color.Color
	Leaf    *color.Color
	Padding *color.Color
}

// DefaultPalette returns the palette a console uses if none is given.
func DefaultPalette() *Palette {
	return &Palette{
		Inner:   color.New(color.FgBlue),
		Leaf:    color.New(color.FgGreen, color.Bold),
		Padding: color.New(color.FgHiBlack),
	}
}

// Console formats trees for consoles with a fixed width font.
type Console struct {
	colors *Palette
}

// NewConsole creates a new formatter for consoles. If colors is nil,
// DefaultPalette is used.
func NewConsole(colors *Palette) *Console {
	if colors == nil {
		colors = DefaultPalette()
	}
	return &Console{colors: colors}
}

// Print outputs a tree to stdout.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive), and Config.Context is
// created from the user environment. If label is nil, values are formatted
// with %v.
func Print[T any](tree *segtree.Tree[T], label func(T) string, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(tree, os.Stdout, label, config, NewConsole(nil))
}

// Output prints a tree level by level, root first.
//
// Levels with more nodes than fit into config.LineWidth are cut off and
// marked with an ellipsis.
func Output[T any](tree *segtree.Tree[T], out io.Writer, label func(T) string,
	config *Config, console *Console) error {
	//
	if tree == nil || out == nil || config == nil {
		return ErrIllegalArgument
	}
	if console == nil {
		console = NewConsole(nil)
	}
	if label == nil {
		label = func(x T) string { return fmt.Sprintf("%v", x) }
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	linewidth := max(config.LineWidth, minCellWidth)
	for span := tree.Size(); span >= 1; span >>= 1 { // span = leaves below a node
		cells := tree.Size() / span
		cellwidth := linewidth / cells
		shown := cells
		if cellwidth < minCellWidth {
			cellwidth = minCellWidth
			shown = linewidth / minCellWidth
		}
		for j := 0; j < shown; j++ {
			x, err := tree.Fold(j*span, (j+1)*span-1)
			if err != nil {
				tracer().Errorf("formatter: cannot fold node %d/%d: %v", span, j, err)
				return err
			}
			text, w := fit(label(x), cellwidth-1, ctx)
			cell := text + strings.Repeat(" ", cellwidth-w)
			console.colorFor(span, j, tree.Len()).Fprint(out, cell)
		}
		if shown < cells {
			io.WriteString(out, "…")
		}
		io.WriteString(out, "\n")
	}
	return nil
}

func (c *Console) colorFor(span, j, n int) *color.Color {
	switch {
	case span > 1:
		return c.colors.Inner
	case j < n:
		return c.colors.Leaf
	default:
		return c.colors.Padding
	}
}

var setupGraphemes sync.Once

// fit truncates s to at most maxwidth 'en', grapheme by grapheme.
// It returns the truncated string and its display width.
func fit(s string, maxwidth int, ctx *uax11.Context) (string, int) {
	if s == "" {
		return "", 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	if w := uax11.StringWidth(gstr, ctx); w <= maxwidth {
		return s, w
	}
	ellipsis := width("…", ctx)
	var b strings.Builder
	total := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := width(g, ctx)
		if total+w > maxwidth-ellipsis {
			break
		}
		b.WriteString(g)
		total += w
	}
	b.WriteString("…")
	return b.String(), total + ellipsis
}

// width is the display width of s. The empty string has width 0.
func width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 30 {
			config.LineWidth = w - 5
		} else {
			config.LineWidth = max(w, minCellWidth)
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/formatter"
	"github.com/npillmayer/segtree/html"
	"github.com/npillmayer/segtree/monoids"
	"github.com/npillmayer/segtree/textfile"
	"github.com/npillmayer/segtree/textstats"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("segtree: invalid arguments")

// options are shared by the tree commands.
type options struct {
	monoid  string
	values  string
	updates []string
	width   int
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:          "segtree",
		Short:        "Build segment trees and fold ranges of values",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(level)
		},
	}
	root.PersistentFlags().StringVar(&level, "trace", "error", "trace level (debug|info|error)")

	opts := &options{}
	for _, cmd := range []*cobra.Command{newFoldCmd(opts), newShowCmd(opts), newDotCmd(opts)} {
		cmd.Flags().StringVarP(&opts.monoid, "monoid", "m", "sum",
			"monoid to combine values with (sum|product|min|max|gcd|concat)")
		cmd.Flags().StringVarP(&opts.values, "values", "v", "", "comma-separated list of values")
		cmd.Flags().StringArrayVarP(&opts.updates, "update", "u", nil,
			"point update index=value, applied after construction (repeatable)")
		root.AddCommand(cmd)
	}
	root.AddCommand(newStatsCmd())
	return root
}

func setTraceLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "error", "":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("%w: unknown trace level %q", errUsage, level)
	}
	return nil
}

func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func newFoldCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fold FROM TO",
		Short: "Combine the values at indices FROM … TO (inclusive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}
			return withTree(opts, treeAction{
				ints: func(t *segtree.Tree[int64]) error { return printFold(cmd, t, from, to) },
				strs: func(t *segtree.Tree[string]) error { return printFold(cmd, t, from, to) },
			})
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the tree level by level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := formatter.ConfigFromTerminal()
			if opts.width > 0 {
				config.LineWidth = opts.width
			}
			out := cmd.OutOrStdout()
			return withTree(opts, treeAction{
				ints: func(t *segtree.Tree[int64]) error {
					return formatter.Output(t, out, nil, config, nil)
				},
				strs: func(t *segtree.Tree[string]) error {
					return formatter.Output(t, out, strconv.Quote, config, nil)
				},
			})
		},
	}
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "line width (default: terminal width)")
	return cmd
}

func newDotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Write the tree in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return withTree(opts, treeAction{
				ints: func(t *segtree.Tree[int64]) error { return t.ToDot(out, nil) },
				strs: func(t *segtree.Tree[string]) error { return t.ToDot(out, strconv.Quote) },
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	var fromHTML bool
	cmd := &cobra.Command{
		Use:   "stats FILE FROM TO",
		Short: "Print text statistics for lines FROM … TO (inclusive) of a file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseRange(args[1], args[2])
			if err != nil {
				return err
			}
			var tree *segtree.Tree[textstats.Summary]
			if fromHTML {
				tree, err = loadHTML(args[0])
			} else {
				tree, err = textfile.Load(args[0])
			}
			if err != nil {
				return err
			}
			s, err := tree.Fold(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "lines=%d bytes=%d runes=%d graphemes=%d words=%d maxwidth=%d\n",
				s.Lines, s.Bytes, s.Runes, s.Graphemes, s.Words, s.MaxWidth)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromHTML, "html", false, "treat FILE as HTML and use its text content")
	return cmd
}

func loadHTML(name string) (*segtree.Tree[textstats.Summary], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return html.TreeFromHTML(f)
}

// --- Tree construction -----------------------------------------------------

// treeAction holds one action per element type the command line supports.
type treeAction struct {
	ints func(*segtree.Tree[int64]) error
	strs func(*segtree.Tree[string]) error
}

func withTree(opts *options, action treeAction) error {
	raw := splitValues(opts.values)
	if opts.monoid == "concat" {
		tree, err := buildTree[string](monoids.Concat{}, raw, opts.updates, parseString)
		if err != nil {
			return err
		}
		return action.strs(tree)
	}
	m, err := intMonoid(opts.monoid)
	if err != nil {
		return err
	}
	tree, err := buildTree[int64](m, raw, opts.updates, parseInt)
	if err != nil {
		return err
	}
	return action.ints(tree)
}

func intMonoid(name string) (segtree.Monoid[int64], error) {
	switch name {
	case "sum":
		return monoids.Sum[int64]{}, nil
	case "product":
		return monoids.Product[int64]{}, nil
	case "min":
		return monoids.NewMin[int64](math.MaxInt64), nil
	case "max":
		return monoids.NewMax[int64](math.MinInt64), nil
	case "gcd":
		return monoids.GCD[int64]{}, nil
	}
	return nil, fmt.Errorf("%w: unknown monoid %q", errUsage, name)
}

func buildTree[T any](m segtree.Monoid[T], raw []string, updates []string,
	parse func(string) (T, error)) (*segtree.Tree[T], error) {
	//
	values := make([]T, len(raw))
	for i, s := range raw {
		x, err := parse(s)
		if err != nil {
			return nil, err
		}
		values[i] = x
	}
	tree, err := segtree.New(m, values)
	if err != nil {
		return nil, err
	}
	for _, u := range updates {
		index, value, ok := strings.Cut(u, "=")
		if !ok {
			return nil, fmt.Errorf("%w: update %q is not of the form index=value", errUsage, u)
		}
		i, err := strconv.Atoi(strings.TrimSpace(index))
		if err != nil {
			return nil, fmt.Errorf("%w: update index %q", errUsage, index)
		}
		x, err := parse(value)
		if err != nil {
			return nil, err
		}
		if err := tree.Update(i, x); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func printFold[T any](cmd *cobra.Command, tree *segtree.Tree[T], from, to int) error {
	x, err := tree.Fold(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", x)
	return nil
}

// --- Parsing ---------------------------------------------------------------

func splitValues(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func parseInt(s string) (int64, error) {
	x, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errUsage, s)
	}
	return x, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

func parseRange(from, to string) (int, int, error) {
	l, err := strconv.Atoi(from)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: FROM %q", errUsage, from)
	}
	r, err := strconv.Atoi(to)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: TO %q", errUsage, to)
	}
	return l, r, nil
}

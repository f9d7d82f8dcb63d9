/*
Package textstats aggregates statistics on lines of text in a segment tree.

Every leaf of the tree summarizes one line of text: its length in bytes, runes
and grapheme clusters, its display width and the number of words. Folding a
range of lines yields the statistics for the lines in the range:

	tree, _ := textstats.FromText(text)
	stats, _ := tree.Fold(10, 19) // statistics for lines 10 … 19

Grapheme clusters and display widths are computed with the Unicode
algorithms of package github.com/npillmayer/uax, which makes the widths
suitable for fixed-width terminal output.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textstats

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

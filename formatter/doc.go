/*
Package formatter prints segment trees on output devices with fixed-width
fonts, for debugging and for demonstration purposes.

Trees are printed level by level, root first. Every node is printed as a
label within a cell; cells of a level share the available line width. Labels
are truncated according to their display width (UAX#11), and internal nodes,
leaves and padding leaves are distinguished by color.

	formatter.Print(tree, nil, nil) // prints to stdout, sized for the terminal

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

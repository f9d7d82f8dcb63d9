/*
Package html builds line statistics trees from the textual content of HTML.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/textstats"
	"golang.org/x/net/html"
)

// ErrIllegalArguments is flagged whenever function parameters are invalid.
var ErrIllegalArguments = errors.New("html: illegal arguments")

// InnerLines collects the textual content of an HTML element and all its
// descendents, one line per non-blank text node, in document order.
// Text inside <script> and <style> elements is skipped.
//
// Text nodes containing newlines contribute one line per non-blank text line.
func InnerLines(n *html.Node) ([]string, error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	return collectLines(n, nil), nil
}

func collectLines(n *html.Node, lines []string) []string {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return lines
	}
	if n.Type == html.TextNode {
		for _, line := range strings.Split(n.Data, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		lines = collectLines(c, lines)
	}
	return lines
}

// LinesFromHTML parses an HTML fragment and collects its textual content.
// It does no interpretation of layout and styling, but extracts the pure text.
func LinesFromHTML(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, n := range nodes {
		lines = collectLines(n, lines)
	}
	return lines, nil
}

// TreeFromHTML creates a line statistics tree for the textual content of an
// HTML fragment.
func TreeFromHTML(input io.Reader) (*segtree.Tree[textstats.Summary], error) {
	lines, err := LinesFromHTML(input)
	if err != nil {
		return nil, err
	}
	return textstats.FromLines(lines)
}

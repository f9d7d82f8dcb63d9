/*
Command segtree builds segment trees from the command line and queries them.

	segtree fold --values 3,1,4,1,5 1 3        # sum over indices 1…3
	segtree fold --monoid concat --values a,b,c 0 2
	segtree show --monoid max --values 3,1,4 --update 1=7
	segtree dot --values 1,2,3 | dot -Tsvg > tree.svg
	segtree stats README.md 0 9                # statistics for lines 0…9
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

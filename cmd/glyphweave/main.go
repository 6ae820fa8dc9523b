// Command glyphweave lays out generative text artworks and writes them as
// SVG documents or PNG previews.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "glyphweave:", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

// Command lvclique enumerates the maximal cliques of a graph read from an
// edge list or YAML file.
//
// Usage:
//
//	lvclique find graph.txt --strategy degeneracy --timeout 5s
//	cat graph.yaml | lvclique find --maximum --output json
//	lvclique version
//
// Every flag can also be set through the environment with the LVCLIQUE_
// prefix (LVCLIQUE_STRATEGY=plain) or in lvclique.yaml.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvclique/clique"
)

const (
	exitError   = 1
	exitTimeout = 3
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, clique.ErrTimedOut) {
			os.Exit(exitTimeout)
		}
		os.Exit(exitError)
	}
}

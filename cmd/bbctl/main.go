// Command bbctl is a demo/diagnostic CLI: it runs the bundled knapsack and
// TSP example encodings against any of the five frontier strategies and
// prints the incumbent and statistics block.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

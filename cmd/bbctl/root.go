package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd returns a bare cobra.Command whose only job is to gather the
// problem-encoding subcommands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bbctl",
		Short: "bbctl runs the bundled branch-and-bound example encodings",
		Long: `bbctl is a demo/diagnostic CLI around github.com/branchbound/bnbsearch.
It is not part of the library's public contract; it exists to run the
bundled knapsack and TSP example encodings against any of the five
frontier strategies.`,
	}

	root.AddCommand(newKnapsackCmd())
	root.AddCommand(newTSPCmd())

	return root
}

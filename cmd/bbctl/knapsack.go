package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/branchbound/bnbsearch/bbcore"
	"github.com/branchbound/bnbsearch/examples/knapsack"
)

// newKnapsackCmd runs a small bundled 0/1-knapsack instance.
func newKnapsackCmd() *cobra.Command {
	opts := cliOptions{}

	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve the bundled 0/1-knapsack example encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := decodeConfig(opts, bbcore.MAX, true)
			if err != nil {
				return err
			}

			strategy, err := buildStrategy(opts)
			if err != nil {
				return err
			}

			engine, err := bbcore.NewEngine(strategy, cfg)
			if err != nil {
				return err
			}

			problem := knapsack.NewProblem([]knapsack.Item{
				{Weight: 2, Value: 3},
				{Weight: 3, Value: 4},
				{Weight: 4, Value: 5},
				{Weight: 5, Value: 6},
			}, 8)
			root := knapsack.NewRoot(problem)
			if _, err := engine.ProcessState(root, true); err != nil {
				return err
			}
			if err := engine.Explore(context.Background()); err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), engine)
			return nil
		},
	}

	bindCommonFlags(cmd, &opts)
	return cmd
}

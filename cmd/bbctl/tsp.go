package main

import (
	"context"
	"math"

	"github.com/spf13/cobra"

	"github.com/branchbound/bnbsearch/bbcore"
	"github.com/branchbound/bnbsearch/examples/tsp"
)

// newTSPCmd runs the bundled degree-1-relaxation TSP example on a small
// built-in 4-city unit-square instance.
func newTSPCmd() *cobra.Command {
	opts := cliOptions{}

	cmd := &cobra.Command{
		Use:   "tsp",
		Short: "Solve the bundled travelling-salesman example encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := decodeConfig(opts, bbcore.MIN, false)
			if err != nil {
				return err
			}
			cfg.StateComputesBounds = true

			strategy, err := buildStrategy(opts)
			if err != nil {
				return err
			}

			engine, err := bbcore.NewEngine(strategy, cfg)
			if err != nil {
				return err
			}

			problem := tsp.NewProblem(squareInstance(), 0)
			root := tsp.NewRoot(problem)
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

// squareInstance is a small 4-city demo instance with a known optimal
// perimeter tour of cost 4.
func squareInstance() [][]float64 {
	pts := [][2]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	n := len(pts)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			dist[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	return dist
}

package main

import (
	"fmt"
	"io"

	"github.com/branchbound/bnbsearch/bbcore"
	"github.com/branchbound/bnbsearch/frontier"
)

// buildStrategy resolves the --strategy (and, for cbfs, --cbfs-mode/-k/-seed)
// flags into a concrete frontier.Strategy.
func buildStrategy(opts cliOptions) (bbcore.Strategy, error) {
	switch opts.Strategy {
	case "dfs":
		return frontier.NewDFS(), nil
	case "brfs":
		return frontier.NewBrFS(), nil
	case "bfs":
		return frontier.NewBFS(), nil
	case "cbfs":
		mode, err := cbfsMode(opts.CBFSMode)
		if err != nil {
			return nil, err
		}
		return frontier.NewCBFS(mode, opts.CBFSK, opts.CBFSSeed)
	case "cdbfs":
		return frontier.NewCDBFS(), nil
	default:
		return nil, fmt.Errorf("bbctl: unknown strategy %q", opts.Strategy)
	}
}

func cbfsMode(name string) (frontier.SelectionMode, error) {
	switch name {
	case "standard":
		return frontier.Standard, nil
	case "random-top-k":
		return frontier.RandomFromTopK, nil
	case "k-best":
		return frontier.KBestAtLevel, nil
	default:
		return 0, fmt.Errorf("bbctl: unknown cbfs mode %q", name)
	}
}

// printReport writes the incumbent and statistics block to out as a small
// structured summary; the engine itself only logs through
// bbcore.Engine.Logger.
func printReport(out io.Writer, e *bbcore.Engine) {
	fmt.Fprintf(out, "finished=%v explored=%d identified=%d stored=%d\n",
		e.Finished(), e.Stats.StatesExplored, e.Stats.StatesIdentified, e.Stats.StatesStoredInTree)
	fmt.Fprintf(out, "bounds: lb=%g ub=%g\n", e.GlobalLowerBound(), e.GlobalUpperBound())
	fmt.Fprintf(out, "incumbent updates: %d  time-to-opt: %s  total-time: %s\n",
		e.Stats.TimesBestStateWasUpdated, e.Stats.TimeToOpt, e.Stats.TotalTime)
	if best := e.OptSolution(); best != nil {
		fmt.Fprintf(out, "best: %s\n", best.String())
	} else {
		fmt.Fprintln(out, "best: <none found>")
	}
}

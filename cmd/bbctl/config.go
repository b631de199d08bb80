package main

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/branchbound/bnbsearch/bbcore"
)

// cliOptions mirrors the subset of bbcore.Config a user can reach from the
// command line, plus the strategy selection that lives outside Config.
type cliOptions struct {
	Strategy     string
	CBFSMode     string
	CBFSK        int
	CBFSSeed     int64
	NodeLimit    int
	TimeLimit    string
	Debug        int
	OutputRate   int
	UseDominance bool
	TraceFile    string
}

func bindCommonFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "dfs", "frontier strategy: dfs, brfs, bfs, cbfs, cdbfs")
	cmd.Flags().StringVar(&opts.CBFSMode, "cbfs-mode", "standard", "CBFS selection mode: standard, random-top-k, k-best")
	cmd.Flags().IntVar(&opts.CBFSK, "cbfs-k", 3, "CBFS top-k / per-level quota")
	cmd.Flags().Int64Var(&opts.CBFSSeed, "cbfs-seed", 1, "CBFS random-from-top-k RNG seed")
	cmd.Flags().IntVar(&opts.NodeLimit, "node-limit", 0, "stop after this many explored states (0 = unlimited)")
	cmd.Flags().StringVar(&opts.TimeLimit, "time-limit", "0s", "stop after this much wall time (0 = unlimited)")
	cmd.Flags().IntVar(&opts.Debug, "debug", 1, "verbosity level 0..3")
	cmd.Flags().IntVar(&opts.OutputRate, "output-rate", 100, "progress-log cadence, in explored states")
	cmd.Flags().BoolVar(&opts.UseDominance, "dominance", true, "enable the dominance subsystem")
	cmd.Flags().StringVar(&opts.TraceFile, "trace", "", "optional trace-graph output file")
}

// decodeConfig maps cliOptions onto a bbcore.Config by way of mapstructure.
// direction and optIsIntegral are supplied by the caller (a problem
// encoding decides those, not the CLI).
func decodeConfig(opts cliOptions, direction bbcore.Direction, optIsIntegral bool) (bbcore.Config, error) {
	raw := map[string]any{
		"Direction":     int(direction),
		"OptIsIntegral": optIsIntegral,
		"UseDominance":  opts.UseDominance,
		"RetainStates":  opts.UseDominance,
		"NodeLimit":     opts.NodeLimit,
		"TimeLimit":     opts.TimeLimit,
		"Debug":         opts.Debug,
		"OutputRate":    opts.OutputRate,
		"TraceFile":     opts.TraceFile,
	}

	var cfg bbcore.Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &cfg,
	})
	if err != nil {
		return bbcore.Config{}, fmt.Errorf("bbctl: building config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return bbcore.Config{}, fmt.Errorf("bbctl: decoding config: %w", err)
	}
	return cfg, nil
}


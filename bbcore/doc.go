// Package bbcore implements the core of a generic branch-and-bound search
// engine: the state contract every problem encoding fulfils, the statistics
// block the driver maintains, the dominance index, and the Engine driver
// itself (process/prune/branch, bound maintenance, termination).
//
// bbcore is deliberately unaware of any concrete optimisation problem.
// Callers implement the State interface for their own problem (see
// github.com/branchbound/bnbsearch/examples/knapsack for a worked example),
// pick one of the frontier strategies in github.com/branchbound/bnbsearch/frontier,
// and drive the search with:
//
//	eng, err := bbcore.NewEngine(strategy, cfg)
//	if err != nil { ... }
//	if _, err := eng.ProcessState(root, true); err != nil { ... }
//	if err := eng.Explore(context.Background()); err != nil { ... }
//
// # Bound direction
//
// For Config.Direction == MIN, GlobalUpperBound is the best known feasible
// objective (monotonically decreasing) and GlobalLowerBound is the
// optimistic root bound (monotonically increasing). MAX is symmetric.
//
// # Concurrency
//
// Engine is single-threaded and synchronous: Explore, ProcessState, and a
// State's Branch/ComputeBounds are never called concurrently with one
// another. The context passed to Explore is only ever polled at the same
// checkpoints the node/time limits are already checked at — it introduces
// no goroutines of its own.
package bbcore

package bbcore

import "time"

// Config enumerates every behavioural option of the search driver. Zero
// value of Config is a MIN search with every optional feature disabled and
// no resource limits — callers should start from DefaultConfig and override
// what they need.
type Config struct {
	// Direction selects MIN or MAX optimisation.
	Direction Direction

	// OptIsIntegral enables integer-equality termination at the root: if
	// ceil(LB) == floor(UB) there the problem is solved without exploring.
	OptIsIntegral bool

	// UseDominance turns the dominance subsystem on.
	UseDominance bool

	// RetainStates keeps every stored state alive until teardown. Required
	// when UseDominance is true (the dominance index needs a stable
	// reference to compare against).
	RetainStates bool

	// UseFinalTests invokes State.ApplyFinalPruningTests after cheap pruning
	// fails and before branching.
	UseFinalTests bool

	// FindAllSolutions updates the incumbent even on ties within Epsilon,
	// rather than keeping only the first.
	FindAllSolutions bool

	// SaveNonTerminal treats every processed state's ObjectiveValue as an
	// incumbent candidate, not only terminal ones.
	SaveNonTerminal bool

	// StateComputesBounds, when true, means the user's Branch computes
	// children's bounds itself; the driver must not call ComputeBounds.
	StateComputesBounds bool

	// StopAtFirstImprovement halts the search as soon as any incumbent
	// update occurs.
	StopAtFirstImprovement bool

	// NodeLimit stops the search once this many states have been explored.
	// Zero disables the limit.
	NodeLimit int

	// TimeLimit stops the search once this much wall time has elapsed.
	// Zero (or any value below Epsilon seconds) disables the limit.
	TimeLimit time.Duration

	// OutputRate is the progress-log cadence, in explored states. Zero
	// disables cadence-based logging (lifecycle events still log at Debug
	// level regardless).
	OutputRate int

	// Debug is the verbosity level, 0..3.
	Debug int

	// TraceFile, if non-empty, names a file the engine writes a graph trace
	// to. NewEngine creates the file; Explore closes it when its loop ends.
	TraceFile string
}

// DefaultConfig returns a MIN search with dominance and state-retention
// enabled and no resource limits, a reasonable starting point for most
// problem encodings.
func DefaultConfig() Config {
	return Config{
		Direction:    MIN,
		UseDominance: true,
		RetainStates: true,
	}
}

package bbcore

import "time"

// Stats is the observable statistics block the driver maintains. Per-level
// histograms grow on demand, indexed by depth.
type Stats struct {
	StatesIdentified          int
	StatesExplored            int
	StatesStoredInTree        int
	TerminalStatesIdentified  int
	HeuristicStatesProcessed  int
	TimesBestStateWasUpdated  int

	PrunedByBoundsBeforeInsertion  int
	PrunedByBoundsBeforeExploration int
	PrunedByDomBeforeInsertion     int
	PrunedByDomBeforeExploration   int

	NumOptimalTerminalStatesIdentified  int
	NumOptimalHeuristicStatesProcessed  int

	StatesExploredAtLastUpdate   int
	StatesIdentifiedAtLastUpdate int
	StatesStoredAtLastUpdate     int

	TotalTime time.Duration
	TimeToOpt time.Duration

	NumIdentifiedAtLevel []int
	NumExploredAtLevel   []int
	NumStoredAtLevel     []int
}

// NewStats returns a zero-valued Stats block ready for use.
func NewStats() *Stats {
	return &Stats{}
}

// growTo ensures slice has an entry at index depth, zero-filling as needed.
func growTo(slice []int, depth int) []int {
	for len(slice) <= depth {
		slice = append(slice, 0)
	}
	return slice
}

func (s *Stats) recordIdentified(depth int) {
	s.StatesIdentified++
	s.NumIdentifiedAtLevel = growTo(s.NumIdentifiedAtLevel, depth)
	s.NumIdentifiedAtLevel[depth]++
}

func (s *Stats) recordExplored(depth int) {
	s.StatesExplored++
	s.NumExploredAtLevel = growTo(s.NumExploredAtLevel, depth)
	s.NumExploredAtLevel[depth]++
}

func (s *Stats) recordStored(depth int) {
	s.StatesStoredInTree++
	s.NumStoredAtLevel = growTo(s.NumStoredAtLevel, depth)
	s.NumStoredAtLevel[depth]++
}

func (s *Stats) snapshotAtUpdate() {
	s.StatesExploredAtLastUpdate = s.StatesExplored
	s.StatesIdentifiedAtLastUpdate = s.StatesIdentified
	s.StatesStoredAtLastUpdate = s.StatesStoredInTree
}

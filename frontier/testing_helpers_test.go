package frontier_test

import "github.com/branchbound/bnbsearch/bbcore"

// testState is a minimal bbcore.State used across this package's tests: it
// carries only what a frontier touches (ID/Depth/Dominated/ObjectiveValue
// via Less), with every other State method a no-op.
type testState struct {
	bbcore.Base
	label string
}

func newTestState(depth int, objective float64, label string) *testState {
	s := &testState{label: label}
	s.Base = bbcore.NewBase(-1, depth, 0, depth, objective)
	return s
}

func (s *testState) Clone() bbcore.State                       { c := *s; return &c }
func (s *testState) Branch(e *bbcore.Engine) bbcore.ControlFlow { return bbcore.Continue }
func (s *testState) ComputeBounds(e *bbcore.Engine)             {}
func (s *testState) AssessDominance(other bbcore.State)         {}
func (s *testState) IsTerminal() bool                           { return false }
func (s *testState) ApplyFinalPruningTests(e *bbcore.Engine) bool { return false }
func (s *testState) Less(other bbcore.State) bool {
	return s.ObjectiveValue() < other.(*testState).ObjectiveValue()
}
func (s *testState) String() string { return s.label }

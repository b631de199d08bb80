package bbcore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/branchbound/bnbsearch/bbcore"
)

// fakeState is a minimal, fully-configurable bbcore.State used to exercise
// the engine without pulling in a real problem encoding.
type fakeState struct {
	bbcore.Base

	terminal   bool
	finalPrune bool
	branch     func(s *fakeState, e *bbcore.Engine) bbcore.ControlFlow
	bound      func(s *fakeState, e *bbcore.Engine)
	assessDom  func(s, other *fakeState)
}

func (s *fakeState) Clone() bbcore.State { c := *s; return &c }

func (s *fakeState) Branch(e *bbcore.Engine) bbcore.ControlFlow {
	if s.branch != nil {
		return s.branch(s, e)
	}
	return bbcore.Continue
}

func (s *fakeState) ComputeBounds(e *bbcore.Engine) {
	if s.bound != nil {
		s.bound(s, e)
	}
}

func (s *fakeState) AssessDominance(other bbcore.State) {
	if s.assessDom != nil {
		s.assessDom(s, other.(*fakeState))
	}
}

func (s *fakeState) IsTerminal() bool { return s.terminal }

func (s *fakeState) ApplyFinalPruningTests(e *bbcore.Engine) bool { return s.finalPrune }

func (s *fakeState) Less(other bbcore.State) bool {
	return s.ObjectiveValue() < other.(*fakeState).ObjectiveValue()
}

func (s *fakeState) String() string { return "fakeState" }

func newFake(parentID, depth int, objective float64) *fakeState {
	return &fakeState{Base: bbcore.NewBase(parentID, depth, 0, depth, objective)}
}

func newEngine(t *testing.T, strategy bbcore.Strategy, cfg bbcore.Config) *bbcore.Engine {
	t.Helper()
	e, err := bbcore.NewEngine(strategy, cfg)
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsNilStrategy(t *testing.T) {
	_, err := bbcore.NewEngine(nil, bbcore.DefaultConfig())
	require.ErrorIs(t, err, bbcore.ErrNilStrategy)
}

func TestProcessStateRejectsNilState(t *testing.T) {
	e := newEngine(t, &fifoStrategy{}, bbcore.DefaultConfig())
	_, err := e.ProcessState(nil, false)
	require.ErrorIs(t, err, bbcore.ErrNilState)
}

func TestProcessStateAssignsContiguousIDs(t *testing.T) {
	e := newEngine(t, &fifoStrategy{}, bbcore.DefaultConfig())

	a := newFake(-1, 0, 0)
	b := newFake(0, 1, 0)
	ok, err := e.ProcessState(a, true)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = e.ProcessState(b, false)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 0, a.ID())
	require.Equal(t, 1, b.ID())
}

func TestProcessStateSavesTerminalAsIncumbent(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	cfg.Direction = bbcore.MAX
	e := newEngine(t, &fifoStrategy{}, cfg)

	term := newFake(-1, 1, 5)
	term.terminal = true

	ok, err := e.ProcessState(term, false)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, e.Stats.TerminalStatesIdentified)
	require.NotNil(t, e.OptSolution())
	require.InDelta(t, 5, e.OptSolution().ObjectiveValue(), 1e-9)
}

func TestProcessStatePrunesByBoundsBeforeInsertion(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	cfg.Direction = bbcore.MAX
	e := newEngine(t, &fifoStrategy{}, cfg)

	incumbent := newFake(-1, 1, 10)
	incumbent.terminal = true
	_, err := e.ProcessState(incumbent, false)
	require.NoError(t, err)

	candidate := newFake(-1, 1, 0)
	candidate.bound = func(s *fakeState, e *bbcore.Engine) { s.SetUpperBound(9) }
	ok, err := e.ProcessState(candidate, false)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, e.Stats.PrunedByBoundsBeforeInsertion)
}

func TestProcessStatePrunesByDominance(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	cfg.UseDominance = true
	cfg.RetainStates = true
	e := newEngine(t, &fifoStrategy{}, cfg)

	better := newFake(-1, 1, 10)
	better.assessDom = func(s, other *fakeState) {} // never dominated itself
	_, err := e.ProcessState(better, false)
	require.NoError(t, err)

	worse := newFake(-1, 1, 1)
	worse.assessDom = func(s, other *fakeState) {
		if other.ObjectiveValue() >= s.ObjectiveValue() {
			s.SetDominated()
		}
	}
	ok, err := e.ProcessState(worse, false)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, worse.IsDominated())
	require.Equal(t, 1, e.Stats.PrunedByDomBeforeInsertion)
}

func TestSaveBestStateDetectsBoundInconsistency(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	cfg.Direction = bbcore.MAX
	e := newEngine(t, &fifoStrategy{}, cfg)

	root := newFake(-1, 0, 0)
	root.bound = func(s *fakeState, e *bbcore.Engine) { s.SetUpperBound(10) }
	ok, err := e.ProcessState(root, true)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 10, e.GlobalUpperBound(), 1e-9)

	impossible := newFake(0, 1, 11)
	impossible.terminal = true
	_, err = e.ProcessState(impossible, false)

	var bie *bbcore.BoundInconsistencyError
	require.True(t, errors.As(err, &bie))
}

func TestExploreStopsAtNodeLimitWithoutAborting(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	cfg.Direction = bbcore.MAX
	cfg.NodeLimit = 2
	strategy := &fifoStrategy{}
	e := newEngine(t, strategy, cfg)

	for i := 0; i < 5; i++ {
		s := newFake(-1, 1, 0)
		s.bound = func(s *fakeState, e *bbcore.Engine) { s.SetUpperBound(100) }
		_, err := e.ProcessState(s, false)
		require.NoError(t, err)
	}

	require.NoError(t, e.Explore(context.Background()))
	require.Equal(t, 2, e.Stats.StatesExplored)
	// Resource-limit cutoffs are a normal termination, per the driver's
	// contract: only an abort or context cancellation clears Finished.
	require.True(t, e.Finished())
}

func TestExploreAbortsWhenBranchRequestsIt(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	strategy := &fifoStrategy{}
	e := newEngine(t, strategy, cfg)

	abortNow := newFake(-1, 1, 0)
	abortNow.branch = func(s *fakeState, e *bbcore.Engine) bbcore.ControlFlow { return bbcore.Abort }
	_, err := e.ProcessState(abortNow, false)
	require.NoError(t, err)

	more := newFake(-1, 1, 0)
	_, err = e.ProcessState(more, false)
	require.NoError(t, err)

	require.NoError(t, e.Explore(context.Background()))
	require.False(t, e.Finished())
	require.Equal(t, 1, e.Stats.StatesExplored)
}

func TestExploreHonoursContextCancellation(t *testing.T) {
	cfg := bbcore.DefaultConfig()
	strategy := &fifoStrategy{}
	e := newEngine(t, strategy, cfg)

	for i := 0; i < 3; i++ {
		s := newFake(-1, 1, 0)
		_, err := e.ProcessState(s, false)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, e.Explore(ctx))
	require.False(t, e.Finished())
	require.Equal(t, 0, e.Stats.StatesExplored)
}

// fifoStrategy is the simplest possible bbcore.Strategy, used so these
// tests exercise Engine in isolation from package frontier.
type fifoStrategy struct {
	items []bbcore.State
}

func (f *fifoStrategy) Push(s bbcore.State) { f.items = append(f.items, s) }

func (f *fifoStrategy) PopNext() (bbcore.State, bool) {
	for len(f.items) > 0 {
		s := f.items[0]
		f.items = f.items[1:]
		if s.IsDominated() {
			continue
		}
		return s, true
	}
	return nil, false
}

func (f *fifoStrategy) IsEmpty() bool { return len(f.items) == 0 }

func (f *fifoStrategy) Len() int { return len(f.items) }

package bbcore

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine is the abstract branch-and-bound driver: it orchestrates node
// processing, pruning, bound maintenance, termination, and statistics for
// whichever frontier Strategy it was constructed with. Engine is
// single-threaded and synchronous; see the package doc for the concurrency
// contract.
type Engine struct {
	cfg      Config
	strategy Strategy
	dom      *dominanceIndex

	Stats  *Stats
	Logger *logrus.Entry

	// Metrics, if non-nil, is notified after every explored state and every
	// incumbent update. The driver never reads it back.
	Metrics MetricsSink

	trace *tracer

	globalLowerBound float64
	globalUpperBound float64
	bestState        State

	nextID int

	keepExploring          bool
	finished               bool
	incumbentUpdatedThisIter bool
	incumbentEverUpdated     bool

	fatalErr error
}

// NewEngine constructs a driver for the given frontier strategy and
// configuration. Trace-file open failures are surfaced immediately rather
// than deferred to the first write, since a bad trace path is a
// configuration error, not a runtime one.
func NewEngine(strategy Strategy, cfg Config) (*Engine, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	t, err := openTracer(cfg.TraceFile)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetLevel(debugLevel(cfg.Debug))

	return &Engine{
		cfg:              cfg,
		strategy:         strategy,
		dom:              newDominanceIndex(),
		Stats:            NewStats(),
		Logger:           logger.WithField("component", "bbcore.Engine"),
		trace:            t,
		globalLowerBound: negInf,
		globalUpperBound: posInf,
		keepExploring:    true,
		finished:         true,
	}, nil
}

func debugLevel(level int) logrus.Level {
	switch {
	case level >= 3:
		return logrus.TraceLevel
	case level == 2:
		return logrus.DebugLevel
	case level == 1:
		return logrus.InfoLevel
	default:
		return logrus.WarnLevel
	}
}

// GlobalLowerBound returns the engine's current optimistic/best-known lower
// bound, per Config.Direction.
func (e *Engine) GlobalLowerBound() float64 { return e.globalLowerBound }

// GlobalUpperBound returns the engine's current optimistic/best-known upper
// bound, per Config.Direction.
func (e *Engine) GlobalUpperBound() float64 { return e.globalUpperBound }

// OptSolution returns the best feasible state found so far, or nil if none
// has been recorded yet.
func (e *Engine) OptSolution() State { return e.bestState }

// NumExploredStates returns the number of states popped from the frontier
// and branched. States pruned or deferred at pop time are not counted.
func (e *Engine) NumExploredStates() int { return e.Stats.StatesExplored }

// Finished reports whether the most recent Explore call ended normally. It
// is false only when a Branch call returned Abort or ctx was cancelled;
// an empty frontier, a closed gap, and the node, time and
// first-improvement limits all leave it true.
func (e *Engine) Finished() bool { return e.finished }

// exceedsBounds reports whether s can no longer beat the current incumbent
// even under its own most optimistic bound, and so is safe to prune.
func (e *Engine) exceedsBounds(s State) bool {
	switch e.cfg.Direction {
	case MAX:
		return s.UpperBound() <= e.globalLowerBound+Epsilon
	default: // MIN
		return s.LowerBound() >= e.globalUpperBound-Epsilon
	}
}

// ProcessState ingests s: ID assignment, terminal/heuristic incumbent
// checks, dominance, bound computation and pruning, and — if kept —
// insertion into the dominance index and frontier.
func (e *Engine) ProcessState(s State, isRoot bool) (bool, error) {
	if s == nil {
		return false, ErrNilState
	}

	s.SetID(e.nextID)
	e.nextID++
	e.Stats.recordIdentified(s.Depth())
	e.trace.node(s.ID())
	e.trace.edge(s.ParentID(), s.ID())
	e.trace.colour(s.ID(), ColourDefault)

	if s.IsTerminal() {
		e.Stats.TerminalStatesIdentified++
		e.trace.colour(s.ID(), ColourGreen)
		if err := e.saveBestState(s, true); err != nil {
			return false, err
		}
		return true, nil
	}

	if e.cfg.SaveNonTerminal {
		e.Stats.HeuristicStatesProcessed++
		if err := e.saveBestState(s, false); err != nil {
			return false, err
		}
	}

	if e.cfg.UseDominance {
		if e.dom.assess(s) {
			s.SetDominated()
			e.Stats.PrunedByDomBeforeInsertion++
			e.trace.colour(s.ID(), ColourMagenta)
			return false, nil
		}
	}

	if !e.cfg.StateComputesBounds {
		s.ComputeBounds(e)
	}

	if e.exceedsBounds(s) {
		e.Stats.PrunedByBoundsBeforeInsertion++
		e.trace.colour(s.ID(), ColourRed)
		return false, nil
	}

	if isRoot {
		switch e.cfg.Direction {
		case MAX:
			e.globalUpperBound = s.UpperBound()
		default:
			e.globalLowerBound = s.LowerBound()
		}
		if e.rootGapClosed() {
			return false, nil
		}
	}

	if e.cfg.RetainStates {
		e.dom.insert(s)
	}
	e.strategy.Push(s)
	e.Stats.recordStored(s.Depth())

	return true, nil
}

func (e *Engine) rootGapClosed() bool {
	if e.cfg.OptIsIntegral {
		return math.Ceil(e.globalLowerBound) == math.Floor(e.globalUpperBound)
	}
	return math.Abs(e.globalLowerBound-e.globalUpperBound) < Epsilon
}

// saveBestState folds a candidate objective value into the incumbent: ties
// are recorded as alternate optima, strict improvements replace the
// incumbent and tighten the bound on the incumbent's side of the search.
func (e *Engine) saveBestState(s State, terminalOrigin bool) error {
	o := s.ObjectiveValue()

	var tie, improve bool
	switch e.cfg.Direction {
	case MAX:
		tie = math.Abs(o-e.globalLowerBound) <= Epsilon
		improve = o > e.globalLowerBound+Epsilon
	default: // MIN
		tie = math.Abs(o-e.globalUpperBound) <= Epsilon
		improve = o < e.globalUpperBound-Epsilon
	}

	switch {
	case tie:
		if e.bestState == nil || e.cfg.FindAllSolutions {
			e.commitIncumbent(s)
		}
		if terminalOrigin {
			e.Stats.NumOptimalTerminalStatesIdentified++
		} else {
			e.Stats.NumOptimalHeuristicStatesProcessed++
		}
	case improve:
		e.commitIncumbent(s)
		switch e.cfg.Direction {
		case MAX:
			e.globalLowerBound = o
		default:
			e.globalUpperBound = o
		}
		if terminalOrigin {
			e.Stats.NumOptimalTerminalStatesIdentified = 1
			e.Stats.NumOptimalHeuristicStatesProcessed = 0
		} else {
			e.Stats.NumOptimalHeuristicStatesProcessed = 1
			e.Stats.NumOptimalTerminalStatesIdentified = 0
		}
		if e.globalUpperBound < e.globalLowerBound {
			e.fatalErr = &BoundInconsistencyError{
				Direction:  e.cfg.Direction,
				LowerBound: e.globalLowerBound,
				UpperBound: e.globalUpperBound,
			}
			return e.fatalErr
		}
	}
	return nil
}

func (e *Engine) commitIncumbent(s State) {
	e.bestState = s.Clone()
	e.Stats.TimesBestStateWasUpdated++
	e.Stats.snapshotAtUpdate()
	e.incumbentUpdatedThisIter = true
	e.incumbentEverUpdated = true
	if e.Metrics != nil {
		e.Metrics.Observe(e.Stats)
	}
	e.Logger.WithFields(logrus.Fields{
		"objective": s.ObjectiveValue(),
		"stateID":   s.ID(),
	}).Debug("incumbent.updated")
}

// ResetBest clears the incumbent and re-enables exploration, for
// restart-style drivers that run Explore more than once over the same
// frontier.
func (e *Engine) ResetBest() {
	e.bestState = nil
	e.incumbentEverUpdated = false
	e.keepExploring = true
	e.finished = true
}

// Explore runs the main search loop until the frontier empties or a
// termination condition fires. ctx is polled at the same checkpoints the
// node/time limits are already checked at; it introduces no goroutines.
func (e *Engine) Explore(ctx context.Context) error {
	e.keepExploring = true
	e.finished = true
	start := time.Now()

	for !e.strategy.IsEmpty() && e.keepExploring {
		select {
		case <-ctx.Done():
			e.keepExploring = false
			e.finished = false
		default:
		}
		if !e.keepExploring {
			break
		}

		iterStart := time.Now()
		e.incumbentUpdatedThisIter = false

		aborted, err := e.exploreNextState()
		if err != nil {
			return err
		}
		e.Stats.TotalTime += time.Since(iterStart)
		if e.incumbentUpdatedThisIter {
			e.Stats.TimeToOpt = time.Since(start)
		}
		if aborted {
			e.keepExploring = false
			e.finished = false
		}

		if e.cfg.OutputRate > 0 && e.cfg.Debug > 0 && e.Stats.StatesExplored%e.cfg.OutputRate == 0 {
			e.logProgress()
		}

		elapsed := time.Since(start)
		timeOK := e.cfg.TimeLimit.Seconds() < Epsilon || elapsed < e.cfg.TimeLimit
		nodeOK := e.cfg.NodeLimit == 0 || e.Stats.StatesExplored < e.cfg.NodeLimit
		firstImprovementOK := !e.cfg.StopAtFirstImprovement || !e.incumbentEverUpdated
		gapOpen := e.globalLowerBound < e.globalUpperBound

		e.keepExploring = e.keepExploring && nodeOK && timeOK && firstImprovementOK && gapOpen
	}

	gapOpen := e.globalLowerBound < e.globalUpperBound
	statesRemain := !e.strategy.IsEmpty()
	if gapOpen && (statesRemain || !e.finished) {
		e.Logger.Warn("Failed to explore entire tree; cannot guarantee optimality")
	} else {
		e.Logger.Info("Finished")
	}

	e.trace.close()
	return nil
}

// exploreNextState pops one state from the frontier and either defers it,
// prunes it, or branches it, reporting whether branching requested abort.
func (e *Engine) exploreNextState() (aborted bool, err error) {
	s, ok := e.strategy.PopNext()
	if !ok {
		return false, nil
	}

	if s.TimeToExplore() > e.Stats.StatesExplored {
		e.strategy.Push(s)
		return false, nil
	}

	if e.cfg.UseDominance && s.IsDominated() {
		e.Stats.PrunedByDomBeforeExploration++
		e.trace.colour(s.ID(), ColourMagenta)
		return false, nil
	}
	if e.exceedsBounds(s) {
		e.Stats.PrunedByBoundsBeforeExploration++
		e.trace.colour(s.ID(), ColourRed)
		return false, nil
	}

	if e.cfg.UseFinalTests {
		if s.ApplyFinalPruningTests(e) {
			e.Stats.PrunedByBoundsBeforeExploration++
			e.trace.colour(s.ID(), ColourRed)
			return false, nil
		}
	}

	cf := s.Branch(e)

	e.Stats.recordExplored(s.Depth())
	s.SetProcessed(true)
	e.trace.label(s.ID(), e.Stats.StatesExplored)
	if e.Metrics != nil {
		e.Metrics.Observe(e.Stats)
	}

	return cf == Abort, nil
}

func (e *Engine) logProgress() {
	e.Logger.WithFields(logrus.Fields{
		"statesExplored":   e.Stats.StatesExplored,
		"statesIdentified": e.Stats.StatesIdentified,
		"globalLowerBound": e.globalLowerBound,
		"globalUpperBound": e.globalUpperBound,
	}).Info("search.progress")
}

package bbcore

// ControlFlow is the explicit sentinel a State's Branch method returns to
// request early, clean termination of the search in place of exception-based
// abort. It is checked exactly once per Explore loop iteration.
type ControlFlow int

const (
	// Continue lets the search proceed normally.
	Continue ControlFlow = iota
	// Abort requests that Explore stop after the current iteration, leaving
	// all state intact. Explore returns normally with Finished() == false.
	Abort
)

// State is the polymorphic interface every user-defined search-tree node
// fulfils. The engine calls Clone, Branch, ComputeBounds, AssessDominance,
// IsTerminal and ApplyFinalPruningTests, and otherwise mutates a State only
// through the bookkeeping setters SetID, SetDominated and SetProcessed.
// Less is called by the priority-ordered frontier strategies.
//
// Implementers should embed Base, which supplies the common bookkeeping
// fields (ID, ParentID, Depth, TimeToExplore, DominanceClassKey,
// ObjectiveValue, LowerBound, UpperBound, Dominated, Processed) every state
// needs, plus the accessor methods below.
type State interface {
	// Clone returns an independent copy. The engine calls it once per
	// incumbent update, to snapshot the improving state into the incumbent.
	Clone() State

	// Branch constructs this state's children and hands each to
	// e.ProcessState. It may return Abort to request clean early termination.
	Branch(e *Engine) ControlFlow

	// ComputeBounds narrows LowerBound/UpperBound. Not called by the driver
	// when Config.StateComputesBounds is true (the user's Branch is then
	// responsible for setting children's bounds itself).
	ComputeBounds(e *Engine)

	// AssessDominance compares the receiver against other, a live state in
	// the same dominance class. It may set SetDominated on either side.
	AssessDominance(other State)

	// IsTerminal reports whether this state is a complete feasible solution
	// (a tree leaf), as opposed to a heuristic-origin candidate or a partial
	// state awaiting branching.
	IsTerminal() bool

	// ApplyFinalPruningTests runs an expensive, final pruning check prior to
	// branching. Returns true if the state should be pruned.
	ApplyFinalPruningTests(e *Engine) bool

	// Less implements "greater is better": a strict total order consumed by
	// priority-ordered frontiers, which pop the maximum.
	Less(other State) bool

	// String renders a short diagnostic label. The engine does not call it;
	// its log records and the trace stream identify states by ID.
	String() string

	// --- driver-managed bookkeeping (see Base) ---

	ID() int
	SetID(id int)
	ParentID() int
	SetParentID(id int)
	Depth() int
	TimeToExplore() int
	DominanceClassKey() int
	ObjectiveValue() float64
	LowerBound() float64
	SetLowerBound(v float64)
	UpperBound() float64
	SetUpperBound(v float64)
	IsDominated() bool
	SetDominated()
	IsProcessed() bool
	SetProcessed(v bool)
}

// Base is an embeddable struct implementing the bookkeeping half of the
// State interface. A problem encoding embeds Base and implements the
// remaining problem-specific methods (Clone, Branch, ComputeBounds,
// AssessDominance, IsTerminal, ApplyFinalPruningTests, Less, String).
//
// ParentID, Depth, TimeToExplore, DominanceClassKey and ObjectiveValue are
// set directly by the user when constructing a state; ID is assigned by the
// driver on ingestion.
type Base struct {
	id                int
	parentID          int
	depth             int
	timeToExplore     int
	dominanceClassKey int
	objectiveValue    float64
	lowerBound        float64
	upperBound        float64
	dominated         bool
	processed         bool
}

// NewBase constructs a Base with its driver-facing invariants set for a
// freshly built, not-yet-ingested state: id unassigned, bounds at ±∞.
func NewBase(parentID, depth, timeToExplore, dominanceClassKey int, objectiveValue float64) Base {
	return Base{
		id:                -1,
		parentID:          parentID,
		depth:             depth,
		timeToExplore:     timeToExplore,
		dominanceClassKey: dominanceClassKey,
		objectiveValue:    objectiveValue,
		lowerBound:        negInf,
		upperBound:        posInf,
	}
}

func (b *Base) ID() int                   { return b.id }
func (b *Base) SetID(id int)              { b.id = id }
func (b *Base) ParentID() int             { return b.parentID }
func (b *Base) SetParentID(id int)        { b.parentID = id }
func (b *Base) Depth() int                { return b.depth }
func (b *Base) TimeToExplore() int        { return b.timeToExplore }
func (b *Base) DominanceClassKey() int    { return b.dominanceClassKey }
func (b *Base) ObjectiveValue() float64   { return b.objectiveValue }
func (b *Base) SetObjectiveValue(v float64) { b.objectiveValue = v }
func (b *Base) LowerBound() float64       { return b.lowerBound }
func (b *Base) SetLowerBound(v float64)   { b.lowerBound = v }
func (b *Base) UpperBound() float64       { return b.upperBound }
func (b *Base) SetUpperBound(v float64)   { b.upperBound = v }
func (b *Base) IsDominated() bool         { return b.dominated }
func (b *Base) SetDominated()             { b.dominated = true }
func (b *Base) IsProcessed() bool         { return b.processed }
func (b *Base) SetProcessed(v bool)       { b.processed = v }

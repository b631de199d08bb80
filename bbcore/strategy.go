package bbcore

// Strategy is the frontier contract shared by every search-order policy
// (DFS, BrFS, BFS, CBFS, CDBFS — see package frontier). The engine only
// ever calls Push, PopNext and IsEmpty; the dominance-lazy-filtering discipline
// ("repeatedly discard dominated top-of-frontier states until a live one is
// found or the frontier empties") is the strategy's own responsibility.
type Strategy interface {
	// Push stores s for later exploration.
	Push(s State)

	// PopNext removes and returns the next state to explore, lazily
	// skipping states already marked dominated. ok is false when the
	// frontier has no live state left.
	PopNext() (s State, ok bool)

	// IsEmpty reports whether no state (dominated or not) remains.
	IsEmpty() bool

	// Len reports the number of states currently held, including any not
	// yet lazily filtered for dominance.
	Len() int
}

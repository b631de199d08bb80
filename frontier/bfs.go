package frontier

import "github.com/branchbound/bnbsearch/bbcore"

// BFS is a single best-first priority queue keyed by the state comparator,
// with max-heap semantics: the globally most promising live state is always
// explored next, regardless of depth.
type BFS struct {
	heap *stateHeap
}

// NewBFS returns an empty best-first frontier.
func NewBFS() *BFS {
	return &BFS{heap: newStateHeap()}
}

func (b *BFS) Push(s bbcore.State) {
	b.heap.push(s)
}

func (b *BFS) PopNext() (bbcore.State, bool) {
	return b.heap.popLive()
}

func (b *BFS) IsEmpty() bool { return b.heap.Len() == 0 }

func (b *BFS) Len() int { return b.heap.Len() }

package frontier

import (
	"container/heap"

	"github.com/branchbound/bnbsearch/bbcore"
)

// SelectionMode picks how CBFS chooses a state from the front-of-list queue
// on each pop.
type SelectionMode int

const (
	// Standard rotates round-robin over active depths, taking the best
	// state at each depth visited.
	Standard SelectionMode = iota
	// RandomFromTopK extracts up to K best states from the front queue and
	// returns one picked uniformly at random, without replacement.
	RandomFromTopK
	// KBestAtLevel stays at the front queue for up to K consecutive pops
	// before rotating.
	KBestAtLevel
)

// stateHeap is a container/heap.Interface over bbcore.State ordered so that
// heap.Pop yields the state that is greatest under State.Less — "greater is
// better".
type stateHeap struct {
	items []bbcore.State
}

func (h *stateHeap) Len() int { return len(h.items) }

// Less inverts the user ordering: container/heap pops the element for which
// Less reports true first, so to surface the maximum under State.Less we
// report i as "heap-less" exactly when j is worse than i.
func (h *stateHeap) Less(i, j int) bool { return h.items[j].Less(h.items[i]) }

func (h *stateHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *stateHeap) Push(x any) { h.items = append(h.items, x.(bbcore.State)) }

func (h *stateHeap) Pop() any {
	n := len(h.items)
	top := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	return top
}

func newStateHeap() *stateHeap {
	h := &stateHeap{}
	heap.Init(h)
	return h
}

func (h *stateHeap) push(s bbcore.State) { heap.Push(h, s) }

// popLive pops states until a non-dominated one is found, or the heap
// empties. Dominated states are simply dropped, per the lazy-filtering
// discipline every strategy in this package honours.
func (h *stateHeap) popLive() (bbcore.State, bool) {
	for h.Len() > 0 {
		s := heap.Pop(h).(bbcore.State)
		if s.IsDominated() {
			continue
		}
		return s, true
	}
	return nil, false
}

// popTopK removes up to k live states from the heap (skipping dominated
// ones encountered along the way) and returns them, best-first.
func (h *stateHeap) popTopK(k int) []bbcore.State {
	out := make([]bbcore.State, 0, k)
	for len(out) < k {
		s, ok := h.popLive()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

package frontier

import "github.com/branchbound/bnbsearch/bbcore"

// DFS is a last-in-first-out frontier: it always explores the most recently
// branched state first, diving to a leaf before backtracking.
type DFS struct {
	stack []bbcore.State
}

// NewDFS returns an empty depth-first frontier.
func NewDFS() *DFS {
	return &DFS{}
}

func (d *DFS) Push(s bbcore.State) {
	d.stack = append(d.stack, s)
}

func (d *DFS) PopNext() (bbcore.State, bool) {
	for len(d.stack) > 0 {
		n := len(d.stack) - 1
		s := d.stack[n]
		d.stack[n] = nil
		d.stack = d.stack[:n]
		if s.IsDominated() {
			continue
		}
		return s, true
	}
	return nil, false
}

func (d *DFS) IsEmpty() bool { return len(d.stack) == 0 }

func (d *DFS) Len() int { return len(d.stack) }

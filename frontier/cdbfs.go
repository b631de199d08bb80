package frontier

import "github.com/branchbound/bnbsearch/bbcore"

// CDBFS is the contour/dive best-first frontier. Like CBFS
// it keeps one priority queue per depth, but instead of rotating through an
// ordered list it dives: a singleton "next best" slot holds the most
// promising state pushed since the slot was last emptied by a pop, and is
// always popped before the rotation
// advances, letting the search plunge toward a leaf along one contour
// before backing off to the next.
type CDBFS struct {
	levels map[int]*stateHeap
	depths []int // every depth that has had a queue, in first-seen order; emptied queues stay listed

	lastDiveLevel     int
	lastLevelExplored int

	nextBest bbcore.State
}

// NewCDBFS returns an empty contour/dive frontier.
func NewCDBFS() *CDBFS {
	return &CDBFS{
		levels:            make(map[int]*stateHeap),
		lastDiveLevel:     -1,
		lastLevelExplored: -1,
	}
}

func (c *CDBFS) levelQueue(depth int) (*stateHeap, bool) {
	q, ok := c.levels[depth]
	if !ok {
		q = newStateHeap()
		c.levels[depth] = q
		c.depths = append(c.depths, depth)
	}
	return q, ok
}

// Push decides whether s re-queues at its own depth or contests the
// next-best slot.
//
// A state re-pushed at the depth just explored (the deferral path
// re-pushing the same, unchanged state) is simply re-queued. Any other
// push — in particular a freshly branched child, one depth deeper than
// the level just explored — contests the next-best slot: it only displaces
// the current occupant on strict improvement, so a tie leaves the
// incumbent occupant in place and the new arrival goes to its own queue.
func (c *CDBFS) Push(s bbcore.State) {
	depth := s.Depth()

	if depth == c.lastLevelExplored {
		q, _ := c.levelQueue(depth)
		q.push(s)
		return
	}

	if c.nextBest == nil {
		c.nextBest = s
		return
	}
	if !c.nextBest.Less(s) {
		q, _ := c.levelQueue(depth)
		q.push(s)
		return
	}
	displaced := c.nextBest
	c.nextBest = s
	dq, _ := c.levelQueue(displaced.Depth())
	dq.push(displaced)
}

// PopNext drains the next-best slot first; once it is empty it dives into
// the next non-empty queue, cycling depths in the order they first became
// active.
func (c *CDBFS) PopNext() (bbcore.State, bool) {
	if c.nextBest != nil {
		s := c.nextBest
		c.nextBest = nil
		c.lastLevelExplored = s.Depth()
		return s, true
	}

	n := len(c.depths)
	for i := 0; i < n; i++ {
		c.lastDiveLevel = (c.lastDiveLevel + 1) % n
		depth := c.depths[c.lastDiveLevel]
		q := c.levels[depth]
		s, ok := q.popLive()
		if !ok {
			continue
		}
		c.lastLevelExplored = depth
		return s, true
	}
	return nil, false
}

func (c *CDBFS) IsEmpty() bool { return c.Len() == 0 }

func (c *CDBFS) Len() int {
	n := 0
	if c.nextBest != nil {
		n++
	}
	for _, q := range c.levels {
		n += q.Len()
	}
	return n
}

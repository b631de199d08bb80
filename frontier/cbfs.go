package frontier

import (
	"container/list"
	"math/rand"

	"github.com/branchbound/bnbsearch/bbcore"
)

// CBFS is the cyclic best-first frontier: one priority queue per depth,
// plus an ordered list of the depths currently non-empty,
// popped round-robin so that the search takes the best state at whichever
// depth is currently at the front of the rotation.
//
// The three SelectionMode variants change only how a pop chooses within the
// front-of-rotation queue; push and rotation bookkeeping are shared.
type CBFS struct {
	mode SelectionMode
	k    int
	rng  *rand.Rand

	levels map[int]*stateHeap
	order  *list.List // elements are depth (int)
	inList map[int]*list.Element

	lastLevelExplored int
	levelPopCount      int // consecutive pops served by the front level, for KBestAtLevel
}

// NewCBFS constructs a CBFS frontier. k is the "num_to_select"/per-level
// quota used by RandomFromTopK and KBestAtLevel respectively; it is ignored
// by Standard. seed seeds the deterministic RNG RandomFromTopK draws from.
func NewCBFS(mode SelectionMode, k int, seed int64) (*CBFS, error) {
	switch mode {
	case Standard, RandomFromTopK, KBestAtLevel:
	default:
		return nil, ErrInvalidSelectionMode
	}
	if (mode == RandomFromTopK || mode == KBestAtLevel) && k <= 0 {
		return nil, ErrInvalidTopK
	}
	return &CBFS{
		mode:               mode,
		k:                  k,
		rng:                rand.New(rand.NewSource(seed)),
		levels:             make(map[int]*stateHeap),
		order:              list.New(),
		inList:             make(map[int]*list.Element),
		lastLevelExplored: -1,
	}, nil
}

func (c *CBFS) levelQueue(depth int) *stateHeap {
	q, ok := c.levels[depth]
	if !ok {
		q = newStateHeap()
		c.levels[depth] = q
	}
	return q
}

func (c *CBFS) pushFront(depth int) {
	el := c.order.PushFront(depth)
	c.inList[depth] = el
}

func (c *CBFS) pushBack(depth int) {
	el := c.order.PushBack(depth)
	c.inList[depth] = el
}

func (c *CBFS) insertBehindFront(depth int) {
	front := c.order.Front()
	if front == nil {
		c.pushFront(depth)
		return
	}
	el := c.order.InsertAfter(depth, front)
	c.inList[depth] = el
}

func (c *CBFS) removeFromOrder(depth int) {
	if el, ok := c.inList[depth]; ok {
		c.order.Remove(el)
		delete(c.inList, depth)
	}
}

// Push files s into its depth's queue, and if that queue was empty, places
// the depth back into the rotation: at the back of the rotation when it is
// the level just explored (a pushback re-queue), at the front otherwise,
// except under KBestAtLevel where a newly non-empty child level may be
// filed just behind its still-under-quota parent level instead.
func (c *CBFS) Push(s bbcore.State) {
	depth := s.Depth()
	q := c.levelQueue(depth)
	wasEmpty := q.Len() == 0
	q.push(s)
	if !wasEmpty {
		return
	}

	switch {
	case depth == c.lastLevelExplored:
		c.pushBack(depth)
	case c.mode == KBestAtLevel && c.frontIsPrevLevelUnderQuota(depth):
		c.insertBehindFront(depth)
	default:
		c.pushFront(depth)
	}
}

func (c *CBFS) frontIsPrevLevelUnderQuota(depth int) bool {
	front := c.order.Front()
	if front == nil {
		return false
	}
	frontDepth := front.Value.(int)
	return frontDepth == depth-1 && c.levelPopCount < c.k
}

func (c *CBFS) PopNext() (bbcore.State, bool) {
	switch c.mode {
	case RandomFromTopK:
		return c.popRandomFromTopK()
	case KBestAtLevel:
		return c.popKBestAtLevel()
	default:
		return c.popStandard()
	}
}

func (c *CBFS) popStandard() (bbcore.State, bool) {
	for {
		front := c.order.Front()
		if front == nil {
			return nil, false
		}
		depth := front.Value.(int)
		q := c.levels[depth]
		s, ok := q.popLive()
		if !ok {
			c.removeFromOrder(depth)
			continue
		}
		c.lastLevelExplored = depth
		c.removeFromOrder(depth)
		if q.Len() > 0 {
			c.pushBack(depth)
		}
		return s, true
	}
}

func (c *CBFS) popRandomFromTopK() (bbcore.State, bool) {
	for {
		front := c.order.Front()
		if front == nil {
			return nil, false
		}
		depth := front.Value.(int)
		q := c.levels[depth]
		top := q.popTopK(c.k)
		if len(top) == 0 {
			c.removeFromOrder(depth)
			continue
		}
		idx := c.rng.Intn(len(top))
		chosen := top[idx]
		for i, st := range top {
			if i != idx {
				q.push(st)
			}
		}
		c.lastLevelExplored = depth
		c.removeFromOrder(depth)
		if q.Len() > 0 {
			c.pushBack(depth)
		}
		return chosen, true
	}
}

func (c *CBFS) popKBestAtLevel() (bbcore.State, bool) {
	for {
		front := c.order.Front()
		if front == nil {
			return nil, false
		}
		depth := front.Value.(int)
		q := c.levels[depth]
		s, ok := q.popLive()
		if !ok {
			c.removeFromOrder(depth)
			c.levelPopCount = 0
			continue
		}
		c.lastLevelExplored = depth
		c.levelPopCount++
		emptied := q.Len() == 0
		rotate := c.levelPopCount >= c.k || emptied
		if rotate {
			c.removeFromOrder(depth)
			c.levelPopCount = 0
			if !emptied {
				c.pushBack(depth)
			}
		}
		return s, true
	}
}

func (c *CBFS) IsEmpty() bool { return c.Len() == 0 }

func (c *CBFS) Len() int {
	n := 0
	for _, q := range c.levels {
		n += q.Len()
	}
	return n
}

package frontier

import "github.com/branchbound/bnbsearch/bbcore"

// BrFS is a first-in-first-out frontier: it explores states in the order
// they were branched, level by level.
type BrFS struct {
	queue []bbcore.State
	head  int
}

// NewBrFS returns an empty breadth-order frontier.
func NewBrFS() *BrFS {
	return &BrFS{}
}

func (q *BrFS) Push(s bbcore.State) {
	q.queue = append(q.queue, s)
}

func (q *BrFS) PopNext() (bbcore.State, bool) {
	for q.head < len(q.queue) {
		s := q.queue[q.head]
		q.queue[q.head] = nil
		q.head++
		if s.IsDominated() {
			continue
		}
		q.compact()
		return s, true
	}
	q.queue = q.queue[:0]
	q.head = 0
	return nil, false
}

// compact drops already-consumed entries once they make up a large share of
// the backing slice, so a long-running search doesn't retain unbounded
// garbage at the front of queue.
func (q *BrFS) compact() {
	if q.head > 0 && q.head*2 >= len(q.queue) {
		q.queue = append(q.queue[:0], q.queue[q.head:]...)
		q.head = 0
	}
}

func (q *BrFS) IsEmpty() bool { return q.head >= len(q.queue) }

func (q *BrFS) Len() int { return len(q.queue) - q.head }

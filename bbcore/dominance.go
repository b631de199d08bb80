package bbcore

// dominanceIndex maps a dominance-class key to the live states currently
// occupying that class. Two states are ever compared via AssessDominance
// only if their DominanceClassKey values are equal — the key partitions the
// comparison space so a scan covers a typically small equivalence class
// rather than the whole frontier.
//
// Class membership never changes once a state is inserted; dominated
// states are left in place and filtered lazily
// wherever they are next encountered (on frontier pop, or during a later
// scan of the same class), rather than removed eagerly.
type dominanceIndex struct {
	classes map[int][]State
}

func newDominanceIndex() *dominanceIndex {
	return &dominanceIndex{classes: make(map[int][]State)}
}

// assess compares candidate against every live state in its class. If the
// comparison leaves candidate dominated, it reports that (the caller is
// responsible for discarding candidate and not inserting it).
func (d *dominanceIndex) assess(candidate State) (dominated bool) {
	class := d.classes[candidate.DominanceClassKey()]
	for _, other := range class {
		if other.IsDominated() {
			continue
		}
		candidate.AssessDominance(other)
		if candidate.IsDominated() {
			return true
		}
	}
	return false
}

// insert adds a non-dominated candidate to its class. Must only be called
// after assess(candidate) returned false.
func (d *dominanceIndex) insert(candidate State) {
	key := candidate.DominanceClassKey()
	d.classes[key] = append(d.classes[key], candidate)
}

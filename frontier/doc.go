// Package frontier implements the five interchangeable frontier data
// structures a branch-and-bound Engine (package
// github.com/branchbound/bnbsearch/bbcore) can be driven with: DFS, BrFS,
// BFS, CBFS, and CDBFS. Each implements bbcore.Strategy (Push/PopNext/
// IsEmpty/Len) and honours lazy dominance filtering on pop — a dominated
// state sitting in the frontier is discarded the moment it is encountered,
// rather than removed eagerly when AssessDominance sets its flag.
//
// BFS and the per-depth queues inside CBFS/CDBFS are built on
// container/heap, using the state's total order with "greater is better"
// semantics: State.Less(other) reports whether the receiver is strictly
// worse than other, so the maximum under Less is the best candidate and is
// what every priority-ordered strategy here pops first.
package frontier

package solution

import (
	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
)

// Candidate is one row of a Solution chain: a position, the frontier's
// electrical state at that position, the edge it lies on (or
// rctree.InvalidEdgeID for a branch/sink candidate), and whether a
// buffer is to be spliced in at P.
type Candidate struct {
	P         geom.Point
	Capacity  float32
	RAT       float32
	EdgeID    rctree.EdgeID
	HasBuffer bool
}

// Solution is an ordered chain of Candidates, sink(s)-to-frontier. The
// last element is the current frontier the engine reasons about.
type Solution []Candidate

// Frontier returns a copy of the chain's last candidate.
func (s Solution) Frontier() Candidate {
	return s[len(s)-1]
}

// SolutionSet is an unordered, Pareto-non-dominated collection of
// Solutions for the subtree rooted at some node. It is a flat slice, not
// a set data structure — see bufferinsert.RedundancyElimination for the
// pruning pass that maintains non-domination; insertion order is kept
// stable so tie-breaking stays deterministic.
type SolutionSet []Solution

// Dominates reports whether a dominates b under the engine's Pareto
// order: a.RAT >= b.RAT and a.Capacity <= b.Capacity. Note this is
// non-strict in both directions, so two candidates that are exactly equal
// mutually dominate each other — a deliberate quirk pinned by test rather
// than corrected to a strict Pareto filter.
func Dominates(a, b Candidate) bool {
	return a.RAT >= b.RAT && a.Capacity <= b.Capacity
}

package bufferinsert

import (
	"errors"

	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
)

// Sentinel errors for topology assumptions the engine assumes a validated
// tree already satisfies. These are internal invariant checks meant to
// surface bugs in tree construction, not conditions a caller can recover
// from.
var (
	// ErrSinkHasChildren indicates a Point (sink) node was given one or
	// more child solution sets; sinks are tree leaves and must not have
	// children.
	ErrSinkHasChildren = errors.New("bufferinsert: sink node has children")

	// ErrNonSinkLeaf indicates a Steiner or Buffer node has no children,
	// which the engine never expects: only sinks are leaves.
	ErrNonSinkLeaf = errors.New("bufferinsert: non-sink node has no children")

	// ErrEmptySolutionSet indicates a merge step produced zero solutions,
	// which should never happen given a validated tree.
	ErrEmptySolutionSet = errors.New("bufferinsert: empty solution set")
)

// MergeChildren combines the SolutionSets of node's children into the
// SolutionSet for the subtree rooted at node.
func MergeChildren(children []solution.SolutionSet, node rctree.Node) (solution.SolutionSet, error) {
	if node.Kind == rctree.Point {
		if len(children) != 0 {
			return nil, ErrSinkHasChildren
		}
		return solution.SolutionSet{
			solution.Solution{{
				P:         node.P,
				Capacity:  node.Capacity,
				RAT:       node.RAT,
				EdgeID:    rctree.InvalidEdgeID,
				HasBuffer: false,
			}},
		}, nil
	}

	if len(children) == 0 {
		return nil, ErrNonSinkLeaf
	}
	if len(children) == 1 {
		return children[0], nil
	}
	if len(children) == 2 {
		return mergeTwoSolutions(children[0], children[1], node.P), nil
	}

	// Three or more children: pair child i (scanned last-to-first) with
	// the flat concatenation of the raw (un-merged, un-pruned) solutions
	// of every earlier child, rather than folding children together one
	// merge at a time. This is deliberately non-associative — merging
	// children in a different order changes which solutions survive —
	// and is pinned by regression test rather than "fixed" into a clean
	// reduce, since changing it would change which buffer placements the
	// engine reports for any tree with a 3+-way branch.
	var result solution.SolutionSet
	for i := len(children) - 1; i >= 1; i-- {
		var concatBefore solution.SolutionSet
		for j := 0; j < i; j++ {
			concatBefore = append(concatBefore, children[j]...)
		}
		result = append(result, mergeTwoSolutions(children[i], concatBefore, node.P)...)
	}

	return result, nil
}

// mergeTwoSolutions returns the cartesian product of lhs and rhs: every
// pair of chains concatenated and capped with a new frontier candidate at
// position whose capacity is the sum of both frontiers' capacities and
// whose RAT is the minimum of the two (the later branch dominates the
// arrival-time constraint).
func mergeTwoSolutions(lhs, rhs solution.SolutionSet, position geom.Point) solution.SolutionSet {
	out := make(solution.SolutionSet, 0, len(lhs)*len(rhs))
	for _, l := range lhs {
		lf := l.Frontier()
		for _, r := range rhs {
			rf := r.Frontier()
			merged := make(solution.Solution, 0, len(l)+len(r)+1)
			merged = append(merged, l...)
			merged = append(merged, r...)
			merged = append(merged, solution.Candidate{
				P:         position,
				Capacity:  lf.Capacity + rf.Capacity,
				RAT:       minFloat32(lf.RAT, rf.RAT),
				EdgeID:    rctree.InvalidEdgeID,
				HasBuffer: false,
			})
			out = append(out, merged)
		}
	}
	return out
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

package bufferinsert

import (
	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
	"github.com/vginneken/bufferinsert/techconfig"
)

// propagateAlongEdge advances set — every solution in it shares a common
// frontier position on entry, an invariant each call restores before
// returning — across edge, one split point at a time: wire-extend every
// solution, prune, then union in a buffered copy of the pruned frontier
// and prune again. This is what generates every buffer placement
// alternative along the edge.
func propagateAlongEdge(set solution.SolutionSet, edge rctree.Edge, eid rctree.EdgeID, tech techconfig.Technology, buf techconfig.Module, step int) solution.SolutionSet {
	points := geom.SplitEdge(edge.Segments, step)
	if len(points) == 0 {
		return set
	}

	frontierPos := set[0].Frontier().P
	for _, p := range points {
		length := geom.Distance(frontierPos, p)

		extended := make(solution.SolutionSet, len(set))
		for i, sol := range set {
			extended[i] = solution.WireExtend(sol, length, p, eid, tech)
		}
		extended = RedundancyElimination(extended)

		buffered := make(solution.SolutionSet, len(extended))
		for i, sol := range extended {
			buffered[i] = solution.BufferInsert(sol, buf)
		}

		union := make(solution.SolutionSet, 0, len(extended)+len(buffered))
		union = append(union, extended...)
		union = append(union, buffered...)
		set = RedundancyElimination(union)

		frontierPos = p
	}

	return set
}

package bufferinsert

import (
	"fmt"

	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
	"github.com/vginneken/bufferinsert/techconfig"
)

// DefaultStep is the candidate spacing used when a caller passes a
// non-positive step to Run, matching geom's own default.
const DefaultStep = 1

// Run performs the full bottom-up buffer insertion traversal over store
// using an explicit work stack rather than recursion, so traversal depth
// never threatens the call stack, and returns the single best chain of
// Candidates at the root. The returned Solution's frontier has HasBuffer
// cleared: the root's own buffer charge is folded into RAT, but the root
// is never itself a candidate repeater to report.
func Run(store *rctree.Store, cfg techconfig.Config, step int) (solution.Solution, error) {
	if step <= 0 {
		step = DefaultStep
	}

	root, err := store.Root()
	if err != nil {
		return nil, err
	}

	visited := make(map[rctree.NodeID]solution.SolutionSet)
	stack := []rctree.NodeID{root}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		childEdges, err := store.Children(top)
		if err != nil {
			return nil, err
		}

		childIDs := make([]rctree.NodeID, len(childEdges))
		for i, eid := range childEdges {
			_, last := store.EdgeEndpoints(eid)
			childIDs[i] = last
		}

		childSolutions := make([]solution.SolutionSet, 0, len(childIDs))
		missing := false
		for _, child := range childIDs {
			if set, ok := visited[child]; ok {
				childSolutions = append(childSolutions, set)
			} else {
				stack = append(stack, child)
				missing = true
			}
		}
		if missing {
			continue
		}

		node, err := store.Node(top)
		if err != nil {
			return nil, err
		}

		merged, err := MergeChildren(childSolutions, node)
		if err != nil {
			return nil, fmt.Errorf("bufferinsert: merging node %d: %w", top, err)
		}
		merged = RedundancyElimination(merged)
		if len(merged) == 0 {
			return nil, ErrEmptySolutionSet
		}

		if top == root {
			visited[top] = finalizeAtRoot(merged, cfg.Buffer())
			stack = stack[:len(stack)-1]
			continue
		}

		parentEdgeID, err := store.Parent(top)
		if err != nil {
			return nil, err
		}
		parentEdge, err := store.Edge(parentEdgeID)
		if err != nil {
			return nil, err
		}

		merged = propagateAlongEdge(merged, parentEdge, parentEdgeID, cfg.Technology(), cfg.Buffer(), step)
		visited[top] = merged
		stack = stack[:len(stack)-1]
	}

	final := visited[root]
	if len(final) == 0 {
		return nil, ErrEmptySolutionSet
	}

	return selectBest(final), nil
}

// finalizeAtRoot charges every solution for the driver's own output
// resistance and intrinsic delay by running a buffer-insert as if the
// driver itself were a repeater, then clears HasBuffer on that final
// frontier, since the driver is not a placement candidate to report.
func finalizeAtRoot(set solution.SolutionSet, buf techconfig.Module) solution.SolutionSet {
	out := make(solution.SolutionSet, len(set))
	for i, sol := range set {
		withDriver := solution.BufferInsert(sol, buf)
		frontier := withDriver[len(withDriver)-1]
		frontier.HasBuffer = false
		withDriver[len(withDriver)-1] = frontier
		out[i] = withDriver
	}
	return out
}

// selectBest reduces set to the single Solution with the greatest
// frontier RAT, breaking ties by keeping the earliest maximal entry.
func selectBest(set solution.SolutionSet) solution.Solution {
	best := set[0]
	bestRAT := best.Frontier().RAT
	for _, sol := range set[1:] {
		if r := sol.Frontier().RAT; r > bestRAT {
			best, bestRAT = sol, r
		}
	}
	return best
}

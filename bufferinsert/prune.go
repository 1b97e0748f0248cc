package bufferinsert

import "github.com/vginneken/bufferinsert/solution"

// RedundancyElimination drops every Solution in set whose frontier is
// dominated by some other Solution's frontier. Because solution.Dominates
// is non-strict in both directions, two exactly-tied frontiers mutually
// dominate and both are dropped. Comparisons are pairwise over the set's
// insertion order, so the result stays deterministic and order-stable for
// ties that don't involve domination.
func RedundancyElimination(set solution.SolutionSet) solution.SolutionSet {
	n := len(set)
	if n < 2 {
		return set
	}

	redundant := make([]bool, n)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			fi, fj := set[i].Frontier(), set[j].Frontier()
			if solution.Dominates(fi, fj) {
				redundant[j] = true
			}
			if solution.Dominates(fj, fi) {
				redundant[i] = true
			}
		}
	}

	out := make(solution.SolutionSet, 0, n)
	for i, sol := range set {
		if !redundant[i] {
			out = append(out, sol)
		}
	}

	return out
}

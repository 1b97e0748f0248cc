// Package bufferinsert implements the van Ginneken-style dynamic-
// programming buffer insertion engine: a bottom-up traversal of an
// rctree.Store that, for every candidate position along every edge and
// every branch, enumerates Pareto-optimal (capacity, RAT) solutions,
// merges them where edges join, prunes dominated solutions, and extracts
// the single best chain of buffer placements at the root.
//
// Complexity:
//
//   - Time: for a tree with n nodes and candidate spacing step, each edge
//     contributes O(length/step) propagation steps, each of which can at
//     worst double the live solution set before pruning; redundancy
//     elimination is O(k^2) in the live set size k at each step.
//   - Space: O(n) for the traversal memo, plus the live solution sets,
//     which in practice stay small because of aggressive pruning.
//
// Traversal uses an explicit work stack rather than recursion (spec.md
// §9): the RC tree may be arbitrarily deep, and an iterative post-order
// DFS with a visited memo keeps stack depth independent of tree depth.
//
// Two source quirks are preserved verbatim rather than "fixed", because
// spec.md pins them as observable, test-checked behavior:
//
//   - At a branch with three or more children, each child is paired with
//     the flat concatenation of all earlier children's raw solutions, not
//     with the progressively merged-and-pruned result. This is
//     non-associative.
//   - Pareto domination is non-strict in both directions, so two
//     candidates that are exactly tied on (RAT, capacity) mutually
//     dominate each other and both get dropped during pruning.
package bufferinsert

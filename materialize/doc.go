// Package materialize rewrites an rctree.Store in place so that every
// buffer placement chosen by bufferinsert.Run becomes a real Buffer node
// splitting the edge it sits on, per spec.md §4.F.
//
// Candidates are grouped by the edge they were placed on, sorted by their
// distance from the edge's start point, and each edge is replaced by a
// chain of sub-edges joined through newly inserted Buffer nodes. Grouping
// and the boundary-inclusive segment split are grounded on
// original_source/src/SolutionInsertion.cpp's insertSolution and
// splitPoints.
package materialize

// Package bufferinsert is the root of a module implementing van
// Ginneken-style dynamic-programming buffer insertion over RC interconnect
// trees.
//
// Packages are organized by concern:
//
//	geom/          — Manhattan point geometry and edge-candidate splitting
//	rctree/        — the arena-backed RC tree store
//	techconfig/    — technology and buffer module value types
//	solution/      — Candidate/Solution/SolutionSet Pareto types and their
//	                 wire-extend and buffer-insert transforms
//	bufferinsert/  — the DP engine: merge, prune, propagate, and the
//	                 bottom-up traversal that drives them
//	materialize/   — splices chosen buffer placements into the tree
//	rcio/          — JSON import/export of configuration and trees
//	rcdot/         — optional Graphviz dump of a tree
//	internal/rlog  — leveled logging used by the driver and CLI
//	internal/driver — composes the above into one run
//	cmd/vginneken  — the command-line entry point
package bufferinsert

// Package solution defines the Candidate/Solution/SolutionSet types the
// buffer insertion engine enumerates, and the two primitive operations
// that grow a Solution chain: extending it along a wire, and splicing in
// a repeater buffer at its current frontier.
//
// A Solution is a chain of Candidates from a sink (or a merged branch)
// up toward the root; its last element is the "frontier" — the position
// and electrical state the engine is currently extending. Every operation
// here returns a new Solution rather than mutating its argument in place,
// so that callers can keep an un-buffered copy and a buffered copy of the
// same frontier alive side by side without one clobbering the other.
package solution

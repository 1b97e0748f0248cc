// Package rctree implements the RC interconnect tree store the buffer
// insertion engine operates on: two dense arenas of nodes and edges,
// addressed by small integer ids, with free-list reuse on removal.
//
// Nodes and edges are never referenced by pointer across package
// boundaries — only by NodeID / EdgeID, which stay valid for the lifetime
// of the entry and are recycled (not merely invalidated) once the entry is
// removed and a later AddNode/AddEdge call needs a slot. A removed id is a
// tombstone: any lookup against it fails with ErrNodeNotFound /
// ErrEdgeNotFound until the slot is reassigned.
//
// Parent/child links are maintained as an invariant by AddEdge/RemoveEdge/
// RemoveNode: for every edge e from u to v, v's parent is e and e is one
// of u's children, in the order it was added. There is exactly one root,
// set explicitly via SetRoot once the tree has been fully assembled.
package rctree

package rctree

import "sort"

// nodeEntry is one slot of the node arena. alive is false for a
// tombstoned (removed, not-yet-reused) slot.
type nodeEntry struct {
	alive    bool
	node     Node
	parent   EdgeID
	children []EdgeID
}

// edgeEntry is one slot of the edge arena.
type edgeEntry struct {
	alive bool
	first NodeID
	last  NodeID
	edge  Edge
}

// Store is the arena-backed RC tree: two dense integer-indexed arenas with
// free-list reuse, plus a single designated root. The zero value is not
// usable; construct with NewStore.
type Store struct {
	nodes       []nodeEntry
	freeNodeIDs []NodeID

	edges       []edgeEntry
	freeEdgeIDs []EdgeID

	root    NodeID
	hasRoot bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// AddNode inserts n into the node arena, reusing a tombstoned slot (the
// largest free id) if one is available, and returns its NodeID.
func (s *Store) AddNode(n Node) NodeID {
	if len(s.freeNodeIDs) > 0 {
		id := s.popFreeNodeID()
		s.nodes[id] = nodeEntry{alive: true, node: n, parent: InvalidEdgeID}
		return id
	}
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, nodeEntry{alive: true, node: n, parent: InvalidEdgeID})
	return id
}

// AddEdge inserts an edge from parent to child, linking parent.Children
// and child's parent pointer. It fails with ErrNodeNotFound if either
// endpoint is invalid, or ErrDuplicateEdge if parent already has an
// outgoing edge to child.
func (s *Store) AddEdge(parent, child NodeID, e Edge) (EdgeID, error) {
	if !s.nodeAlive(parent) || !s.nodeAlive(child) {
		return InvalidEdgeID, ErrNodeNotFound
	}
	for _, existing := range s.nodes[parent].children {
		first, last := s.EdgeEndpoints(existing)
		if first == parent && last == child {
			return InvalidEdgeID, ErrDuplicateEdge
		}
	}

	var id EdgeID
	if len(s.freeEdgeIDs) > 0 {
		id = s.popFreeEdgeID()
		s.edges[id] = edgeEntry{alive: true, first: parent, last: child, edge: e}
	} else {
		id = EdgeID(len(s.edges))
		s.edges = append(s.edges, edgeEntry{alive: true, first: parent, last: child, edge: e})
	}

	s.nodes[parent].children = append(s.nodes[parent].children, id)
	s.nodes[child].parent = id

	return id, nil
}

// RemoveNode removes id along with its parent edge (if any) and every
// outgoing child edge, cascading those removals through RemoveEdge.
func (s *Store) RemoveNode(id NodeID) error {
	if !s.nodeAlive(id) {
		return ErrNodeNotFound
	}
	entry := &s.nodes[id]

	if entry.parent != InvalidEdgeID {
		if err := s.RemoveEdge(entry.parent); err != nil {
			return err
		}
	}
	// Copy: RemoveEdge mutates entry.children as it unlinks each one.
	children := append([]EdgeID(nil), entry.children...)
	for _, eid := range children {
		if err := s.RemoveEdge(eid); err != nil {
			return err
		}
	}

	s.nodes[id] = nodeEntry{}
	s.pushFreeNodeID(id)

	return nil
}

// RemoveEdge removes id, unlinking it from its parent's children list and
// clearing its child's parent pointer.
func (s *Store) RemoveEdge(id EdgeID) error {
	if !s.edgeAlive(id) {
		return ErrEdgeNotFound
	}
	entry := s.edges[id]

	parent := &s.nodes[entry.first]
	for i, eid := range parent.children {
		if eid == id {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	s.nodes[entry.last].parent = InvalidEdgeID

	s.edges[id] = edgeEntry{}
	s.pushFreeEdgeID(id)

	return nil
}

// Node returns a copy of the node addressed by id.
func (s *Store) Node(id NodeID) (Node, error) {
	if !s.nodeAlive(id) {
		return Node{}, ErrNodeNotFound
	}
	return s.nodes[id].node, nil
}

// Edge returns a copy of the edge addressed by id.
func (s *Store) Edge(id EdgeID) (Edge, error) {
	if !s.edgeAlive(id) {
		return Edge{}, ErrEdgeNotFound
	}
	return s.edges[id].edge, nil
}

// Parent returns the parent edge id of id, or InvalidEdgeID if id is the
// root or otherwise has no incoming edge.
func (s *Store) Parent(id NodeID) (EdgeID, error) {
	if !s.nodeAlive(id) {
		return InvalidEdgeID, ErrNodeNotFound
	}
	return s.nodes[id].parent, nil
}

// Children returns id's outgoing edge ids in insertion order. The returned
// slice is a copy; mutating it does not affect the store.
func (s *Store) Children(id NodeID) ([]EdgeID, error) {
	if !s.nodeAlive(id) {
		return nil, ErrNodeNotFound
	}
	return append([]EdgeID(nil), s.nodes[id].children...), nil
}

// EdgeEndpoints returns the (first, last) node ids of edge id, i.e. the
// parent and the child it connects.
func (s *Store) EdgeEndpoints(id EdgeID) (first, last NodeID) {
	if !s.edgeAlive(id) {
		return InvalidNodeID, InvalidNodeID
	}
	e := s.edges[id]
	return e.first, e.last
}

// SetRoot designates id as the tree's root.
func (s *Store) SetRoot(id NodeID) error {
	if !s.nodeAlive(id) {
		return ErrNodeNotFound
	}
	s.root = id
	s.hasRoot = true
	return nil
}

// Root returns the designated root, or ErrNoRoot if SetRoot was never
// called.
func (s *Store) Root() (NodeID, error) {
	if !s.hasRoot {
		return InvalidNodeID, ErrNoRoot
	}
	return s.root, nil
}

// NodeIDs returns every live node id in arena order.
func (s *Store) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(s.nodes))
	for i, e := range s.nodes {
		if e.alive {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// EdgeIDs returns every live edge id in arena order.
func (s *Store) EdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(s.edges))
	for i, e := range s.edges {
		if e.alive {
			ids = append(ids, EdgeID(i))
		}
	}
	return ids
}

// NodeCount returns the number of live nodes.
func (s *Store) NodeCount() int {
	n := 0
	for _, e := range s.nodes {
		if e.alive {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of live edges.
func (s *Store) EdgeCount() int {
	n := 0
	for _, e := range s.edges {
		if e.alive {
			n++
		}
	}
	return n
}

func (s *Store) nodeAlive(id NodeID) bool {
	return id != InvalidNodeID && int(id) < len(s.nodes) && s.nodes[id].alive
}

func (s *Store) edgeAlive(id EdgeID) bool {
	return id != InvalidEdgeID && int(id) < len(s.edges) && s.edges[id].alive
}

// pushFreeNodeID / popFreeNodeID and their edge counterparts keep the free
// list sorted ascending and always reuse the largest free id first, so
// that id assignment stays deterministic across runs regardless of the
// order nodes happen to be removed in.

func (s *Store) pushFreeNodeID(id NodeID) {
	s.freeNodeIDs = append(s.freeNodeIDs, id)
	sort.Slice(s.freeNodeIDs, func(i, j int) bool { return s.freeNodeIDs[i] < s.freeNodeIDs[j] })
}

func (s *Store) popFreeNodeID() NodeID {
	n := len(s.freeNodeIDs)
	id := s.freeNodeIDs[n-1]
	s.freeNodeIDs = s.freeNodeIDs[:n-1]
	return id
}

func (s *Store) pushFreeEdgeID(id EdgeID) {
	s.freeEdgeIDs = append(s.freeEdgeIDs, id)
	sort.Slice(s.freeEdgeIDs, func(i, j int) bool { return s.freeEdgeIDs[i] < s.freeEdgeIDs[j] })
}

func (s *Store) popFreeEdgeID() EdgeID {
	n := len(s.freeEdgeIDs)
	id := s.freeEdgeIDs[n-1]
	s.freeEdgeIDs = s.freeEdgeIDs[:n-1]
	return id
}

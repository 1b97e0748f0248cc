package rctree

import (
	"errors"

	"github.com/vginneken/bufferinsert/geom"
)

// Sentinel errors returned by the rctree store.
var (
	// ErrNodeNotFound indicates an operation referenced a node id that is
	// out of range or has been removed (a tombstoned id).
	ErrNodeNotFound = errors.New("rctree: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id that is
	// out of range or has been removed (a tombstoned id).
	ErrEdgeNotFound = errors.New("rctree: edge not found")

	// ErrDuplicateEdge indicates that the parent already has an outgoing
	// edge with the same ordered (parent, child) endpoints.
	ErrDuplicateEdge = errors.New("rctree: duplicate edge between endpoints")

	// ErrNoRoot indicates Root was called before SetRoot established one.
	ErrNoRoot = errors.New("rctree: no root set")
)

// NodeID addresses a node entry in a Store's node arena.
type NodeID uint32

// EdgeID addresses an edge entry in a Store's edge arena.
type EdgeID uint32

// InvalidNodeID is the sentinel returned wherever no NodeID applies.
const InvalidNodeID NodeID = ^NodeID(0)

// InvalidEdgeID is the sentinel returned wherever no EdgeID applies —
// notably on Candidates that represent a branch or sink itself rather than
// a position along a specific edge.
const InvalidEdgeID EdgeID = ^EdgeID(0)

// NodeKind tags the three flavors of RC tree node. There is no
// subclassing: the engine only branches on Kind at sink (Point) nodes.
type NodeKind int

const (
	// Steiner marks an internal branching point with no electrical
	// parameters of its own.
	Steiner NodeKind = iota

	// Point marks a sink leaf: Capacity and RAT come from input.
	Point

	// Buffer marks the driver (the tree root on input) or a repeater
	// spliced in by the materializer.
	Buffer
)

// String renders the node kind the way it appears in the tree JSON "type"
// field's long form, for logging and error messages.
func (k NodeKind) String() string {
	switch k {
	case Steiner:
		return "Steiner"
	case Point:
		return "Point"
	case Buffer:
		return "Buffer"
	default:
		return "Unknown"
	}
}

// Node is one vertex of the RC tree. Capacity and RAT are meaningful only
// for Point (sink) nodes; the engine never reads them for Steiner or
// Buffer nodes.
type Node struct {
	Kind     NodeKind
	Name     string
	P        geom.Point
	Capacity float32
	RAT      float32
}

// Edge is an axis-aligned Manhattan polyline: Segments has at least two
// points, each consecutive pair sharing exactly one coordinate. Segments[0]
// coincides with the parent node's position; the last, with the child's.
type Edge struct {
	Segments []geom.Point
}

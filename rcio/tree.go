package rcio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
)

// ErrMissingRoot indicates a tree file named zero "b" (Buffer/driver)
// nodes; the unique "b" on input is required to be the root.
var ErrMissingRoot = errors.New("rcio: tree file names no root (\"b\") node")

// ErrMultipleRoots indicates a tree file named more than one "b" node.
var ErrMultipleRoots = errors.New("rcio: tree file names more than one root (\"b\") node")

// ErrUnknownNodeType indicates a node's "type" field was not one of
// "s", "t", or "b".
var ErrUnknownNodeType = errors.New("rcio: unknown node type")

// ErrUnknownNodeReference indicates an edge's vertices referenced a node
// id absent from the file's node list.
var ErrUnknownNodeReference = errors.New("rcio: edge references unknown node id")

// ErrMissingSinkFields indicates a sink ("t") node omitted its required
// capacitance or rat field.
var ErrMissingSinkFields = errors.New("rcio: sink node missing capacitance or rat")

type nodeJSON struct {
	ID           int      `json:"id"`
	X            int      `json:"x"`
	Y            int      `json:"y"`
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Capacitance  *float32 `json:"capacitance,omitempty"`
	RAT          *float32 `json:"rat,omitempty"`
}

type edgeJSON struct {
	ID       *int      `json:"id,omitempty"`
	Vertices [2]int    `json:"vertices"`
	Segments [][2]int  `json:"segments"`
}

type treeJSON struct {
	Node []nodeJSON `json:"node"`
	Edge []edgeJSON `json:"edge"`
}

// Ids records the original file-level node and edge identifiers a tree was
// read with, keyed by the arena ids rcio.ReadTree assigned them to. A
// Store's own NodeID/EdgeID values are dense arena positions chosen for
// internal bookkeeping, not the ids a file's author wrote down — WriteTree
// needs this side table to hand a node or edge back its original id
// rather than renumbering the whole tree by arena position.
type Ids struct {
	Node map[rctree.NodeID]int
	Edge map[rctree.EdgeID]int
}

// ReadTree decodes a tree file into a fresh rctree.Store, designating the
// file's unique "b" node as the root, and returns the Ids needed to write
// the same file-level identifiers back out again.
func ReadTree(r io.Reader) (*rctree.Store, Ids, error) {
	var doc treeJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Ids{}, fmt.Errorf("rcio: decoding tree file: %w", err)
	}

	store := rctree.NewStore()
	idMap := make(map[int]rctree.NodeID, len(doc.Node))
	ids := Ids{
		Node: make(map[rctree.NodeID]int, len(doc.Node)),
		Edge: make(map[rctree.EdgeID]int, len(doc.Edge)),
	}
	var rootJSONID int
	rootCount := 0

	for _, n := range doc.Node {
		kind, err := nodeKindFromJSON(n.Type)
		if err != nil {
			return nil, Ids{}, err
		}

		node := rctree.Node{Kind: kind, Name: n.Name, P: geom.Point{X: n.X, Y: n.Y}}
		if kind == rctree.Point {
			if n.Capacitance == nil || n.RAT == nil {
				return nil, Ids{}, fmt.Errorf("%w: node %d", ErrMissingSinkFields, n.ID)
			}
			node.Capacity = *n.Capacitance
			node.RAT = *n.RAT
		} else if n.Capacitance != nil && n.RAT != nil {
			node.Capacity = *n.Capacitance
			node.RAT = *n.RAT
		}

		id := store.AddNode(node)
		idMap[n.ID] = id
		ids.Node[id] = n.ID

		if kind == rctree.Buffer {
			rootCount++
			rootJSONID = n.ID
		}
	}

	switch rootCount {
	case 0:
		return nil, Ids{}, ErrMissingRoot
	case 1:
	default:
		return nil, Ids{}, ErrMultipleRoots
	}
	if err := store.SetRoot(idMap[rootJSONID]); err != nil {
		return nil, Ids{}, err
	}

	for fileIndex, e := range doc.Edge {
		first, ok1 := idMap[e.Vertices[0]]
		last, ok2 := idMap[e.Vertices[1]]
		if !ok1 || !ok2 {
			return nil, Ids{}, ErrUnknownNodeReference
		}

		segments := make([]geom.Point, len(e.Segments))
		for i, pt := range e.Segments {
			segments[i] = geom.Point{X: pt[0], Y: pt[1]}
		}

		eid, err := store.AddEdge(first, last, rctree.Edge{Segments: segments})
		if err != nil {
			return nil, Ids{}, err
		}

		jsonID := fileIndex
		if e.ID != nil {
			jsonID = *e.ID
		}
		ids.Edge[eid] = jsonID
	}

	return store, ids, nil
}

func nodeKindFromJSON(t string) (rctree.NodeKind, error) {
	switch t {
	case "s":
		return rctree.Steiner, nil
	case "t":
		return rctree.Point, nil
	case "b":
		return rctree.Buffer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownNodeType, t)
	}
}

func nodeKindToJSON(k rctree.NodeKind) string {
	switch k {
	case rctree.Steiner:
		return "s"
	case rctree.Point:
		return "t"
	case rctree.Buffer:
		return "b"
	default:
		return ""
	}
}

// WriteTree encodes store's current tree, walking every live node and
// edge in arena order. Electrical fields are emitted for sink nodes
// always, and for buffer nodes only when set (so a driver "b" node that
// never received a computed load/RAT round-trips without gaining
// spurious zero fields). ids supplies the original file-level id for
// every node and edge ReadTree produced this Store from; any node or
// edge absent from ids (new buffer nodes and split sub-edges created by
// materialization) is assigned the next id past the highest one ids
// already uses, so a round trip with no materialization reproduces the
// input's ids exactly instead of renumbering everything by arena
// position.
func WriteTree(w io.Writer, store *rctree.Store, ids Ids) error {
	var doc treeJSON

	nextNodeID := highestID(ids.Node) + 1
	nodeJSONIDs := make(map[rctree.NodeID]int)
	for _, id := range store.NodeIDs() {
		node, err := store.Node(id)
		if err != nil {
			return err
		}

		jsonID, ok := ids.Node[id]
		if !ok {
			jsonID = nextNodeID
			nextNodeID++
		}
		nodeJSONIDs[id] = jsonID

		nj := nodeJSON{ID: jsonID, X: node.P.X, Y: node.P.Y, Type: nodeKindToJSON(node.Kind), Name: node.Name}
		if node.Kind == rctree.Point {
			cap, rat := node.Capacity, node.RAT
			nj.Capacitance, nj.RAT = &cap, &rat
		} else if node.Kind == rctree.Buffer && (node.Capacity != 0 || node.RAT != 0) {
			cap, rat := node.Capacity, node.RAT
			nj.Capacitance, nj.RAT = &cap, &rat
		}
		doc.Node = append(doc.Node, nj)
	}

	nextEdgeID := highestID(ids.Edge) + 1
	for _, id := range store.EdgeIDs() {
		edge, err := store.Edge(id)
		if err != nil {
			return err
		}

		jsonID, ok := ids.Edge[id]
		if !ok {
			jsonID = nextEdgeID
			nextEdgeID++
		}

		first, last := store.EdgeEndpoints(id)
		segments := make([][2]int, len(edge.Segments))
		for i, p := range edge.Segments {
			segments[i] = [2]int{p.X, p.Y}
		}

		eid := jsonID
		doc.Edge = append(doc.Edge, edgeJSON{
			ID:       &eid,
			Vertices: [2]int{nodeJSONIDs[first], nodeJSONIDs[last]},
			Segments: segments,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// highestID returns the largest value in m, or -1 if m is empty, so a
// caller can derive "one past the highest id already used" regardless of
// map iteration order.
func highestID[K comparable](m map[K]int) int {
	highest := -1
	for _, v := range m {
		if v > highest {
			highest = v
		}
	}
	return highest
}

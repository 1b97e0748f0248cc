package rcdot

import (
	"fmt"
	"io"

	"github.com/vginneken/bufferinsert/rctree"
)

// Write renders store as a directed Graphviz graph: one node per RC tree
// node, labeled with its kind and position, and one edge per tree edge,
// labeled with its segment count.
func Write(w io.Writer, store *rctree.Store) error {
	if _, err := fmt.Fprintln(w, "digraph rctree {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  node [shape=box];"); err != nil {
		return err
	}

	for _, id := range store.NodeIDs() {
		node, err := store.Node(id)
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%s\\n%s (%d,%d)", nodeDisplayName(node), node.Kind, node.P.X, node.P.Y)
		if node.Kind == rctree.Point || node.Kind == rctree.Buffer {
			label += fmt.Sprintf("\\ncap=%.3f rat=%.3f", node.Capacity, node.RAT)
		}
		if _, err := fmt.Fprintf(w, "  %q [label=%q];\n", nodeDotID(id), label); err != nil {
			return err
		}
	}

	for _, id := range store.EdgeIDs() {
		edge, err := store.Edge(id)
		if err != nil {
			return err
		}
		first, last := store.EdgeEndpoints(id)
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n",
			nodeDotID(first), nodeDotID(last), fmt.Sprintf("%d pts", len(edge.Segments))); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

func nodeDotID(id rctree.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func nodeDisplayName(n rctree.Node) string {
	if n.Name == "" {
		return "(unnamed)"
	}
	return n.Name
}

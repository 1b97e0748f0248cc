package materialize

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
	"github.com/vginneken/bufferinsert/techconfig"
)

// ErrSegmentMismatch indicates the split step produced a different number
// of sub-polylines than there are sub-edges to fill, which should never
// happen for a validated tree and non-colliding buffer placements.
var ErrSegmentMismatch = errors.New("materialize: segment count does not match sub-edge count")

// Materialize groups chosen's buffer-bearing candidates by the edge they
// were placed on and rewrites store so each such edge becomes a chain of
// sub-edges through newly created Buffer nodes, one per candidate.
// Candidates without HasBuffer are ignored: they mark positions the
// engine considered but did not choose to repeater.
func Materialize(store *rctree.Store, chosen solution.Solution, buf techconfig.Module) error {
	grouped := make(map[rctree.EdgeID][]solution.Candidate)
	var order []rctree.EdgeID
	for _, c := range chosen {
		if !c.HasBuffer {
			continue
		}
		if _, ok := grouped[c.EdgeID]; !ok {
			order = append(order, c.EdgeID)
		}
		grouped[c.EdgeID] = append(grouped[c.EdgeID], c)
	}

	for _, eid := range order {
		if err := materializeEdge(store, eid, grouped[eid], buf); err != nil {
			return fmt.Errorf("materialize: edge %d: %w", eid, err)
		}
	}
	return nil
}

// materializeEdge splits a single edge at every one of cands' positions.
func materializeEdge(store *rctree.Store, eid rctree.EdgeID, cands []solution.Candidate, buf techconfig.Module) error {
	edge, err := store.Edge(eid)
	if err != nil {
		return err
	}
	first, last := store.EdgeEndpoints(eid)

	start := edge.Segments[0]
	sorted := append([]solution.Candidate(nil), cands...)
	sort.Slice(sorted, func(i, j int) bool {
		return geom.Distance(start, sorted[i].P) < geom.Distance(start, sorted[j].P)
	})

	segments := splitPoints(edge.Segments, sorted)

	nodes := make([]rctree.NodeID, 0, len(sorted)+2)
	nodes = append(nodes, first)
	for _, c := range sorted {
		nid := store.AddNode(rctree.Node{
			Kind:     rctree.Buffer,
			Name:     buf.Name,
			P:        c.P,
			Capacity: c.Capacity,
			RAT:      c.RAT,
		})
		nodes = append(nodes, nid)
	}
	nodes = append(nodes, last)

	if len(segments) != len(nodes)-1 {
		return ErrSegmentMismatch
	}

	if err := store.RemoveEdge(eid); err != nil {
		return err
	}
	for i := 0; i < len(nodes)-1; i++ {
		if _, err := store.AddEdge(nodes[i], nodes[i+1], rctree.Edge{Segments: segments[i]}); err != nil {
			return err
		}
	}
	return nil
}

// pointRecord is one point along an edge, either an original vertex or a
// chosen buffer position, keyed by its distance from the edge's start.
type pointRecord struct {
	isBuffer bool
	distance int
	point    geom.Point
}

// splitPoints merges polyline's own vertices with cands' positions into a
// single distance-ordered sequence, deduplicated by distance from the
// edge's start (a buffer position always wins a tie over an original
// vertex, mirroring the original ordered-set insertion policy), then cuts
// that sequence into sub-polylines at every buffer position. Each buffer
// position is shared by the two sub-polylines it joins, so cands produces
// len(cands)+1 groups whenever no two candidates tie in distance.
func splitPoints(polyline []geom.Point, cands []solution.Candidate) [][]geom.Point {
	start := polyline[0]

	byDistance := make(map[int]pointRecord, len(polyline)+len(cands))
	order := make([]int, 0, len(polyline)+len(cands))

	add := func(r pointRecord) {
		if _, exists := byDistance[r.distance]; exists {
			return
		}
		byDistance[r.distance] = r
		order = append(order, r.distance)
	}

	for _, c := range cands {
		add(pointRecord{isBuffer: true, distance: geom.Distance(start, c.P), point: c.P})
	}
	for _, p := range polyline {
		add(pointRecord{isBuffer: false, distance: geom.Distance(start, p), point: p})
	}

	sort.Ints(order)

	var groups [][]geom.Point
	current := make([]geom.Point, 0, len(order))
	for _, d := range order {
		rec := byDistance[d]
		current = append(current, rec.point)
		if rec.isBuffer {
			groups = append(groups, current)
			current = []geom.Point{rec.point}
		}
	}
	groups = append(groups, current)
	return groups
}

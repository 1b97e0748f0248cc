package bufferinsert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vginneken/bufferinsert/bufferinsert"
	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
	"github.com/vginneken/bufferinsert/techconfig"
)

func testTechnology() techconfig.Technology {
	return techconfig.Technology{UnitR: 0.01, UnitC: 0.01}
}

func testBuffer() techconfig.Module {
	return techconfig.Module{Name: "BUF", R: 1, C: 1, K: 5}
}

// buildChain constructs a single-wire tree: root -> sink, with a straight
// edge of the given length along the X axis.
func buildChain(t *testing.T, length int, sinkRAT float32) *rctree.Store {
	t.Helper()
	store := rctree.NewStore()

	root := store.AddNode(rctree.Node{Kind: rctree.Steiner, P: geom.Point{X: 0, Y: 0}})
	require.NoError(t, store.SetRoot(root))

	sink := store.AddNode(rctree.Node{
		Kind:     rctree.Point,
		Name:     "sink",
		P:        geom.Point{X: length, Y: 0},
		Capacity: 1,
		RAT:      sinkRAT,
	})

	_, err := store.AddEdge(root, sink, rctree.Edge{
		Segments: []geom.Point{{X: 0, Y: 0}, {X: length, Y: 0}},
	})
	require.NoError(t, err)

	return store
}

// TestRun_SingleWireInsertsBuffer pins scenario S1: a sufficiently long
// wire forces at least one buffer to improve the root's best RAT. With
// unit R = unit C = 1, a 10-unit wire into a 1.0 load costs 60 without a
// buffer, leaving a RAT of 40 before the driver charge.
func TestRun_SingleWireInsertsBuffer(t *testing.T) {
	store := buildChain(t, 10, 100)
	cfg := techconfig.NewConfig(
		techconfig.Technology{UnitR: 1, UnitC: 1},
		techconfig.Module{Name: "BUF", R: 0.1, C: 0.5, K: 0.2},
	)

	best, err := bufferinsert.Run(store, cfg, 1)
	require.NoError(t, err)
	require.NotEmpty(t, best)

	bufferCount := 0
	for _, c := range best {
		if c.HasBuffer {
			bufferCount++
		}
	}
	require.GreaterOrEqual(t, bufferCount, 1)
	require.Greater(t, best.Frontier().RAT, float32(40))
}

// TestRun_NoOpWhenWireIsShort pins scenario S6: a short wire with a
// generous sink RAT never needs a repeater, so the chosen chain carries
// zero buffers.
func TestRun_NoOpWhenWireIsShort(t *testing.T) {
	store := buildChain(t, 1, 1000)
	cfg := techconfig.NewConfig(testTechnology(), testBuffer())

	best, err := bufferinsert.Run(store, cfg, 10)
	require.NoError(t, err)

	for _, c := range best {
		require.False(t, c.HasBuffer)
	}
}

// TestRedundancyElimination_DropsDominated pins scenario S3: of two
// hand-crafted candidates, the one with both worse RAT and worse capacity
// is pruned.
func TestRedundancyElimination_DropsDominated(t *testing.T) {
	a := solution.Solution{{P: geom.Point{X: 0, Y: 0}, Capacity: 2, RAT: 10}}
	b := solution.Solution{{P: geom.Point{X: 0, Y: 0}, Capacity: 3, RAT: 8}}

	out := bufferinsert.RedundancyElimination(solution.SolutionSet{a, b})

	require.Len(t, out, 1)
	require.Equal(t, float32(10), out[0].Frontier().RAT)
	require.Equal(t, float32(2), out[0].Frontier().Capacity)
}

// TestRedundancyElimination_KeepsNonDominated verifies that two mutually
// non-dominated frontiers both survive pruning.
func TestRedundancyElimination_KeepsNonDominated(t *testing.T) {
	a := solution.Solution{{P: geom.Point{X: 0, Y: 0}, Capacity: 2, RAT: 10}}
	b := solution.Solution{{P: geom.Point{X: 0, Y: 0}, Capacity: 1, RAT: 8}}

	out := bufferinsert.RedundancyElimination(solution.SolutionSet{a, b})

	require.Len(t, out, 2)
}

// TestRedundancyElimination_ExactTieDropsBoth matches solution.Dominates'
// mutual-elimination rule on exact ties.
func TestRedundancyElimination_ExactTieDropsBoth(t *testing.T) {
	a := solution.Solution{{P: geom.Point{X: 0, Y: 0}, Capacity: 2, RAT: 10}}
	b := solution.Solution{{P: geom.Point{X: 0, Y: 0}, Capacity: 2, RAT: 10}}

	out := bufferinsert.RedundancyElimination(solution.SolutionSet{a, b})

	require.Empty(t, out)
}

// TestRedundancyElimination_ResultIsNonDominated is invariant #3: after
// pruning an arbitrary set, no surviving frontier dominates another.
func TestRedundancyElimination_ResultIsNonDominated(t *testing.T) {
	set := solution.SolutionSet{
		{{P: geom.Point{X: 0, Y: 0}, Capacity: 1, RAT: 20}},
		{{P: geom.Point{X: 0, Y: 0}, Capacity: 2, RAT: 15}},
		{{P: geom.Point{X: 0, Y: 0}, Capacity: 3, RAT: 5}},
		{{P: geom.Point{X: 0, Y: 0}, Capacity: 5, RAT: 1}},
	}

	out := bufferinsert.RedundancyElimination(set)

	for i := range out {
		for j := range out {
			if i == j {
				continue
			}
			require.False(t, solution.Dominates(out[i].Frontier(), out[j].Frontier()),
				"solution %d dominates solution %d after pruning", i, j)
		}
	}
}

// TestMergeChildren_SinkIsLeaf pins the sink base case of spec.md §4.E.2:
// a Point node with no children returns a single-candidate solution
// seeded from its own fields.
func TestMergeChildren_SinkIsLeaf(t *testing.T) {
	node := rctree.Node{Kind: rctree.Point, P: geom.Point{X: 3, Y: 4}, Capacity: 2, RAT: 50}

	out, err := bufferinsert.MergeChildren(nil, node)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0], 1)
	require.Equal(t, float32(2), out[0][0].Capacity)
	require.Equal(t, float32(50), out[0][0].RAT)
	require.Equal(t, rctree.InvalidEdgeID, out[0][0].EdgeID)
}

func TestMergeChildren_SinkWithChildrenIsError(t *testing.T) {
	node := rctree.Node{Kind: rctree.Point}
	child := solution.SolutionSet{{{Capacity: 1, RAT: 1}}}

	_, err := bufferinsert.MergeChildren([]solution.SolutionSet{child}, node)
	require.ErrorIs(t, err, bufferinsert.ErrSinkHasChildren)
}

func TestMergeChildren_NonSinkLeafIsError(t *testing.T) {
	node := rctree.Node{Kind: rctree.Steiner}

	_, err := bufferinsert.MergeChildren(nil, node)
	require.ErrorIs(t, err, bufferinsert.ErrNonSinkLeaf)
}

// TestMergeChildren_TwoChildrenCartesianProduct pins scenario S2: merging
// two children at a Steiner node produces |L|*|R| combined solutions, each
// a concatenation of both chains capped by a candidate at the branch
// position with summed capacity and min RAT.
func TestMergeChildren_TwoChildrenCartesianProduct(t *testing.T) {
	node := rctree.Node{Kind: rctree.Steiner, P: geom.Point{X: 0, Y: 0}}
	left := solution.SolutionSet{
		{{Capacity: 1, RAT: 30}},
		{{Capacity: 2, RAT: 20}},
	}
	right := solution.SolutionSet{
		{{Capacity: 3, RAT: 25}},
	}

	out, err := bufferinsert.MergeChildren([]solution.SolutionSet{left, right}, node)
	require.NoError(t, err)
	require.Len(t, out, len(left)*len(right))

	for _, sol := range out {
		require.Len(t, sol, 3)
	}

	// left[0] (cap 1, rat 30) merged with right[0] (cap 3, rat 25):
	// capacity 4, RAT min(30,25)=25.
	require.Equal(t, float32(4), out[0].Frontier().Capacity)
	require.Equal(t, float32(25), out[0].Frontier().RAT)

	// left[1] (cap 2, rat 20) merged with right[0] (cap 3, rat 25):
	// capacity 5, RAT min(20,25)=20.
	require.Equal(t, float32(5), out[1].Frontier().Capacity)
	require.Equal(t, float32(20), out[1].Frontier().RAT)
}

// TestMergeChildren_OneChildPassesThrough verifies the single-child case
// returns the child's set unchanged rather than merging against an empty
// sibling.
func TestMergeChildren_OneChildPassesThrough(t *testing.T) {
	node := rctree.Node{Kind: rctree.Steiner, P: geom.Point{X: 0, Y: 0}}
	child := solution.SolutionSet{{{Capacity: 1, RAT: 30}}}

	out, err := bufferinsert.MergeChildren([]solution.SolutionSet{child}, node)
	require.NoError(t, err)
	require.Equal(t, child, out)
}

// buildStar constructs a root Steiner node with n straight-line sink
// children, for exercising the N-ary, non-associative merge branch.
func buildStar(t *testing.T, n int) *rctree.Store {
	t.Helper()
	store := rctree.NewStore()

	root := store.AddNode(rctree.Node{Kind: rctree.Steiner, P: geom.Point{X: 0, Y: 0}})
	require.NoError(t, store.SetRoot(root))

	for i := 0; i < n; i++ {
		sink := store.AddNode(rctree.Node{
			Kind:     rctree.Point,
			Name:     "sink",
			P:        geom.Point{X: 10, Y: i},
			Capacity: 1,
			RAT:      500,
		})
		_, err := store.AddEdge(root, sink, rctree.Edge{
			Segments: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: i}},
		})
		require.NoError(t, err)
	}

	return store
}

// TestRun_BranchWithManyChildrenSucceeds exercises the three-or-more
// children merge branch end to end: the engine must still produce a
// single best chain at the root without error.
func TestRun_BranchWithManyChildrenSucceeds(t *testing.T) {
	store := buildStar(t, 4)
	cfg := techconfig.NewConfig(testTechnology(), testBuffer())

	best, err := bufferinsert.Run(store, cfg, 5)
	require.NoError(t, err)
	require.NotEmpty(t, best)
}

// TestRun_RootRATImprovesWithBuffering is invariant #7: a long edge's
// best achievable root RAT with buffering enabled is never worse than
// treating it as a plain wire would be, since the engine is always free
// to not insert a buffer when it does not help. Both are charged for the
// driver at the root.
func TestRun_RootRATImprovesWithBuffering(t *testing.T) {
	tech := testTechnology()
	buf := testBuffer()
	cfg := techconfig.NewConfig(tech, buf)

	store := buildChain(t, 500, 50)
	best, err := bufferinsert.Run(store, cfg, 10)
	require.NoError(t, err)

	wireOnly := solution.Solution{{P: geom.Point{X: 500, Y: 0}, Capacity: 1, RAT: 50}}
	length := 500
	l := float32(length)
	wireDelay := tech.UnitR*tech.UnitC*(l*l)/2 + tech.UnitR*l*wireOnly.Frontier().Capacity
	wireOnlyCap := wireOnly.Frontier().Capacity + tech.UnitC*l
	driverDelay := buf.K + buf.R*wireOnlyCap
	wireOnlyRAT := wireOnly.Frontier().RAT - wireDelay - driverDelay

	require.GreaterOrEqual(t, best.Frontier().RAT, wireOnlyRAT)
}

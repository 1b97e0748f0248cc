package solution_test

import (
	"testing"

	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/solution"
	"github.com/vginneken/bufferinsert/techconfig"
)

func baseChain() solution.Solution {
	return solution.Solution{
		{P: geom.Point{X: 10, Y: 0}, Capacity: 1.0, RAT: 100.0, EdgeID: rctree.InvalidEdgeID},
	}
}

// TestWireExtend_S1 pins a literal scenario: unit_r=unit_c=1, a 10-unit
// wire with a 1.0 load drops rat by 60.
func TestWireExtend_S1(t *testing.T) {
	tech := techconfig.Technology{UnitR: 1, UnitC: 1}
	chain := solution.WireExtend(baseChain(), 10, geom.Point{X: 0, Y: 0}, rctree.EdgeID(0), tech)

	front := chain.Frontier()
	wantRAT := float32(100.0 - (1*1*10*10/2.0 + 1*10*1))
	if front.RAT != wantRAT {
		t.Fatalf("RAT = %v, want %v", front.RAT, wantRAT)
	}
	wantCap := float32(1.0 + 1*10)
	if front.Capacity != wantCap {
		t.Fatalf("Capacity = %v, want %v", front.Capacity, wantCap)
	}
	if front.HasBuffer {
		t.Fatalf("HasBuffer should remain false after a wire extend")
	}
}

// TestWireExtend_Monotone: a non-negative wire extension never increases
// RAT and never decreases capacity.
func TestWireExtend_Monotone(t *testing.T) {
	tech := techconfig.Technology{UnitR: 0.5, UnitC: 0.2}
	before := solution.Solution{{Capacity: 3.0, RAT: 50.0}}

	for _, length := range []int{0, 1, 5, 20} {
		after := solution.WireExtend(before, length, geom.Point{}, rctree.InvalidEdgeID, tech)
		if after.Frontier().RAT > before.Frontier().RAT {
			t.Fatalf("length=%d: RAT increased from %v to %v", length, before.Frontier().RAT, after.Frontier().RAT)
		}
		if after.Frontier().Capacity < before.Frontier().Capacity {
			t.Fatalf("length=%d: Capacity decreased from %v to %v", length, before.Frontier().Capacity, after.Frontier().Capacity)
		}
	}
}

func TestWireExtend_DoesNotMutateInput(t *testing.T) {
	tech := techconfig.Technology{UnitR: 1, UnitC: 1}
	before := baseChain()
	beforeFrontier := before.Frontier()

	_ = solution.WireExtend(before, 5, geom.Point{X: 5, Y: 0}, rctree.EdgeID(1), tech)

	if before.Frontier() != beforeFrontier {
		t.Fatalf("WireExtend mutated its input chain")
	}
}

// TestBufferInsert_ResetsCapacity: after a buffer insert, Capacity
// equals the buffer's input capacitance regardless of prior load.
func TestBufferInsert_ResetsCapacity(t *testing.T) {
	buf := techconfig.Module{Name: "BUFX1", R: 0.1, C: 0.5, K: 0.2}
	for _, priorCap := range []float32{0.0, 1.0, 37.5} {
		chain := solution.Solution{{Capacity: priorCap, RAT: 10.0}}
		after := solution.BufferInsert(chain, buf)
		if after.Frontier().Capacity != buf.C {
			t.Fatalf("priorCap=%v: Capacity = %v, want %v", priorCap, after.Frontier().Capacity, buf.C)
		}
		if !after.Frontier().HasBuffer {
			t.Fatalf("priorCap=%v: HasBuffer not set", priorCap)
		}
	}
}

func TestBufferInsert_DoesNotMutateInput(t *testing.T) {
	buf := techconfig.Module{R: 0.1, C: 0.5, K: 0.2}
	before := solution.Solution{{Capacity: 2.0, RAT: 10.0}}
	beforeFrontier := before.Frontier()

	_ = solution.BufferInsert(before, buf)

	if before.Frontier() != beforeFrontier {
		t.Fatalf("BufferInsert mutated its input chain")
	}
}

func TestDominates(t *testing.T) {
	a := solution.Candidate{RAT: 10, Capacity: 2}
	b := solution.Candidate{RAT: 8, Capacity: 3}
	if !solution.Dominates(a, b) {
		t.Fatalf("expected a to dominate b")
	}
	if solution.Dominates(b, a) {
		t.Fatalf("did not expect b to dominate a")
	}
}

func TestDominates_ExactTieIsMutual(t *testing.T) {
	a := solution.Candidate{RAT: 10, Capacity: 2}
	b := solution.Candidate{RAT: 10, Capacity: 2}
	if !solution.Dominates(a, b) || !solution.Dominates(b, a) {
		t.Fatalf("exact ties must mutually dominate")
	}
}

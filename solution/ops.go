package solution

import (
	"github.com/vginneken/bufferinsert/geom"
	"github.com/vginneken/bufferinsert/rctree"
	"github.com/vginneken/bufferinsert/techconfig"
)

// WireExtend returns a new Solution with one more candidate appended at p,
// on edge eid, computed by driving the chain's current frontier through a
// wire of Manhattan length length under tech's per-unit R and C, per the
// Elmore delay model:
//
//	capacity' = capacity + unitC*length
//	rat'      = rat - (unitR*unitC*length^2/2 + unitR*length*capacity)
func WireExtend(s Solution, length int, p geom.Point, eid rctree.EdgeID, tech techconfig.Technology) Solution {
	frontier := s.Frontier()
	l := float32(length)

	wireDelay := tech.UnitR*tech.UnitC*(l*l)/2 + tech.UnitR*l*frontier.Capacity
	extended := Candidate{
		P:         p,
		Capacity:  frontier.Capacity + tech.UnitC*l,
		RAT:       frontier.RAT - wireDelay,
		EdgeID:    eid,
		HasBuffer: false,
	}

	out := make(Solution, len(s)+1)
	copy(out, s)
	out[len(s)] = extended

	return out
}

// BufferInsert returns a new Solution whose frontier has been replaced by
// the effect of splicing buf in at the current frontier position:
//
//	rat'      = rat - (buf.K + buf.R*capacity)
//	capacity' = buf.C
//
// The position, edge id, and every earlier candidate in the chain are
// unchanged; only HasBuffer on the (copied) frontier becomes true.
func BufferInsert(s Solution, buf techconfig.Module) Solution {
	out := make(Solution, len(s))
	copy(out, s)

	frontier := &out[len(out)-1]
	bufferDelay := buf.K + buf.R*frontier.Capacity
	frontier.RAT -= bufferDelay
	frontier.Capacity = buf.C
	frontier.HasBuffer = true

	return out
}

// Package geom provides the Manhattan-grid geometry primitives the buffer
// insertion engine builds on: integer points, L1 distance, and the
// edge-splitting walk that turns a routed polyline into a list of
// candidate buffer positions.
//
// Every edge in the RC tree is an axis-aligned polyline: each consecutive
// pair of points shares exactly one coordinate. SplitEdge walks such a
// polyline from its child end toward its parent end, emitting one point
// per step of a fixed spacing strictly inside each segment and, last, the
// polyline's first point (the other vertices are not emitted), in
// frontier-first order — the order the buffer insertion engine needs
// when it propagates Pareto solutions from a child node up to the parent.
package geom

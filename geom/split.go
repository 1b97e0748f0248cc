package geom

// defaultStep is used whenever a caller passes a non-positive step; spec
// defines the edge-splitting step as defaulting to 1.
const defaultStep = 1

// SplitSegment returns every integer point strictly between a and b, spaced
// step apart along whichever axis varies. a and b must share exactly one
// coordinate (a horizontal or vertical Manhattan segment); if they are
// equal, or differ on both axes, SplitSegment returns nil. The returned
// points are ordered walking away from a toward b.
func SplitSegment(a, b Point, step int) []Point {
	if step <= 0 {
		step = defaultStep
	}

	switch {
	case a.Y == b.Y && a.X != b.X:
		return walkAxis(a, b.X-a.X, step, func(p Point, offset int) Point {
			return Point{X: p.X + offset, Y: p.Y}
		})
	case a.X == b.X && a.Y != b.Y:
		return walkAxis(a, b.Y-a.Y, step, func(p Point, offset int) Point {
			return Point{X: p.X, Y: p.Y + offset}
		})
	default:
		return nil
	}
}

// walkAxis emits place(a, k*sign(delta)*step) for every k with
// 0 < k*step < |delta|, i.e. the points strictly between a and a+delta.
func walkAxis(a Point, delta, step int, place func(Point, int) Point) []Point {
	dir := step
	if delta < 0 {
		dir = -step
	}
	var pts []Point
	for offset := dir; abs(offset) < abs(delta); offset += dir {
		pts = append(pts, place(a, offset))
	}
	return pts
}

// SplitEdge walks a routed polyline from its last point (the child end)
// toward its first point (the parent end), emitting interior candidate
// points for every segment plus, finally, the polyline's own first point.
// The result is ordered child-end-first / parent-end-last, which is the
// order the buffer insertion engine consumes when propagating solutions up
// from a child toward its parent. A degenerate polyline (first == last, or
// fewer than two points) yields an empty slice. step defaults to 1.
func SplitEdge(polyline []Point, step int) []Point {
	if step <= 0 {
		step = defaultStep
	}
	n := len(polyline)
	if n < 2 || polyline[0] == polyline[n-1] {
		return nil
	}

	var out []Point
	for i := n - 2; i >= 0; i-- {
		childSide, parentSide := polyline[i+1], polyline[i]
		out = append(out, SplitSegment(childSide, parentSide, step)...)
	}
	out = append(out, polyline[0])

	return out
}

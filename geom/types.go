package geom

// Point is an integer Manhattan-grid coordinate. Equality is componentwise.
type Point struct {
	X, Y int
}

// Distance returns the Manhattan (L1) distance between a and b.
func Distance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package world

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns the point offset by the given delta.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |dx| + |dy| between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// IsAdjacent returns true if o is exactly one orthogonal step from p.
func (p Point) IsAdjacent(o Point) bool {
	return p.Manhattan(o) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

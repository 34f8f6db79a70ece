// Package fov decides which maze cells the player can currently see.
package fov

import "github.com/samdwyer/fogmaze/internal/world"

// nearRing is the offset on both axes inside which a cell touches the viewer
// and is never occluded.
const nearRing = 1

// Map is the view of the maze the visibility check needs.
type Map interface {
	Width() int
	Height() int
	IsPassable(x, y int) bool
}

// IsVisible reports whether the target cell can be seen from the viewer.
//
// Cells farther than radius (Manhattan) are never visible. Otherwise a line is
// stepped from viewer to target; the first wall on the way blocks sight. The
// target itself is checked before its own cell, so walls are visible when the
// line reaches them.
func IsVisible(m Map, viewerX, viewerY, targetX, targetY, radius int) bool {
	dx := abs(targetX - viewerX)
	dy := abs(targetY - viewerY)

	if dx+dy > radius {
		return false
	}
	if dx <= nearRing && dy <= nearRing {
		return true
	}

	return trace(m, viewerX, viewerY, targetX, targetY, radius)
}

// trace walks a Bresenham-style line from viewer to target. The error term is
// scaled by radius rather than the usual factor of two, which biases the line
// toward the major axis on long sightlines.
func trace(m Map, viewerX, viewerY, targetX, targetY, radius int) bool {
	dx := abs(targetX - viewerX)
	dy := abs(targetY - viewerY)
	sx := step(viewerX, targetX)
	sy := step(viewerY, targetY)
	err := dx - dy

	x, y := viewerX, viewerY
	for {
		if x == targetX && y == targetY {
			return true
		}
		// Steps are monotonic, so leaving the viewer/target box means the
		// target can no longer be reached.
		if abs(x-viewerX) > dx || abs(y-viewerY) > dy {
			return false
		}
		if !m.IsPassable(x, y) {
			return false
		}

		e2 := radius * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Field is a per-frame visibility mask over the whole grid.
type Field struct {
	width   int
	height  int
	visible []bool
}

// Compute evaluates IsVisible for every cell around viewer once, so renderers
// can read the mask instead of tracing per draw call.
func Compute(m Map, viewer world.Point, radius int) *Field {
	f := &Field{
		width:   m.Width(),
		height:  m.Height(),
		visible: make([]bool, m.Width()*m.Height()),
	}
	if radius < 0 {
		return f
	}

	minX, maxX := clamp(viewer.X-radius, 0, f.width-1), clamp(viewer.X+radius, 0, f.width-1)
	minY, maxY := clamp(viewer.Y-radius, 0, f.height-1), clamp(viewer.Y+radius, 0, f.height-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			f.visible[y*f.width+x] = IsVisible(m, viewer.X, viewer.Y, x, y, radius)
		}
	}
	return f
}

// At returns whether (x, y) is visible. Cells outside the grid are not.
func (f *Field) At(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.visible[y*f.width+x]
}

// Count returns the number of visible cells.
func (f *Field) Count() int {
	n := 0
	for _, v := range f.visible {
		if v {
			n++
		}
	}
	return n
}

func step(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

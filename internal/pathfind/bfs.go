// Package pathfind computes shortest routes through the maze.
package pathfind

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogmaze/internal/telemetry"
	"github.com/samdwyer/fogmaze/internal/world"
)

// Map is the view of the maze path search needs.
type Map interface {
	Width() int
	Height() int
	IsPassable(x, y int) bool
}

// Path is an ordered route from start to goal, both inclusive. Consecutive
// points are one orthogonal step apart.
type Path []world.Point

// Len returns the number of steps in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains returns true if pt lies on the path.
func (p Path) Contains(pt world.Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

// neighbors is the expansion order: up, down, left, right.
var neighbors = [4]world.Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// FindPath returns the first shortest path BFS discovers from start to goal
// under up/down/left/right expansion order. The boolean is false when goal
// cannot be reached or either endpoint lies outside the map; a start equal
// to goal yields a single-point path.
func FindPath(m Map, start, goal world.Point) (Path, bool) {
	width, height := m.Width(), m.Height()
	inBounds := func(p world.Point) bool {
		return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
	}
	if !inBounds(start) || !inBounds(goal) {
		return nil, false
	}

	index := func(p world.Point) int { return p.Y*width + p.X }

	visited := make([]bool, width*height)
	prev := make([]int, width*height)

	queue := make([]world.Point, 0, width*height)
	queue = append(queue, start)
	visited[index(start)] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			return reconstruct(prev, width, start, goal), true
		}

		for _, d := range neighbors {
			next := cur.Add(d.X, d.Y)
			if !inBounds(next) || visited[index(next)] || !m.IsPassable(next.X, next.Y) {
				continue
			}
			visited[index(next)] = true
			prev[index(next)] = index(cur)
			queue = append(queue, next)
		}
	}

	return nil, false
}

// reconstruct walks predecessor links back from goal and reverses them.
func reconstruct(prev []int, width int, start, goal world.Point) Path {
	path := Path{goal}
	for cur := goal; cur != start; {
		i := prev[cur.Y*width+cur.X]
		cur = world.Point{X: i % width, Y: i / width}
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Trace runs FindPath inside a "path.find" span.
func Trace(ctx context.Context, m Map, start, goal world.Point) (Path, bool) {
	_, span := telemetry.Tracer("pathfind").Start(ctx, "path.find")
	defer span.End()

	path, ok := FindPath(m, start, goal)
	span.SetAttributes(
		attribute.Int("path.start_x", start.X),
		attribute.Int("path.start_y", start.Y),
		attribute.Int("path.goal_x", goal.X),
		attribute.Int("path.goal_y", goal.Y),
		attribute.Bool("path.found", ok),
		attribute.Int("path.length", path.Len()),
	)
	return path, ok
}

package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogmaze/internal/telemetry"
)

// carveStep is the lattice spacing between maze rooms.
const carveStep = 2

// carveDirs lists the lattice moves in up, down, left, right order.
var carveDirs = [4]Point{
	{X: 0, Y: -carveStep},
	{X: 0, Y: carveStep},
	{X: -carveStep, Y: 0},
	{X: carveStep, Y: 0},
}

// Generator carves perfect mazes using a randomized depth-first backtracker.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing its shuffles from rng.
// Pass a seeded source for reproducible mazes.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// carveFrame is one level of the backtracking walk: the cell being expanded,
// its shuffled neighbour order and how far through that order we are.
type carveFrame struct {
	at   Point
	dirs [4]Point
	next int
}

// Generate carves a maze into grid starting at start, then marks the exit.
// The grid must be all walls and start must sit on odd coordinates inside
// the border.
func (gen *Generator) Generate(ctx context.Context, grid *Grid, start Point) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	if !gen.carvable(grid, start) {
		return fmt.Errorf("maze start: %w", grid.outOfBounds(start.X, start.Y))
	}

	visited := gen.carve(grid, start)

	exit := grid.Exit()
	if err := grid.Set(exit.X, exit.Y, Exit); err != nil {
		return fmt.Errorf("maze exit: %w", err)
	}

	span.SetAttributes(
		attribute.Int("maze.width", grid.Width()),
		attribute.Int("maze.height", grid.Height()),
		attribute.Int("maze.lattice_cells", visited),
		attribute.Int("maze.passages", grid.Count(Passage)+grid.Count(Exit)),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// carve walks the lattice from start with an explicit stack and returns the
// number of lattice cells opened. Each frame's directions are shuffled once
// when it is pushed, which visits cells in the same order as the recursive
// formulation without growing the call stack.
func (gen *Generator) carve(grid *Grid, start Point) int {
	grid.cells[grid.index(start.X, start.Y)] = Passage
	stack := []carveFrame{gen.newFrame(start)}
	visited := 1

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		next := top.at.Add(d.X, d.Y)
		if !gen.carvable(grid, next) || grid.cells[grid.index(next.X, next.Y)] != Wall {
			continue
		}

		mid := top.at.Add(d.X/2, d.Y/2)
		grid.cells[grid.index(next.X, next.Y)] = Passage
		grid.cells[grid.index(mid.X, mid.Y)] = Passage
		visited++

		// top is invalidated by append.
		stack = append(stack, gen.newFrame(next))
	}

	return visited
}

func (gen *Generator) newFrame(at Point) carveFrame {
	f := carveFrame{at: at, dirs: carveDirs}
	gen.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carvable reports whether p lies strictly inside the border.
func (gen *Generator) carvable(grid *Grid, p Point) bool {
	return p.X >= 1 && p.X <= grid.Width()-2 && p.Y >= 1 && p.Y <= grid.Height()-2
}

// NewMaze allocates a grid of the given size and carves a maze from its start cell.
func NewMaze(ctx context.Context, width, height int, rng *rand.Rand) (*Grid, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if err := NewGenerator(rng).Generate(ctx, grid, grid.Start()); err != nil {
		return nil, err
	}
	return grid, nil
}

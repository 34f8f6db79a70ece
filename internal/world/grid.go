package world

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Default maze dimensions. Both must stay odd.
	DefaultWidth  = 41
	DefaultHeight = 21

	minDimension = 5
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions is returned for grids that are not odd or smaller than 5x5.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// Grid is the maze's cell store. Cells are kept in a flat slice indexed y*width+x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width < minDimension || height < minDimension || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Fill(Wall)
	return g, nil
}

// MustNewGrid creates a grid, panicking on invalid dimensions.
func MustNewGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the fixed start cell (1,1).
func (g *Grid) Start() Point { return Point{X: 1, Y: 1} }

// Exit returns the fixed exit cell (W-2, H-2).
func (g *Grid) Exit() Point { return Point{X: g.width - 2, Y: g.height - 2} }

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at the given position.
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Wall, g.outOfBounds(x, y)
	}
	return g.cells[g.index(x, y)], nil
}

// Set stores a cell at the given position.
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[g.index(x, y)] = c
	return nil
}

// IsPassable returns true if the given position can be walked on.
// Positions outside the grid are never passable.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].IsPassable()
}

// Fill overwrites every cell with c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// String renders the grid one rune per cell, rows separated by newlines.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[g.index(x, y)].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
}

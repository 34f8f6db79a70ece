// Package world provides the maze grid and maze generation.
package world

// Cell represents the stored state of a single grid cell.
type Cell uint8

const (
	// Wall is an impassable cell.
	Wall Cell = iota
	// Passage is a carved, walkable cell.
	Passage
	// Exit is the walkable goal cell.
	Exit
)

// IsPassable returns true if the cell can be walked on.
func (c Cell) IsPassable() bool {
	return c == Passage || c == Exit
}

// Rune returns the cell's debug character.
func (c Cell) Rune() rune {
	switch c {
	case Passage:
		return ' '
	case Exit:
		return 'E'
	default:
		return '#'
	}
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

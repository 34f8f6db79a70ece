// Package entity provides the player entity.
package entity

import "github.com/samdwyer/fogmaze/internal/world"

// Player is the explorer walking the maze.
type Player struct {
	X, Y  int // Current position in the maze
	Moves int // Accepted moves so far
}

// NewPlayer creates a player at the given position.
func NewPlayer(at world.Point) *Player {
	return &Player{
		X: at.X,
		Y: at.Y,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
	p.Moves++
}

// Position returns the current position.
func (p *Player) Position() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// At returns true if the player stands on pt.
func (p *Player) At(pt world.Point) bool {
	return p.X == pt.X && p.Y == pt.Y
}

package entity

import (
	"testing"

	"github.com/samdwyer/fogmaze/internal/world"
)

func TestPlayerMove(t *testing.T) {
	p := NewPlayer(world.Point{X: 1, Y: 1})

	p.Move(1, 0)
	p.Move(0, 1)

	if got := p.Position(); got != (world.Point{X: 2, Y: 2}) {
		t.Errorf("Position() = %v, want (2,2)", got)
	}
	if p.Moves != 2 {
		t.Errorf("Moves = %d, want 2", p.Moves)
	}
	if !p.At(world.Point{X: 2, Y: 2}) {
		t.Error("At((2,2)) = false, want true")
	}
}

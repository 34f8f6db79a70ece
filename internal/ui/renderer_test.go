package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogmaze/internal/gamedata"
	"github.com/samdwyer/fogmaze/internal/pathfind"
	"github.com/samdwyer/fogmaze/internal/world"
)

func newTestRenderer(t *testing.T, width, height int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(width, height)

	return NewRenderer(screen, gamedata.MustLoadTileSet()), sim
}

func openRoom(t *testing.T) *world.Grid {
	t.Helper()
	g := world.MustNewGrid(5, 5)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			if err := g.Set(x, y, world.Passage); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := g.Set(3, 3, world.Exit); err != nil {
		t.Fatal(err)
	}
	return g
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestRenderFog(t *testing.T) {
	r, sim := newTestRenderer(t, 20, 10)
	g := openRoom(t)

	r.Render(Scene{
		Grid:    g,
		Player:  world.Point{X: 1, Y: 1},
		Visible: func(x, y int) bool { return x < 3 },
		Status:  []string{"hello"},
	})

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '█'}, // visible wall
		{1, 1, '@'}, // player
		{2, 1, ' '}, // visible passage
		{3, 1, '?'}, // fogged passage
		{3, 3, '?'}, // fogged exit
		{4, 4, '?'}, // fogged wall
	}
	for _, tt := range tests {
		if got := runeAt(sim, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	for i, want := range "hello" {
		if got := runeAt(sim, i, 6); got != want {
			t.Errorf("status col %d = %q, want %q", i, got, want)
		}
	}
}

func TestRenderExitAndPath(t *testing.T) {
	r, sim := newTestRenderer(t, 20, 10)
	g := openRoom(t)

	r.Render(Scene{
		Grid:    g,
		Player:  world.Point{X: 1, Y: 1},
		Visible: func(x, y int) bool { return true },
		Path:    pathfind.Path{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}},
	})

	if got := runeAt(sim, 1, 1); got != '@' {
		t.Errorf("player cell = %q, want '@' over the path", got)
	}
	for _, p := range []world.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}} {
		if got := runeAt(sim, p.X, p.Y); got != '*' {
			t.Errorf("path cell %v = %q, want '*'", p, got)
		}
	}
	if got := runeAt(sim, 1, 3); got != ' ' {
		t.Errorf("off-path passage = %q, want ' '", got)
	}
}

func TestRenderScrollsToPlayer(t *testing.T) {
	r, sim := newTestRenderer(t, 11, 8)
	g := world.MustNewGrid(world.DefaultWidth, world.DefaultHeight)
	exit := g.Exit()

	r.Render(Scene{
		Grid:    g,
		Player:  exit,
		Visible: func(x, y int) bool { return true },
	})

	// 11 columns and 7 rows of a 41x21 maze, clamped to the bottom-right corner.
	sx, sy := exit.X-(world.DefaultWidth-11), exit.Y-(world.DefaultHeight-7)
	if got := runeAt(sim, sx, sy); got != '@' {
		t.Errorf("player not at (%d,%d), found %q", sx, sy, got)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		view, size, focus int
		want              int
	}{
		{41, 41, 20, 0},  // fits exactly
		{80, 41, 39, 0},  // screen larger than maze
		{11, 41, 1, 0},   // clamped at the start
		{11, 41, 20, 15}, // centered
		{11, 41, 39, 30}, // clamped at the end
		{0, 41, 10, 0},   // no room at all
	}

	for _, tt := range tests {
		if got := Viewport(tt.view, tt.size, tt.focus); got != tt.want {
			t.Errorf("Viewport(%d, %d, %d) = %d, want %d", tt.view, tt.size, tt.focus, got, tt.want)
		}
	}
}

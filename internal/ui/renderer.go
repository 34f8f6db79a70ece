package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogmaze/internal/gamedata"
	"github.com/samdwyer/fogmaze/internal/pathfind"
	"github.com/samdwyer/fogmaze/internal/world"
)

// Scene is everything needed to draw one frame.
type Scene struct {
	Grid    *world.Grid
	Player  world.Point
	Visible func(x, y int) bool // Cells returning false are drawn as fog
	Path    pathfind.Path       // Optional overlay, drawn through fog
	Status  []string            // Lines printed below the maze
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	tiles  *gamedata.TileSet
}

// NewRenderer creates a new renderer for the given screen and glyph table.
func NewRenderer(screen *Screen, tiles *gamedata.TileSet) *Renderer {
	return &Renderer{screen: screen, tiles: tiles}
}

// Render draws the fogged maze, the path overlay, the player and the status lines.
func (r *Renderer) Render(scene Scene) {
	r.screen.Clear()

	screenW, screenH := r.screen.Size()
	grid := scene.Grid

	// Keep one blank line plus the status lines below the maze.
	viewH := screenH - len(scene.Status) - 1
	if viewH > grid.Height() {
		viewH = grid.Height()
	}
	viewW := screenW
	if viewW > grid.Width() {
		viewW = grid.Width()
	}
	if viewH < 0 {
		viewH = 0
	}

	offX := Viewport(viewW, grid.Width(), scene.Player.X)
	offY := Viewport(viewH, grid.Height(), scene.Player.Y)

	fog := r.tiles.Get(gamedata.TileFog)
	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < viewW; sx++ {
			x, y := sx+offX, sy+offY
			def := fog
			if scene.Visible == nil || scene.Visible(x, y) {
				def = r.cellTile(grid, x, y)
			}
			r.screen.SetContent(sx, sy, def.GlyphRune(), def.Style())
		}
	}

	path := r.tiles.Get(gamedata.TilePath)
	for _, p := range scene.Path {
		r.drawAt(p.X-offX, p.Y-offY, viewW, viewH, path)
	}

	r.drawAt(scene.Player.X-offX, scene.Player.Y-offY, viewW, viewH, r.tiles.Get(gamedata.TilePlayer))

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range scene.Status {
		r.screen.DrawText(0, viewH+1+i, line, style)
	}

	r.screen.Show()
}

// cellTile returns the tile definition for the stored cell at (x, y).
func (r *Renderer) cellTile(grid *world.Grid, x, y int) *gamedata.TileDef {
	cell, err := grid.Get(x, y)
	if err != nil {
		return r.tiles.Get(gamedata.TileWall)
	}
	switch cell {
	case world.Passage:
		return r.tiles.Get(gamedata.TilePassage)
	case world.Exit:
		return r.tiles.Get(gamedata.TileExit)
	default:
		return r.tiles.Get(gamedata.TileWall)
	}
}

func (r *Renderer) drawAt(sx, sy, viewW, viewH int, def *gamedata.TileDef) {
	if sx < 0 || sx >= viewW || sy < 0 || sy >= viewH {
		return
	}
	r.screen.SetContent(sx, sy, def.GlyphRune(), def.Style())
}

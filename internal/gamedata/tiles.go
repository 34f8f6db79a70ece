package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Tile identifiers used by tiles.json.
const (
	TileWall    = "wall"
	TilePassage = "passage"
	TileExit    = "exit"
	TilePlayer  = "player"
	TileFog     = "fog"
	TilePath    = "path"
)

// TileDef defines how one kind of cell or overlay is drawn.
type TileDef struct {
	ID    string `json:"id"`    // Identifier (e.g., "wall")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "█")
	Color string `json:"color"` // Foreground color, hex or tcell color name
	Bold  bool   `json:"bold"`  // Render in bold
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(d.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	color, err := ParseColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Style returns the tcell style for the tile.
func (d *TileDef) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(d.TCellColor()).Bold(d.Bold)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

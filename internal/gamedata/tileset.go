package gamedata

import "fmt"

// requiredTiles must all be present for the renderer to draw a frame.
var requiredTiles = []string{TileWall, TilePassage, TileExit, TilePlayer, TileFog, TilePath}

// TileSet holds loaded tile definitions keyed by ID.
type TileSet struct {
	tiles map[string]*TileDef
	all   []TileDef
}

// NewTileSet creates a tile set from loaded definitions.
func NewTileSet(tiles []TileDef) *TileSet {
	set := &TileSet{
		tiles: make(map[string]*TileDef, len(tiles)),
		all:   tiles,
	}
	for i := range tiles {
		set.tiles[tiles[i].ID] = &tiles[i]
	}
	return set
}

// LoadTileSet loads the embedded tiles.json and checks every required tile exists.
func LoadTileSet() (*TileSet, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	set := NewTileSet(tiles)
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// MustLoadTileSet loads the tile set, panicking on error.
func MustLoadTileSet() *TileSet {
	set, err := LoadTileSet()
	if err != nil {
		panic(err)
	}
	return set
}

// Validate returns an error naming the first required tile that is missing.
func (s *TileSet) Validate() error {
	for _, id := range requiredTiles {
		if s.tiles[id] == nil {
			return fmt.Errorf("tiles.json: missing tile %q", id)
		}
	}
	return nil
}

// Get returns the tile with the given ID, or nil if not found.
func (s *TileSet) Get(id string) *TileDef {
	return s.tiles[id]
}

// All returns all tile definitions.
func (s *TileSet) All() []TileDef {
	return s.all
}

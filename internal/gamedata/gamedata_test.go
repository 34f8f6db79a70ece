package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadTileSet(t *testing.T) {
	set, err := LoadTileSet()
	if err != nil {
		t.Fatalf("Failed to load tiles: %v", err)
	}

	if len(set.All()) != len(requiredTiles) {
		t.Errorf("Expected %d tiles, got %d", len(requiredTiles), len(set.All()))
	}

	expected := map[string]rune{
		TileWall:    '█',
		TilePassage: ' ',
		TileExit:    'E',
		TilePlayer:  '@',
		TileFog:     '?',
		TilePath:    '*',
	}
	for id, glyph := range expected {
		def := set.Get(id)
		if def == nil {
			t.Errorf("Expected tile %q not found", id)
			continue
		}
		if got := def.GlyphRune(); got != glyph {
			t.Errorf("tile %q glyph = %q, want %q", id, got, glyph)
		}
	}
}

func TestTileSetValidate(t *testing.T) {
	set := NewTileSet([]TileDef{{ID: TileWall, Glyph: "#"}})
	if err := set.Validate(); err == nil {
		t.Error("Validate() should fail when tiles are missing")
	}
	if set.Get("nope") != nil {
		t.Error("Get() of unknown ID should be nil")
	}
}

func TestLoadMessages(t *testing.T) {
	msgs, err := LoadMessages()
	if err != nil {
		t.Fatalf("Failed to load messages: %v", err)
	}
	if msgs.Goal == "" || msgs.Won == "" || msgs.NoPath == "" || msgs.Continue == "" {
		t.Errorf("messages.json has empty fields: %+v", msgs)
	}
	if len(msgs.Controls) == 0 {
		t.Error("messages.json has no control help")
	}
}

func TestLoadUnknownFile(t *testing.T) {
	if _, err := Load[Messages]("missing.json"); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", false}, // Bare hex is only accepted by ParseHexColor
		{"#00ff00", true},
		{"red", true},
		{"DarkGray", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestParseHexColorValue(t *testing.T) {
	color, err := ParseHexColor("FF8000")
	if err != nil {
		t.Fatalf("ParseHexColor() error: %v", err)
	}
	r, g, b := color.RGB()
	if r != 0xFF || g != 0x80 || b != 0x00 {
		t.Errorf("RGB() = (%d,%d,%d), want (255,128,0)", r, g, b)
	}
}

func TestTileDefMethods(t *testing.T) {
	def := TileDef{
		ID:    "test",
		Glyph: "█",
		Color: "#FF0000",
		Bold:  true,
	}

	if def.GlyphRune() != '█' {
		t.Errorf("Expected glyph '█', got %c", def.GlyphRune())
	}
	if def.TCellColor() == tcell.ColorDefault {
		t.Error("TCellColor returned default color")
	}

	empty := TileDef{Color: "nonsense"}
	if empty.GlyphRune() != '?' {
		t.Errorf("empty glyph = %c, want '?'", empty.GlyphRune())
	}
	if empty.TCellColor() != tcell.ColorWhite {
		t.Error("unparseable color should fall back to white")
	}
}

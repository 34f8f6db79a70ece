package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor accepts either a hex color ("#FF0000") or a tcell color name ("darkgray").
func ParseColor(s string) (tcell.Color, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s)
	}
	color, ok := tcell.ColorNames[strings.ToLower(s)]
	if !ok {
		return tcell.ColorDefault, fmt.Errorf("unknown color name: %q", s)
	}
	return color, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Package gamedata provides the embedded glyph table and UI text.
package gamedata

import "embed"

// dataFS holds tiles.json and messages.json.
//
//go:embed *.json
var dataFS embed.FS

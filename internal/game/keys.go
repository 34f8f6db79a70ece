package game

import "github.com/gdamore/tcell/v2"

// commandForKey maps a key press to a command.
// Arrows and W/A/S/D move, E shows the path, Q/Esc/Ctrl-C quit.
func commandForKey(key tcell.Key, r rune) (Command, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, true
	case tcell.KeyUp:
		return CommandUp, true
	case tcell.KeyDown:
		return CommandDown, true
	case tcell.KeyLeft:
		return CommandLeft, true
	case tcell.KeyRight:
		return CommandRight, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return CommandUp, true
		case 's', 'S':
			return CommandDown, true
		case 'a', 'A':
			return CommandLeft, true
		case 'd', 'D':
			return CommandRight, true
		case 'e', 'E':
			return CommandShowPath, true
		case 'q', 'Q':
			return CommandQuit, true
		}
	}
	return 0, false
}

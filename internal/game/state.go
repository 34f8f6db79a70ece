// Package game provides the session rules and the terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default state: the player explores the maze.
	StatePlaying State = iota
	// StateWon means the player reached the exit.
	StateWon
	// StateQuit means the player gave up.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over returns true once no further commands are accepted.
func (s State) Over() bool {
	return s == StateWon || s == StateQuit
}

package game

// Command is a discrete player request.
type Command int

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
	CommandShowPath
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	case CommandShowPath:
		return "show_path"
	default:
		return "unknown"
	}
}

// Delta returns the movement offset for directional commands.
// ok is false for commands that do not move the player.
func (c Command) Delta() (dx, dy int, ok bool) {
	switch c {
	case CommandUp:
		return 0, -1, true
	case CommandDown:
		return 0, 1, true
	case CommandLeft:
		return -1, 0, true
	case CommandRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// Outcome describes what a command did.
type Outcome int

const (
	// OutcomeIgnored - the game is over or the command is unknown
	OutcomeIgnored Outcome = iota
	// OutcomeMoved - the player took a step
	OutcomeMoved
	// OutcomeBlocked - a wall is in the way
	OutcomeBlocked
	// OutcomePathShown - a route to the exit is available via Session.Path
	OutcomePathShown
	// OutcomeNoPath - the exit cannot be reached from the player
	OutcomeNoPath
	// OutcomeWon - the step landed on the exit
	OutcomeWon
	// OutcomeQuit - the player quit
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomePathShown:
		return "path_shown"
	case OutcomeNoPath:
		return "no_path"
	case OutcomeWon:
		return "won"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

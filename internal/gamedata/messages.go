package gamedata

// Messages holds the text shown around the maze.
type Messages struct {
	Goal     string   `json:"goal"`     // Objective line under the maze
	Controls []string `json:"controls"` // Key help lines
	Won      string   `json:"won"`      // Shown once the exit is reached
	NoPath   string   `json:"noPath"`   // Shown when the exit cannot be reached
	Blocked  string   `json:"blocked"`  // Shown after bumping into a wall
	Continue string   `json:"continue"` // Prompt while a path is displayed
}

// LoadMessages loads UI text from the embedded messages.json file.
func LoadMessages() (Messages, error) {
	return Load[Messages]("messages.json")
}

// MustLoadMessages loads UI text, panicking on error.
func MustLoadMessages() Messages {
	return MustLoad[Messages]("messages.json")
}

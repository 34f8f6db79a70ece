package game

// VisibilityRadius is how far (Manhattan) the player can see.
const VisibilityRadius = 10

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maze generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Maze dimensions, fixed at startup. Zero uses world.DefaultWidth/DefaultHeight.
	Width, Height int
}

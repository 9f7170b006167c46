package core

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW  int // Frame width in pixels
	ScreenH  int // Frame height in pixels
	TickRate int // Simulation ticks per second (default 60)
	Workers  int // Render workers, 0 means one per CPU
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  480,
		TickRate: 60,
		Workers:  0,
	}
}

// GameState represents the current state of a session.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Tick     uint64 // Simulation ticks since reset
	Paused   bool   // Whether the simulation is paused
	Minimap  bool   // Whether the minimap overlay is shown
	Position Vec2   // Camera position in map cells
	Heading  Vec2   // Camera facing direction
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Bookmark is set when the player asked to save the camera this tick.
	Bookmark bool
}

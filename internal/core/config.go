package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second; 0 lets the game choose
	Seed     int64   // RNG seed; 0 lets the game choose (saved world, clock)
	Rumble   Rumbler // Haptic output; nil disables it
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current (or last finished) score
	GameOver bool // A run has ended and the game sits in its menu
	Paused   bool // Whether the game is paused
	Quit     bool // The game asked the host to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

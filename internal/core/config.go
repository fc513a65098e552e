package core

// RuntimeConfig contains the platform settings for a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame rate override for per-frame games (0 = game default)
	Seed     int64 // RNG seed (0 means use current time in platform layer)
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
	Score    int  // Current score
	Lines    int  // Lines cleared (puzzle games only)
	Running  bool // Whether the simulation clock should be running
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

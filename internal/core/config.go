package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HighScore is the best score known at session start.
	// Loaded by the platform from persistence; games never write it back.
	HighScore int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score, truncated for display and storage
	RawScore  float64 // Exact accumulator (time-based modes accrue fractions)
	HighScore int     // Best score including the current run
	GameOver  bool    // Whether the game has ended
	Paused    bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// HighScoreStore is the persistence contract for a single game's best score.
// The platform calls it at session boundaries only, never mid-frame.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

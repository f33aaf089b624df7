package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The glider ticks at 30 Hz, close to the 33 ms interval it was tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score     int  // Obstacles passed in the current round
	BestScore int  // Highest score seen, seeded from storage
	Life      int  // Remaining attempts
	Playing   bool // A round is in flight
	GameOver  bool // No attempts left
	Paused    bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event // State transitions that happened during the tick, in order
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (cells for terminals, pixels for windows)
	ScreenH  int   // Host surface height
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota // Still running
	OutcomeLanded
	OutcomeCrashed
	OutcomeQuit
)

// String returns the stored name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeQuit:
		return "quit"
	default:
		return "running"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
	Outcome  Outcome // How the run ended, OutcomeNone while running
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events lists what happened during the tick, in order.
type StepResult struct {
	State  GameState
	Events []Event
}

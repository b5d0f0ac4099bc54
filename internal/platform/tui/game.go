package tui

import (
	"github.com/vovakirdan/citybomber/internal/bomber"
	"github.com/vovakirdan/citybomber/internal/core"
)

// Game is the simulation the terminal host drives.
// It contains pure logic; the host handles input mapping, timing and display.
type Game interface {
	// ID returns the identifier used for storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh run from the runtime config's seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Stats summarizes the run for the history table.
	Stats() bomber.RunStats
}

// CueSink receives the events of each tick, typically to play sounds.
type CueSink interface {
	Handle(events []core.Event)
}

var _ Game = (*bomber.Game)(nil)

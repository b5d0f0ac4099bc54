// Package bomber implements City Bomber: a plane sweeps row by row over a
// random skyline and the player bombs buildings flat before the plane comes
// down. The package is pure simulation; hosts supply input, timing, drawing
// and sound.
package bomber

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
)

// GameID identifies the game in storage and on the command line.
const GameID = "citybomber"

// Notify receives gameplay events as they happen. A nil Notify discards them.
type Notify func(core.Event)

func (n Notify) emit(ev core.Event) {
	if n != nil {
		n(ev)
	}
}

// Game implements the City Bomber game loop.
type Game struct {
	cfg     config.BomberConfig
	palette []core.Color
	runtime core.RuntimeConfig
	rng     *rand.Rand

	plane Plane
	city  []Building
	bombs []Bomb

	score     int
	destroyed int // Levels destroyed this run
	tickCount int
	paused    bool
	outcome   core.Outcome
	events    []core.Event // Events of the current tick
}

// RunStats summarizes a run for the scoreboard.
type RunStats struct {
	Outcome         core.Outcome
	Score           int
	LevelsDestroyed int
	BuildingsLeft   int
	Ticks           int
}

// New creates a game using the given configuration.
func New(cfg config.BomberConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bomber: %w", err)
	}
	palette, err := cfg.City.Colors()
	if err != nil {
		return nil, fmt.Errorf("bomber: %w", err)
	}
	return &Game{cfg: cfg, palette: palette}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Playfield.Title
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.BomberConfig {
	return g.cfg
}

// Reset builds a new city and puts the plane at its starting row.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg := &g.cfg
	planeH := cfg.Plane.Height
	height := cfg.Playfield.Height

	// Start a whole number of plane heights above the middle row, in the top
	// part of the screen, so a cleared city leaves a clean landing row.
	rows := height / planeH
	middle := height - (rows/2)*planeH
	startY := middle - (3+g.rng.Intn(rows/2-3))*planeH
	g.plane = NewPlane(0, startY, cfg)

	g.city = make([]Building, cfg.City.Buildings)
	for i := range g.city {
		g.city[i] = NewBuilding(i, g.rng, cfg, g.palette)
	}

	g.bombs = make([]Bomb, cfg.Bomb.MaxBombs)
	for i := range g.bombs {
		g.bombs[i] = NewBomb(i, cfg)
	}

	g.score = 0
	g.destroyed = 0
	g.tickCount = 0
	g.paused = false
	g.outcome = core.OutcomeNone
	g.events = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.outcome != core.OutcomeNone {
		return g.result()
	}

	if in.Has(core.ActionQuit) {
		g.outcome = core.OutcomeQuit
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++

	for n := in.Count(core.ActionDrop); n > 0; n-- {
		if !g.DropBomb() {
			break
		}
	}

	// Bombs eat into the buildings they are aimed at
	for i := range g.bombs {
		b := &g.bombs[i]
		if b.Falling && b.HasTarget {
			g.city[b.Target].ApplyBombHit(b, g.record)
		}
	}

	g.plane.Move(g.city, g.record)

	for i := range g.bombs {
		g.bombs[i].Move(g.record)
	}

	switch {
	case g.plane.Crashed:
		g.outcome = core.OutcomeCrashed
	case g.plane.Landed:
		g.outcome = core.OutcomeLanded
		g.score += g.cfg.Scoring.LandingBonus
	}

	return g.result()
}

// DropBomb releases the first idle bomb, unless the pool is exhausted.
// It reports whether a bomb was dropped.
func (g *Game) DropBomb() bool {
	if g.FallingBombs() >= len(g.bombs) {
		return false
	}
	for i := range g.bombs {
		if !g.bombs[i].Falling {
			return g.bombs[i].Drop(&g.plane, g.city, g.record)
		}
	}
	return false
}

// FallingBombs counts the bombs currently in the air.
func (g *Game) FallingBombs() int {
	n := 0
	for i := range g.bombs {
		if g.bombs[i].Falling {
			n++
		}
	}
	return n
}

// record keeps score and collects the tick's events for the host.
func (g *Game) record(ev core.Event) {
	if ev.Kind == core.EventLevelDestroyed {
		g.destroyed++
		g.score += g.cfg.Scoring.PointsPerLevel
	}
	g.events = append(g.events, ev)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.outcome != core.OutcomeNone,
		Paused:   g.paused,
		Outcome:  g.outcome,
	}
}

// Stats summarizes the run so far.
func (g *Game) Stats() RunStats {
	left := 0
	for i := range g.city {
		if g.city[i].Standing() {
			left++
		}
	}
	return RunStats{
		Outcome:         g.outcome,
		Score:           g.score,
		LevelsDestroyed: g.destroyed,
		BuildingsLeft:   left,
		Ticks:           g.tickCount,
	}
}

// Plane returns the bomber.
func (g *Game) Plane() *Plane {
	return &g.plane
}

// City returns the buildings, indexed by column.
func (g *Game) City() []Building {
	return g.city
}

// Bombs returns the bomb pool.
func (g *Game) Bombs() []Bomb {
	return g.bombs
}

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
	"github.com/vovakirdan/citybomber/internal/storage"
)

// Options configures a terminal run.
type Options struct {
	Runtime  core.RuntimeConfig
	EndDelay time.Duration  // How long the end banner stays up
	Store    *storage.Store // nil disables run history
	Sounds   CueSink        // nil plays no sound
	Host     string         // Recorded with the run
	Player   string         // SSH user, empty for local play
	Logger   *log.Logger    // Only written to after the program exits or over SSH
}

// Model is the Bubble Tea model for a City Bomber run.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	endTicks   int // Ticks shown since the run ended
	quitting   bool
	runSaved   bool
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:       opts,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is logical, a resize only rescales it
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	force := m.keys.MapKeyToFrame(msg, &m.inputFrame)

	// Quitting again while the banner is up skips the wait
	if force || (m.gameState.GameOver && m.inputFrame.Has(core.ActionQuit)) {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		m.endTicks++
		if m.endTicks >= m.endDelayTicks() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.opts.Sounds != nil && len(result.Events) > 0 {
		m.opts.Sounds.Handle(result.Events)
	}

	if m.gameState.GameOver {
		m.finish()
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// endDelayTicks converts the end delay to whole ticks.
func (m Model) endDelayTicks() int {
	return int(m.opts.EndDelay * time.Duration(m.opts.Runtime.TickRate) / time.Second)
}

// finish records the run once.
func (m *Model) finish() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.opts.Store == nil {
		return
	}

	stats := m.game.Stats()
	if stats.Outcome == core.OutcomeNone {
		// Left with ctrl+c mid-run
		stats.Outcome = core.OutcomeQuit
	}
	_, m.saveErr = m.opts.Store.SaveRun(storage.Run{
		Outcome:         stats.Outcome.String(),
		Score:           stats.Score,
		LevelsDestroyed: stats.LevelsDestroyed,
		BuildingsLeft:   stats.BuildingsLeft,
		Ticks:           stats.Ticks,
		Seed:            m.opts.Runtime.Seed,
		Host:            m.opts.Host,
		Player:          m.opts.Player,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Result returns the final state and any error from saving the run.
func (m Model) Result() (core.GameState, error) {
	return m.gameState, m.saveErr
}

// Run plays one game in the terminal and returns how it ended.
func Run(game Game, opts Options) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return game.State(), nil
	}

	state, saveErr := m.Result()
	if saveErr != nil && opts.Logger != nil {
		opts.Logger.Warn("could not save run", "error", saveErr)
	}
	return state, nil
}

// Package window hosts City Bomber in a desktop window through Ebitengine.
package window

import (
	"errors"
	"fmt"
	_ "image/png"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/citybomber/internal/bomber"
	"github.com/vovakirdan/citybomber/internal/core"
	"github.com/vovakirdan/citybomber/internal/storage"
)

// CueSink receives the events of each tick, typically to play sounds.
type CueSink interface {
	Handle(events []core.Event)
}

// Options configures a window run.
type Options struct {
	Runtime    core.RuntimeConfig
	EndDelay   time.Duration
	Background string // PNG scaled to the playfield, empty for a plain sky
	Store      *storage.Store
	Sounds     CueSink
	Logger     *log.Logger
}

// keyBindings maps keys to actions. Keys act on the frame they go down.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionDrop},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// readInput builds the frame's input from the keys that went down.
func readInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if justPressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}

// Host implements ebiten.Game around a bomber.Game.
type Host struct {
	game       *bomber.Game
	opts       Options
	canvas     *canvas
	background *ebiten.Image
	state      core.GameState
	endTicks   int
	saved      bool
	saveErr    error
}

// NewHost prepares a window for the game. A background that cannot be
// loaded is an error.
func NewHost(game *bomber.Game, opts Options) (*Host, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	cfg := game.Config()
	opts.Runtime.ScreenW = cfg.Playfield.Width
	opts.Runtime.ScreenH = cfg.Playfield.Height

	h := &Host{
		game: game,
		opts: opts,
	}

	if opts.Background != "" {
		img, _, err := ebitenutil.NewImageFromFile(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("window: background %s: %w", opts.Background, err)
		}
		h.background = img
	}

	h.canvas = newCanvas(cfg.Playfield.Width, cfg.Playfield.Height, h.background != nil)
	game.Reset(opts.Runtime)
	return h, nil
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	if ebiten.IsWindowBeingClosed() {
		h.finish()
		return ebiten.Termination
	}

	in := readInput(inpututil.IsKeyJustPressed)

	if h.state.GameOver {
		h.endTicks++
		if in.Has(core.ActionQuit) || h.endTicks >= h.endDelayTicks() {
			return ebiten.Termination
		}
		return nil
	}

	result := h.game.Step(in)
	h.state = result.State

	if h.opts.Sounds != nil && len(result.Events) > 0 {
		h.opts.Sounds.Handle(result.Events)
	}
	if h.state.GameOver {
		h.finish()
	}
	return nil
}

func (h *Host) endDelayTicks() int {
	return int(h.opts.EndDelay * time.Duration(h.opts.Runtime.TickRate) / time.Second)
}

// finish records the run once.
func (h *Host) finish() {
	if h.saved {
		return
	}
	h.saved = true
	if h.opts.Store == nil {
		return
	}

	stats := h.game.Stats()
	if stats.Outcome == core.OutcomeNone {
		// Window closed mid-run
		stats.Outcome = core.OutcomeQuit
	}
	_, h.saveErr = h.opts.Store.SaveRun(storage.Run{
		Outcome:         stats.Outcome.String(),
		Score:           stats.Score,
		LevelsDestroyed: stats.LevelsDestroyed,
		BuildingsLeft:   stats.BuildingsLeft,
		Ticks:           stats.Ticks,
		Seed:            h.opts.Runtime.Seed,
		Host:            "window",
	})
}

// Draw renders the playfield.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.background != nil {
		b := h.background.Bounds()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(
			float64(h.canvas.w)/float64(b.Dx()),
			float64(h.canvas.h)/float64(b.Dy()),
		)
		screen.DrawImage(h.background, opts)
	}

	h.canvas.dst = screen
	h.game.Draw(h.canvas)
}

// Layout keeps the logical playfield size whatever the window size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.canvas.w, h.canvas.h
}

// Run opens the window and plays one game. It returns how the run ended.
func Run(game *bomber.Game, opts Options) (core.GameState, error) {
	h, err := NewHost(game, opts)
	if err != nil {
		return core.GameState{}, err
	}

	ebiten.SetWindowSize(h.canvas.w, h.canvas.h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(h.opts.Runtime.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return core.GameState{}, fmt.Errorf("window: %w", err)
	}

	if h.saveErr != nil && h.opts.Logger != nil {
		h.opts.Logger.Warn("could not save run", "error", h.saveErr)
	}
	h.state = game.State()
	return h.state, nil
}

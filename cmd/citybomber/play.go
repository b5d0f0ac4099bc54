package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/citybomber/internal/bomber"
	"github.com/vovakirdan/citybomber/internal/core"
	"github.com/vovakirdan/citybomber/internal/platform/tui"
)

var (
	flagConfig string
	flagMute   bool
	flagSounds string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. The 800x600 playfield is scaled to the
terminal size.

Controls:
  Space      - Drop a bomb (two can fall at once)
  P          - Pause
  Esc/Q      - Quit
  Ctrl+C     - Quit immediately
  Ctrl+S     - Save a text screenshot

Examples:
  citybomber play
  citybomber play --mute
  citybomber play --seed 42
  citybomber play --config ./my-city.yaml --sounds ./assets`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// addGameFlags registers the flags shared by play and window.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with bomb_dropping.wav, bomb-explode.wav and bomb_explosion.wav")
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger := newLogger("citybomber")

	cfg, err := loadGameConfig(cmd, flagConfig)
	if err != nil {
		fatal(logger, "invalid configuration", err)
	}

	game, err := bomber.New(cfg)
	if err != nil {
		fatal(logger, "cannot create game", err)
	}

	player, err := startAudio(cfg.Audio, flagMute, flagSounds, logger)
	if err != nil {
		fatal(logger, "cannot start audio", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		EndDelay: cfg.Timing.EndDelay,
		Store:    store,
		Host:     "terminal",
		Logger:   logger,
	}
	if player != nil {
		opts.Sounds = player
	}

	state, runErr := tui.Run(game, opts)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal(logger, "error running game", runErr)
	}
	fmt.Println(outcomeLine(state.Outcome, state.Score))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/citybomber/internal/bomber"
	"github.com/vovakirdan/citybomber/internal/core"
	"github.com/vovakirdan/citybomber/internal/platform/window"
)

var flagBackground string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in an 800x600 desktop window.

Controls:
  Space      - Drop a bomb (two can fall at once)
  P          - Pause
  Esc/Q      - Quit
  Closing the window quits as well.

Examples:
  citybomber window
  citybomber window --background ./assets/city_skyline-background.png
  citybomber window --sounds ./assets`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().StringVar(&flagBackground, "background", "", "PNG drawn behind the city")
}

func runWindow(cmd *cobra.Command, _ []string) {
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

	store := openStore(logger)

	opts := window.Options{
		Runtime: core.RuntimeConfig{
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		EndDelay:   cfg.Timing.EndDelay,
		Background: flagBackground,
		Store:      store,
		Logger:     logger,
	}
	if player != nil {
		opts.Sounds = player
	}

	state, runErr := window.Run(game, opts)

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
